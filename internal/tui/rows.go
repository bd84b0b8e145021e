package tui

import models "keystone/internal/domain/models/knowledge"

// row is one visible line of the flattened tree: a node plus its depth.
type row struct {
	node  *models.TreeNode
	depth int
}

// flatten walks the forest depth-first and emits the visible rows.
// Children of collapsed directories are skipped; directories absent from
// the collapsed set are expanded (the default at first mount).
func flatten(roots []*models.TreeNode, collapsed map[int]bool) []row {
	rows := make([]row, 0, len(roots))
	var walk func(nodes []*models.TreeNode, depth int)
	walk = func(nodes []*models.TreeNode, depth int) {
		for _, n := range nodes {
			rows = append(rows, row{node: n, depth: depth})
			if n.IsDirectory() && !collapsed[n.ID] {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(roots, 0)
	return rows
}

// rebuildRows re-derives the visible rows from the current snapshot and
// clamps the cursor into range.
func (m *Model) rebuildRows() {
	m.rows = flatten(m.snapshot.Roots, m.collapsed)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// currentNode returns the node under the cursor, or nil when the tree is
// empty.
func (m *Model) currentNode() *models.TreeNode {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].node
}

// currentParentID returns the directory that a new node created at the
// cursor should land in: the cursor directory itself, a document's
// containing directory, or nil for the top level.
func (m *Model) currentParentID() *int {
	n := m.currentNode()
	if n == nil {
		return nil
	}
	if n.IsDirectory() {
		id := n.ID
		return &id
	}
	return n.DirectoryID
}
