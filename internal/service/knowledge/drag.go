package knowledge

import (
	"encoding/json"

	models "keystone/internal/domain/models/knowledge"
)

// DragMediaType tags serialized drag payloads so payloads from unrelated
// drag sources are ignored rather than misinterpreted.
const DragMediaType = "application/x-keystone-tree-node+json"

// DescendantIDs returns the node's descendant-id set as a slice: the node
// itself plus, depth-first, every transitive child. Document nodes have no
// children, so their set is just {self}.
func DescendantIDs(n *models.TreeNode) []int {
	ids := make([]int, 0, 1+len(n.Children))
	var walk func(node *models.TreeNode)
	walk = func(node *models.TreeNode) {
		ids = append(ids, node.ID)
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return ids
}

// BeginDrag builds the drag payload for a node at the start of a gesture.
// Directories carry their full descendant set, computed once here so drop
// validation is a lookup. Documents omit the set.
func BeginDrag(n *models.TreeNode) *models.DragPayload {
	if n.IsDirectory() {
		return models.NewDragPayload(n.Kind, n.ID, DescendantIDs(n))
	}
	return models.NewDragPayload(n.Kind, n.ID, nil)
}

// EncodeDragPayload serializes a payload for transfer, returning the media
// type tag alongside the data.
func EncodeDragPayload(p *models.DragPayload) (mediaType string, data []byte, err error) {
	data, err = json.Marshal(p)
	if err != nil {
		return "", nil, err
	}
	return DragMediaType, data, nil
}

// DecodeDragPayload parses a transferred payload. Foreign media types and
// malformed data mean "no drag": ok is false and no error escapes to the
// caller.
func DecodeDragPayload(mediaType string, data []byte) (p *models.DragPayload, ok bool) {
	if mediaType != DragMediaType {
		return nil, false
	}
	var payload models.DragPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Kind != models.NodeDirectory && payload.Kind != models.NodeFile {
		return nil, false
	}
	return &payload, true
}

// CanDrop reports whether the dragged payload may be dropped onto target.
// Targets must be directories. Documents may be dropped onto any directory
// (the move is idempotent from the client's perspective). A directory may
// be dropped onto a directory only if the target is neither the dragged
// directory itself nor one of its descendants — the sole cycle-prevention
// check, O(1) per the precomputed set.
func CanDrop(p *models.DragPayload, target *models.TreeNode) bool {
	if p == nil || target == nil || !target.IsDirectory() {
		return false
	}
	if p.Kind == models.NodeFile {
		return true
	}
	return !p.HasDescendant(target.ID)
}

// CanDropAtRoot reports whether the payload may be dropped outside any
// directory node. Always legal: the move clears the parent association.
func CanDropAtRoot(p *models.DragPayload) bool {
	return p != nil
}
