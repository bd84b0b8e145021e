package knowledge

// NodeKind discriminates the two entity kinds in the knowledge-base forest.
type NodeKind string

const (
	NodeDirectory NodeKind = "directory"
	NodeFile      NodeKind = "file"
)

// TreeNode is one entry in the directory/document forest as returned by the
// backend. Directories own their children; documents are leaves. The JSON
// field names match the backend wire format exactly.
type TreeNode struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Kind     NodeKind    `json:"type"`
	Children []*TreeNode `json:"children,omitempty"`

	// Directory fields
	ParentID *int `json:"parentId,omitempty"`

	// Document fields
	FileType            string `json:"fileType,omitempty"`
	Processed           bool   `json:"processed,omitempty"`
	UploadTime          string `json:"uploadTime,omitempty"` // backend sends naive ISO 8601, kept opaque
	DirectoryID         *int   `json:"directoryId,omitempty"`
	KnowledgePointCount int    `json:"knowledgePointCount,omitempty"`
}

// IsDirectory reports whether the node can own children.
func (n *TreeNode) IsDirectory() bool {
	return n.Kind == NodeDirectory
}

// Snapshot is one wholesale view of the knowledge base: the forest exactly
// as the backend ordered it, plus knowledge points grouped by document.
// A snapshot is immutable once built; mutations go to the backend and the
// next snapshot is rebuilt from scratch.
type Snapshot struct {
	Roots            []*TreeNode
	PointsByDocument map[int][]KnowledgePoint
}

// EmptySnapshot returns a valid snapshot with no content. Fetch failures
// degrade to this rather than to a partial tree.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Roots:            []*TreeNode{},
		PointsByDocument: map[int][]KnowledgePoint{},
	}
}
