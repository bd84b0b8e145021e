package knowledge

// KnowledgePoint is a derived annotation extracted from a document. It
// back-references its document by ID; the tree only uses it for the count
// badge on document nodes.
type KnowledgePoint struct {
	ID           int      `json:"id"`
	DocumentID   int      `json:"document_id"`
	DocumentName string   `json:"document_name,omitempty"`
	Content      string   `json:"content"`
	ChunkIndex   int      `json:"chunk_index"`
	Weight       float64  `json:"weight"`
	Excluded     bool     `json:"excluded"`
	IsManual     bool     `json:"is_manual"`
	Keywords     []string `json:"keywords,omitempty"`
}
