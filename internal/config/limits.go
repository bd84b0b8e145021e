package config

const (
	// MaxDirectoryNameLength is the maximum length for directory names.
	// Limited to 255 to match the backend's VARCHAR(255) column and
	// provide reasonable UX (names should be short and descriptive).
	MaxDirectoryNameLength = 255

	// DefaultKnowledgePointPageSize is the page size used when draining
	// the paginated knowledge-point listing.
	DefaultKnowledgePointPageSize = 50

	// MaxKnowledgePointPages bounds the pagination loop so a backend
	// that keeps reporting a larger total cannot spin the client forever.
	MaxKnowledgePointPages = 1000
)
