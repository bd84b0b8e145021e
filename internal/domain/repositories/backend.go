package repositories

import (
	"context"

	"keystone/internal/domain/models/knowledge"
)

// TreeReader fetches the authoritative knowledge-base state from the
// backend. The whole forest arrives in one response; knowledge points are
// paginated server-side and returned here fully drained.
type TreeReader interface {
	// FetchTree returns the full directory/document forest, nested and
	// ordered by the backend.
	FetchTree(ctx context.Context) ([]*knowledge.TreeNode, error)

	// FetchKnowledgePoints returns the flat knowledge-point list across
	// all documents.
	FetchKnowledgePoints(ctx context.Context) ([]knowledge.KnowledgePoint, error)
}

// TreeMutator issues structural mutations. The backend is the source of
// truth; callers rebuild their view by re-fetching after a successful call.
type TreeMutator interface {
	// MoveDocument reparents a document. A nil directoryID moves it to the
	// top level.
	MoveDocument(ctx context.Context, documentID int, directoryID *int) error

	// MoveDirectory reparents a directory. A nil parentID moves it to the
	// top level.
	MoveDirectory(ctx context.Context, directoryID int, parentID *int) error

	// CreateDirectory creates a directory and returns its new ID. A nil
	// parentID creates it at the top level.
	CreateDirectory(ctx context.Context, name string, parentID *int) (int, error)

	// DeleteDirectory removes a directory.
	DeleteDirectory(ctx context.Context, directoryID int) error

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, documentID int) error
}

// Backend is the full collaborator surface the client consumes.
type Backend interface {
	TreeReader
	TreeMutator
}
