package knowledge

import "context"

// DirectoryService handles directory and document mutations that carry
// user input. Input is validated locally before the backend is asked to
// do anything.
type DirectoryService interface {
	// CreateDirectory creates a directory and returns its new ID.
	CreateDirectory(ctx context.Context, req *CreateDirectoryRequest) (int, error)

	// DeleteDirectory removes a directory and whatever the backend decides
	// to do with its contents.
	DeleteDirectory(ctx context.Context, directoryID int) error

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, documentID int) error
}

// CreateDirectoryRequest represents a directory creation request.
type CreateDirectoryRequest struct {
	Name     string `json:"name"`
	ParentID *int   `json:"parent_id,omitempty"` // nil = top level
}
