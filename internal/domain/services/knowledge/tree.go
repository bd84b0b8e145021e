package knowledge

import (
	"context"

	models "keystone/internal/domain/models/knowledge"
)

// TreeService rebuilds the knowledge-base view from the backend.
type TreeService interface {
	// LoadSnapshot fetches the forest and the knowledge-point list and
	// assembles one immutable snapshot. On any fetch failure it returns a
	// valid empty snapshot together with the error — never a partial tree.
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)
}
