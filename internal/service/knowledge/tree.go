package knowledge

import (
	"context"
	"log/slog"

	models "keystone/internal/domain/models/knowledge"
	"keystone/internal/domain/repositories"
	knowledgeSvc "keystone/internal/domain/services/knowledge"
)

// treeService implements the TreeService interface
type treeService struct {
	backend repositories.TreeReader
	logger  *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(backend repositories.TreeReader, logger *slog.Logger) knowledgeSvc.TreeService {
	return &treeService{
		backend: backend,
		logger:  logger,
	}
}

// LoadSnapshot fetches the forest and the knowledge-point list and builds
// one immutable snapshot. Any fetch failure degrades to a valid empty
// snapshot plus the error — never a partial tree.
func (s *treeService) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	roots, err := s.backend.FetchTree(ctx)
	if err != nil {
		s.logger.Warn("tree fetch failed, degrading to empty snapshot", "error", err)
		return models.EmptySnapshot(), err
	}

	points, err := s.backend.FetchKnowledgePoints(ctx)
	if err != nil {
		s.logger.Warn("knowledge point fetch failed, degrading to empty snapshot", "error", err)
		return models.EmptySnapshot(), err
	}

	byDocument := GroupPointsByDocument(points)

	// Re-derive the count badge on document nodes from the grouping pass;
	// the flat list is the authoritative count source for this snapshot.
	annotateCounts(roots, byDocument)

	s.logger.Info("snapshot built",
		"root_count", len(roots),
		"knowledge_point_count", len(points),
	)

	return &models.Snapshot{
		Roots:            roots,
		PointsByDocument: byDocument,
	}, nil
}

// GroupPointsByDocument groups the flat knowledge-point list by document
// identity in a single pass, preserving encounter order within each group.
func GroupPointsByDocument(points []models.KnowledgePoint) map[int][]models.KnowledgePoint {
	grouped := make(map[int][]models.KnowledgePoint)
	for _, p := range points {
		grouped[p.DocumentID] = append(grouped[p.DocumentID], p)
	}
	return grouped
}

// annotateCounts walks the forest and sets each document node's count from
// the grouped map.
func annotateCounts(nodes []*models.TreeNode, byDocument map[int][]models.KnowledgePoint) {
	for _, n := range nodes {
		if n.Kind == models.NodeFile {
			n.KnowledgePointCount = len(byDocument[n.ID])
		}
		if len(n.Children) > 0 {
			annotateCounts(n.Children, byDocument)
		}
	}
}
