package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"keystone/internal/config"
	"keystone/internal/domain"
	"keystone/internal/domain/repositories"
	knowledgeSvc "keystone/internal/domain/services/knowledge"
)

// directoryService implements the DirectoryService interface
type directoryService struct {
	backend repositories.TreeMutator
	logger  *slog.Logger
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(backend repositories.TreeMutator, logger *slog.Logger) knowledgeSvc.DirectoryService {
	return &directoryService{
		backend: backend,
		logger:  logger,
	}
}

// CreateDirectory validates the request locally and asks the backend to
// create the directory. The backend is never asked to perform an invalid
// mutation.
func (s *directoryService) CreateDirectory(ctx context.Context, req *knowledgeSvc.CreateDirectoryRequest) (int, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validateCreateRequest(req); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	id, err := s.backend.CreateDirectory(ctx, req.Name, req.ParentID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("directory created",
		"id", id,
		"name", req.Name,
		"parent_id", req.ParentID,
	)

	return id, nil
}

// DeleteDirectory removes a directory via the backend.
func (s *directoryService) DeleteDirectory(ctx context.Context, directoryID int) error {
	if err := s.backend.DeleteDirectory(ctx, directoryID); err != nil {
		return err
	}
	s.logger.Info("directory deleted", "id", directoryID)
	return nil
}

// DeleteDocument removes a document via the backend.
func (s *directoryService) DeleteDocument(ctx context.Context, documentID int) error {
	if err := s.backend.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	s.logger.Info("document deleted", "id", documentID)
	return nil
}

// validateCreateRequest validates a directory creation request
func (s *directoryService) validateCreateRequest(req *knowledgeSvc.CreateDirectoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxDirectoryNameLength),
			validation.Match(regexp.MustCompile(`^[^/]+$`)).Error("directory name cannot contain slashes"),
		),
	)
}
