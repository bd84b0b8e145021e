package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"keystone/internal/config"
	"keystone/internal/domain"
	"keystone/internal/domain/models/knowledge"
	"keystone/internal/domain/repositories"
)

// retryDelay is how long to wait before the single retry after a
// transport-level failure. The backend is a local process that can be
// momentarily unready; one short retry covers startup races.
const retryDelay = 300 * time.Millisecond

// Client talks to the knowledge backend over HTTP. It implements
// repositories.Backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pageSize   int
	logger     *slog.Logger
}

// NewClient creates a backend client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BackendURL, "/"),
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		pageSize:   cfg.KnowledgePointPageSize,
		logger:     logger,
	}
}

var _ repositories.Backend = (*Client)(nil)

// FetchTree returns the full directory/document forest, nested and ordered
// by the backend.
func (c *Client) FetchTree(ctx context.Context) ([]*knowledge.TreeNode, error) {
	var resp struct {
		Tree []*knowledge.TreeNode `json:"tree"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/directories", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch tree: %w", err)
	}
	return resp.Tree, nil
}

// FetchKnowledgePoints drains the paginated knowledge-point listing and
// returns the concatenated list in backend order.
func (c *Client) FetchKnowledgePoints(ctx context.Context) ([]knowledge.KnowledgePoint, error) {
	var all []knowledge.KnowledgePoint

	for page := 1; page <= config.MaxKnowledgePointPages; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("page_size", strconv.Itoa(c.pageSize))

		var resp struct {
			KnowledgePoints []knowledge.KnowledgePoint `json:"knowledge_points"`
			Total           int                        `json:"total"`
			Page            int                        `json:"page"`
			PageSize        int                        `json:"page_size"`
		}
		if err := c.doJSON(ctx, http.MethodGet, "/documents/knowledge-points", query, nil, &resp); err != nil {
			return nil, fmt.Errorf("fetch knowledge points (page %d): %w", page, err)
		}

		all = append(all, resp.KnowledgePoints...)
		if len(resp.KnowledgePoints) == 0 || len(all) >= resp.Total {
			break
		}
	}

	return all, nil
}

// MoveDocument reparents a document; nil directoryID moves it to the top
// level.
func (c *Client) MoveDocument(ctx context.Context, documentID int, directoryID *int) error {
	body := map[string]any{"directory_id": directoryID}
	path := fmt.Sprintf("/documents/%d/move", documentID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("move document %d: %w", documentID, err)
	}
	c.logger.Info("document moved", "document_id", documentID, "directory_id", directoryID)
	return nil
}

// MoveDirectory reparents a directory; nil parentID moves it to the top
// level. Cycle prevention happens before this call; the backend repeats
// the check server-side regardless.
func (c *Client) MoveDirectory(ctx context.Context, directoryID int, parentID *int) error {
	body := map[string]any{"parent_id": parentID}
	path := fmt.Sprintf("/directories/%d/move", directoryID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("move directory %d: %w", directoryID, err)
	}
	c.logger.Info("directory moved", "directory_id", directoryID, "parent_id", parentID)
	return nil
}

// CreateDirectory creates a directory and returns its new ID.
func (c *Client) CreateDirectory(ctx context.Context, name string, parentID *int) (int, error) {
	body := map[string]any{"name": name, "parent_id": parentID}
	var resp struct {
		Success bool `json:"success"`
		ID      int  `json:"id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/directories", nil, body, &resp); err != nil {
		return 0, fmt.Errorf("create directory %q: %w", name, err)
	}
	c.logger.Info("directory created", "id", resp.ID, "name", name, "parent_id", parentID)
	return resp.ID, nil
}

// DeleteDirectory removes a directory.
func (c *Client) DeleteDirectory(ctx context.Context, directoryID int) error {
	path := fmt.Sprintf("/directories/%d", directoryID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete directory %d: %w", directoryID, err)
	}
	c.logger.Info("directory deleted", "directory_id", directoryID)
	return nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, documentID int) error {
	path := fmt.Sprintf("/documents/%d", documentID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete document %d: %w", documentID, err)
	}
	c.logger.Info("document deleted", "document_id", documentID)
	return nil
}

// doJSON performs one request, retrying once after a short delay on
// transport errors. Non-2xx statuses become domain.BackendError; 2xx
// bodies are decoded into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	requestID := uuid.NewString()

	resp, err := c.send(ctx, method, path, query, payload, requestID)
	if err != nil {
		// One retry after a short delay; the payload is rebuilt so the
		// body reader is fresh.
		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
		resp, err = c.send(ctx, method, path, query, payload, requestID)
		if err != nil {
			c.logger.Warn("backend request failed",
				"method", method,
				"path", path,
				"request_id", requestID,
				"error", err,
			)
			return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := decodeErrorDetail(data)
		c.logger.Warn("backend request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"request_id", requestID,
			"detail", detail,
		)
		return &domain.BackendError{Status: resp.StatusCode, Detail: detail}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload []byte, requestID string) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	return c.httpClient.Do(req)
}

// decodeErrorDetail pulls the "detail" field out of a FastAPI-style error
// body, falling back to the raw body text.
func decodeErrorDetail(data []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return strings.TrimSpace(string(data))
}
