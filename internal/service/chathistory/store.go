package chathistory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// historyFilename is the on-disk name of the session index.
const historyFilename = "chat-history.json"

// Session is one entry in the locally persisted chat-history index. The
// conversation content itself lives with the backend; this index only
// drives the grouped history list.
type Session struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Store reads and writes the chat-history index file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store rooted at the user config dir.
func NewStore(logger *slog.Logger) (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return NewStoreAt(filepath.Join(base, "keystone", historyFilename), logger), nil
}

// NewStoreAt creates a store with an explicit file path.
func NewStoreAt(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the session index. A missing file is an empty history, not an
// error.
func (s *Store) Load() ([]Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Session{}, nil
		}
		return nil, fmt.Errorf("read chat history: %w", err)
	}

	var sessions []Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("parse chat history: %w", err)
	}
	return sessions, nil
}

// Save writes the session index atomically (temp file + rename) so a crash
// mid-write never truncates the history.
func (s *Store) Save(sessions []Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode chat history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, historyFilename+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write chat history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace chat history: %w", err)
	}

	s.logger.Debug("chat history saved", "path", s.path, "sessions", len(sessions))
	return nil
}
