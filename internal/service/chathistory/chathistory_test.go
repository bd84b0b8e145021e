package chathistory

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keystone", "chat-history.json")
	return NewStoreAt(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoad_MissingFileIsEmptyHistory(t *testing.T) {
	store := testStore(t)
	sessions, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("expected empty history, got %d sessions", len(sessions))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := testStore(t)
	in := []Session{
		{ID: "s1", Title: "Model eval questions", MessageCount: 4, UpdatedAt: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)},
		{ID: "s2", Title: "Ingest troubleshooting", MessageCount: 11, UpdatedAt: time.Date(2026, 8, 24, 20, 0, 0, 0, time.UTC)},
	}

	if err := store.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(out))
	}
	if out[0].ID != "s1" || out[0].MessageCount != 4 {
		t.Errorf("session 0 = %+v", out[0])
	}
	if !out[1].UpdatedAt.Equal(in[1].UpdatedAt) {
		t.Errorf("timestamp not preserved: %v != %v", out[1].UpdatedAt, in[1].UpdatedAt)
	}
}

func TestGroupByDay_Buckets(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 30, 0, 0, time.UTC)
	sessions := []Session{
		{ID: "a", Title: "morning", UpdatedAt: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)},
		{ID: "b", Title: "last week", UpdatedAt: time.Date(2026, 8, 18, 12, 0, 0, 0, time.UTC)},
		{ID: "c", Title: "late night", UpdatedAt: time.Date(2026, 8, 24, 23, 50, 0, 0, time.UTC)},
		{ID: "d", Title: "noon", UpdatedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)},
	}

	groups := GroupByDay(sessions, now)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Label != "Today" {
		t.Errorf("groups[0].Label = %q, want Today", groups[0].Label)
	}
	if groups[1].Label != "Yesterday" {
		t.Errorf("groups[1].Label = %q, want Yesterday", groups[1].Label)
	}
	if groups[2].Label != "Aug 18, 2026" {
		t.Errorf("groups[2].Label = %q, want Aug 18, 2026", groups[2].Label)
	}

	// Input order is preserved within a bucket.
	today := groups[0].Sessions
	if len(today) != 2 || today[0].ID != "a" || today[1].ID != "d" {
		t.Errorf("today bucket = %v, want sessions a,d in input order", today)
	}
}

func TestGroupByDay_Empty(t *testing.T) {
	if groups := GroupByDay(nil, time.Now()); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}
