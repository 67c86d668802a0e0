// Package testutil provides shared test helpers for content directories.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/nsodat/vitrina/internal/content"
)

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestContentDir creates a temporary content directory with a Store.
func TestContentDir(t *testing.T) (string, *content.Store) {
	t.Helper()
	dir := t.TempDir()
	store, err := content.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// SeededStore creates a content directory populated with the default
// documents.
func SeededStore(t *testing.T) (string, *content.Store) {
	t.Helper()
	dir, store := TestContentDir(t)
	if _, err := content.EnsureDefaults(store); err != nil {
		t.Fatal(err)
	}
	return dir, store
}
