// Package testutil provides shared test helpers for setting up content
// directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marovec/folio/internal/storage"
)

// TestContent creates a temporary content directory with a storage.Provider.
func TestContent(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteFile writes a file under the content root, creating parent
// directories as needed. rel uses forward slashes.
func WriteFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	abs := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// WriteProject writes {folder}/project.md with the given raw content.
func WriteProject(t *testing.T, root, folder, content string) {
	t.Helper()
	WriteFile(t, root, folder+"/project.md", []byte(content))
}
