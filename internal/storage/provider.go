// Package storage defines the read-only content directory abstraction.
package storage

// Provider is the interface for content file access. All paths are relative
// to the content root. The content tree is treated as immutable static data;
// there are no write operations.
type Provider interface {
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Exists reports whether a regular file exists at path.
	Exists(path string) (bool, error)
	// Root returns the absolute path of the content root.
	Root() string
}
