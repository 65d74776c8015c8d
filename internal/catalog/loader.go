package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/marovec/folio/internal/checksum"
	"github.com/marovec/folio/internal/frontmatter"
	"github.com/marovec/folio/internal/storage"
)

// contentFile is the per-folder content resource name.
const contentFile = "project.md"

// thumbnailExts is the fixed probe order for the folder's lead image.
var thumbnailExts = []string{"jpg", "jpeg", "png", "webp", "gif"}

// LoadErrorKind classifies why a project folder failed to load.
type LoadErrorKind int

const (
	// LoadNotFound means the folder has no content file yet. Expected and
	// non-fatal.
	LoadNotFound LoadErrorKind = iota
	// LoadReadFailed means the content file exists but could not be read.
	LoadReadFailed
)

// String returns a short name for the kind.
func (k LoadErrorKind) String() string {
	if k == LoadNotFound {
		return "not found"
	}
	return "read failed"
}

// LoadError is the typed outcome of a failed load attempt. The catalog
// collapses it to absence at its boundary; tests and logs can still tell the
// failure modes apart.
type LoadError struct {
	Folder string
	Kind   LoadErrorKind
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Folder, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Loader converts one project folder into a Project record.
type Loader struct {
	store storage.Provider
}

// NewLoader creates a Loader over the given content provider.
func NewLoader(store storage.Provider) *Loader {
	return &Loader{store: store}
}

// Load reads and parses {folder}/project.md into a Project. A missing
// content file yields a *LoadError with kind LoadNotFound; parsing itself
// never fails (malformed frontmatter degrades to an empty mapping).
func (l *Loader) Load(ctx context.Context, folder string) (*Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Folder: folder, Kind: LoadReadFailed, Err: err}
	}

	data, err := l.store.Read(folder + "/" + contentFile)
	if err != nil {
		kind := LoadReadFailed
		if errors.Is(err, os.ErrNotExist) {
			kind = LoadNotFound
		}
		return nil, &LoadError{Folder: folder, Kind: kind, Err: err}
	}

	meta, body := frontmatter.Parse(string(data))
	tags := meta.Strings("tags")
	if tags == nil {
		tags = []string{}
	}

	return &Project{
		ID:          meta.Text("id", folder),
		Folder:      folder,
		Title:       meta.Text("title", folder),
		Year:        meta.Int("year", time.Now().Year()),
		Link:        meta.Text("link", ""),
		Tags:        tags,
		Featured:    meta.Bool("featured", false),
		Description: strings.TrimSpace(body),
		Thumbnail:   l.thumbnail(folder),
		Images:      []string{},
		Checksum:    checksum.Sum(data),
	}, nil
}

// thumbnail derives the lead image path {folder}/1.{ext}, probing the fixed
// extension order and falling back to the first extension when no asset
// exists yet.
func (l *Loader) thumbnail(folder string) string {
	for _, ext := range thumbnailExts {
		candidate := fmt.Sprintf("%s/1.%s", folder, ext)
		if ok, err := l.store.Exists(candidate); err == nil && ok {
			return candidate
		}
	}
	return fmt.Sprintf("%s/1.%s", folder, thumbnailExts[0])
}
