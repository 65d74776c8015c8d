// Package gallery resolves the numbered image assets of a project folder.
// Assets follow the convention {folder}/{n}.{ext} for n = 1, 2, 3, ...;
// existence is probed on demand rather than recorded in the content file.
package gallery

import (
	"fmt"

	"github.com/marovec/folio/internal/storage"
)

// maxImages caps the probe so a pathological folder cannot make the
// resolver scan forever.
const maxImages = 24

// imageExts is the fixed probe order per index.
var imageExts = []string{"jpg", "jpeg", "png", "webp", "gif"}

// Resolver probes image assets against the content provider.
type Resolver struct {
	store storage.Provider
}

// NewResolver creates a Resolver over the given content provider.
func NewResolver(store storage.Provider) *Resolver {
	return &Resolver{store: store}
}

// Images returns the ordered asset paths for folder. Probing walks n = 1
// upward and stops at the first index with no asset under any known
// extension, so numbering gaps end the sequence.
func (r *Resolver) Images(folder string) []string {
	out := []string{}
	for n := 1; n <= maxImages; n++ {
		found := ""
		for _, ext := range imageExts {
			candidate := fmt.Sprintf("%s/%d.%s", folder, n, ext)
			if ok, err := r.store.Exists(candidate); err == nil && ok {
				found = candidate
				break
			}
		}
		if found == "" {
			break
		}
		out = append(out, found)
	}
	return out
}
