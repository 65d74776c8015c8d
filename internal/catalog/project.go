// Package catalog loads project records from the content directory and
// exposes a cached, queryable collection over them.
package catalog

import "strings"

// Project is a fully loaded portfolio project record. Records are built
// fresh on every load and never mutated afterwards; callers receive copies.
type Project struct {
	ID          string   `json:"id"`
	Folder      string   `json:"folder"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Link        string   `json:"link,omitempty"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	// Images stays empty at load time; the gallery resolves assets lazily.
	Images   []string `json:"images"`
	Checksum string   `json:"checksum"`
}

// HasTag reports whether the record carries the tag, compared
// case-insensitively.
func (p *Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
