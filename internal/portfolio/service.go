// Package portfolio is the service layer coordinating the catalog, link
// store, gallery, and renderer for the presentation adapters (HTTP, MCP).
package portfolio

import (
	"context"

	"github.com/marovec/folio/internal/catalog"
	"github.com/marovec/folio/internal/gallery"
	"github.com/marovec/folio/internal/links"
	"github.com/marovec/folio/internal/render"
)

// ProjectDetail is the full representation of a project: the catalog record
// plus lazily resolved images and the rendered description.
type ProjectDetail struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Year            int      `json:"year"`
	Link            string   `json:"link,omitempty"`
	Tags            []string `json:"tags"`
	Featured        bool     `json:"featured"`
	Description     string   `json:"description"`
	DescriptionHTML string   `json:"description_html"`
	Thumbnail       string   `json:"thumbnail"`
	Images          []string `json:"images"`
	Checksum        string   `json:"checksum"`
}

// Service coordinates the content components.
type Service struct {
	catalog  *catalog.Catalog
	links    *links.Store
	gallery  *gallery.Resolver
	renderer *render.Renderer
}

// NewService creates a new portfolio service.
func NewService(cat *catalog.Catalog, ls *links.Store, g *gallery.Resolver, r *render.Renderer) *Service {
	return &Service{catalog: cat, links: ls, gallery: g, renderer: r}
}

// Snapshot returns the current catalog snapshot.
func (s *Service) Snapshot(ctx context.Context) *catalog.Snapshot {
	return s.catalog.All(ctx)
}

// ListProjects returns records filtered by tag (case-insensitive, empty tag
// means all) and, optionally, restricted to featured records.
func (s *Service) ListProjects(ctx context.Context, tag string, featuredOnly bool) []catalog.Project {
	projects := s.catalog.ByTag(ctx, tag)
	if !featuredOnly {
		return projects
	}
	out := make([]catalog.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// GetProject returns the full detail for id, resolving gallery images and
// rendering the description body.
func (s *Service) GetProject(ctx context.Context, id string) (*ProjectDetail, error) {
	p, err := s.catalog.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	html, err := s.renderer.HTML(p.Description)
	if err != nil {
		return nil, err
	}
	return &ProjectDetail{
		ID:              p.ID,
		Title:           p.Title,
		Year:            p.Year,
		Link:            p.Link,
		Tags:            p.Tags,
		Featured:        p.Featured,
		Description:     p.Description,
		DescriptionHTML: html,
		Thumbnail:       p.Thumbnail,
		Images:          s.gallery.Images(p.Folder),
		Checksum:        p.Checksum,
	}, nil
}

// ProjectImages returns the resolved gallery image paths for id.
func (s *Service) ProjectImages(ctx context.Context, id string) ([]string, error) {
	p, err := s.catalog.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.gallery.Images(p.Folder), nil
}

// Links returns the cached link document.
func (s *Service) Links(ctx context.Context) links.Document {
	return s.links.Load(ctx)
}

// Refresh drops both caches so the next query reloads from storage.
func (s *Service) Refresh() {
	s.catalog.Reset()
	s.links.Reset()
}

// Catalog returns the underlying project catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// LinkStore returns the underlying link store.
func (s *Service) LinkStore() *links.Store {
	return s.links
}
