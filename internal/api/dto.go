package api

import (
	"github.com/marovec/folio/internal/catalog"
	"github.com/marovec/folio/internal/links"
	"github.com/marovec/folio/internal/portfolio"
)

// ProjectDetail is the full project response type (aliased from the domain layer).
type ProjectDetail = portfolio.ProjectDetail

// ProjectListResponse wraps project listings with the snapshot metadata the
// front end uses for cache-busting.
type ProjectListResponse struct {
	Projects []catalog.Project `json:"projects"`
	Total    int               `json:"total"`
	Version  string            `json:"version"`
}

// ImagesResponse wraps resolved gallery asset paths.
type ImagesResponse struct {
	Images []string `json:"images"`
}

// LinksResponse is the link document, served verbatim.
type LinksResponse = links.Document
