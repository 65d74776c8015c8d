package portfolio

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/marovec/folio/internal/apperr"
	"github.com/marovec/folio/internal/catalog"
	"github.com/marovec/folio/internal/gallery"
	"github.com/marovec/folio/internal/links"
	"github.com/marovec/folio/internal/render"
	"github.com/marovec/folio/internal/testutil"
)

func testService(t *testing.T, folders ...string) (string, *Service) {
	t.Helper()
	root, store := testutil.TestContent(t)
	logger := slog.New(slog.DiscardHandler)
	svc := NewService(
		catalog.New(catalog.NewLoader(store), folders, logger),
		links.NewStore(store, "links.json", logger),
		gallery.NewResolver(store),
		render.New(),
	)
	return root, svc
}

func TestGetProject_Detail(t *testing.T) {
	root, svc := testService(t, "demo")
	testutil.WriteProject(t, root, "demo",
		"---\nid: demo\ntitle: Demo\nyear: 2024\ntags: A, B\n---\nSome **bold** text.")
	testutil.WriteFile(t, root, "demo/1.jpg", []byte{1})
	testutil.WriteFile(t, root, "demo/2.jpg", []byte{2})

	d, err := svc.GetProject(context.Background(), "demo")
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if d.Title != "Demo" || d.Year != 2024 {
		t.Errorf("detail = %+v", d)
	}
	if !strings.Contains(d.DescriptionHTML, "<strong>bold</strong>") {
		t.Errorf("description_html = %q", d.DescriptionHTML)
	}
	if len(d.Images) != 2 {
		t.Errorf("images = %v, want 2 resolved assets", d.Images)
	}
}

func TestGetProject_NotFound(t *testing.T) {
	_, svc := testService(t, "demo")

	_, err := svc.GetProject(context.Background(), "ghost")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListProjects_FeaturedAndTag(t *testing.T) {
	root, svc := testService(t, "a", "b", "c")
	testutil.WriteProject(t, root, "a", "---\nid: a\ntags: Web, App\nfeatured: true\n---\nx")
	testutil.WriteProject(t, root, "b", "---\nid: b\ntags: Web, Site\n---\nx")
	testutil.WriteProject(t, root, "c", "---\nid: c\ntags: CLI, Tool\nfeatured: true\n---\nx")

	all := svc.ListProjects(context.Background(), "", false)
	if len(all) != 3 {
		t.Fatalf("all = %d, want 3", len(all))
	}
	web := svc.ListProjects(context.Background(), "web", false)
	if len(web) != 2 {
		t.Errorf("web = %d, want 2", len(web))
	}
	featuredWeb := svc.ListProjects(context.Background(), "web", true)
	if len(featuredWeb) != 1 || featuredWeb[0].ID != "a" {
		t.Errorf("featuredWeb = %v, want [a]", featuredWeb)
	}
}

func TestProjectImages(t *testing.T) {
	root, svc := testService(t, "demo")
	testutil.WriteProject(t, root, "demo", "---\nid: demo\n---\nx")
	testutil.WriteFile(t, root, "demo/1.png", []byte{1})

	imgs, err := svc.ProjectImages(context.Background(), "demo")
	if err != nil {
		t.Fatalf("ProjectImages: %v", err)
	}
	if len(imgs) != 1 || imgs[0] != "demo/1.png" {
		t.Errorf("images = %v", imgs)
	}
}

func TestRefresh(t *testing.T) {
	root, svc := testService(t, "demo")
	testutil.WriteProject(t, root, "demo", "---\nid: demo\ntitle: Old\n---\nx")

	if _, err := svc.GetProject(context.Background(), "demo"); err != nil {
		t.Fatal(err)
	}
	testutil.WriteProject(t, root, "demo", "---\nid: demo\ntitle: New\n---\nx")
	svc.Refresh()

	d, err := svc.GetProject(context.Background(), "demo")
	if err != nil {
		t.Fatal(err)
	}
	if d.Title != "New" {
		t.Errorf("title = %q, want New", d.Title)
	}
}
