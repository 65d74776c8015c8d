package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/marovec/folio/internal/apperr"
	"github.com/marovec/folio/internal/checksum"
)

// Snapshot is the immutable result of one catalog build. It owns its record
// slice; callers must not mutate it.
type Snapshot struct {
	Projects []Project `json:"projects"`
	Version  string    `json:"version"`
	BuiltAt  time.Time `json:"built_at"`
	Source   string    `json:"source"`
}

// Catalog is the cached, queryable collection of project records. The set of
// folders is a fixed enumeration supplied at construction; the content tree
// is never listed dynamically.
type Catalog struct {
	loader  *Loader
	folders []string
	logger  *slog.Logger

	mu    sync.RWMutex
	snap  *Snapshot
	group singleflight.Group
}

// New creates a Catalog over the given loader and folder enumeration.
func New(loader *Loader, folders []string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{loader: loader, folders: folders, logger: logger}
}

// All returns the catalog snapshot, building it on first use. Builds fan out
// one Loader call per folder and never fail: folders that cannot be loaded
// are skipped with a warning, and an all-fail build yields an empty
// snapshot. At most one build runs at a time; concurrent callers share its
// result, and later callers get the cached snapshot with no further reads.
func (c *Catalog) All(ctx context.Context) *Snapshot {
	c.mu.RLock()
	snap := c.snap
	c.mu.RUnlock()
	if snap != nil {
		return snap
	}

	// The build runs detached from the caller's cancellation: an aborted
	// first request must not cache an empty snapshot for everyone else.
	buildCtx := context.WithoutCancel(ctx)
	v, _, _ := c.group.Do("build", func() (any, error) {
		c.mu.RLock()
		cached := c.snap
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}
		built := c.build(buildCtx)
		c.mu.Lock()
		c.snap = built
		c.mu.Unlock()
		return built, nil
	})
	return v.(*Snapshot)
}

// build performs the fan-out/fan-in load. Record order follows the folder
// enumeration regardless of load completion order.
func (c *Catalog) build(ctx context.Context) *Snapshot {
	results := make([]*Project, len(c.folders))

	g, gctx := errgroup.WithContext(ctx)
	for i, folder := range c.folders {
		g.Go(func() error {
			p, err := c.loader.Load(gctx, folder)
			if err != nil {
				c.logger.Warn("catalog: project skipped",
					slog.String("folder", folder),
					slog.String("error", err.Error()))
				return nil
			}
			results[i] = p
			return nil
		})
	}
	_ = g.Wait()

	projects := make([]Project, 0, len(results))
	var digest strings.Builder
	for _, p := range results {
		if p == nil {
			continue
		}
		projects = append(projects, *p)
		digest.WriteString(p.Checksum)
	}

	snap := &Snapshot{
		Projects: projects,
		Version:  checksum.Short([]byte(digest.String())),
		BuiltAt:  time.Now(),
		Source:   "fs",
	}
	c.logger.Info("catalog: built",
		slog.Int("projects", len(projects)),
		slog.Int("folders", len(c.folders)),
		slog.String("version", snap.Version))
	return snap
}

// ByID returns the record with the given identifier, or apperr.ErrNotFound.
func (c *Catalog) ByID(ctx context.Context, id string) (*Project, error) {
	snap := c.All(ctx)
	for i := range snap.Projects {
		if snap.Projects[i].ID == id {
			p := snap.Projects[i]
			return &p, nil
		}
	}
	return nil, apperr.ErrNotFound
}

// ByTag returns records carrying the tag, compared case-insensitively. An
// empty tag returns the full unfiltered set.
func (c *Catalog) ByTag(ctx context.Context, tag string) []Project {
	snap := c.All(ctx)
	if tag == "" {
		return snap.Projects
	}
	out := make([]Project, 0, len(snap.Projects))
	for i := range snap.Projects {
		if snap.Projects[i].HasTag(tag) {
			out = append(out, snap.Projects[i])
		}
	}
	return out
}

// Featured returns records marked featured, in catalog order.
func (c *Catalog) Featured(ctx context.Context) []Project {
	snap := c.All(ctx)
	out := make([]Project, 0, len(snap.Projects))
	for i := range snap.Projects {
		if snap.Projects[i].Featured {
			out = append(out, snap.Projects[i])
		}
	}
	return out
}

// Reset drops the cached snapshot so the next query rebuilds it. Used by the
// content watcher and by tests.
func (c *Catalog) Reset() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}
