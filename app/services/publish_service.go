package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lunarbrew/go-cafe/app/models"
	"golang.org/x/sync/errgroup"
)

// SnapshotFileName is the well-known artifact path, relative to the static
// assets directory, that the public site fetches by convention.
const SnapshotFileName = "data/menu.json"

// CatalogSource is the read side of the catalog store the publish pipeline
// exports from.
type CatalogSource interface {
	ActiveCategories(ctx context.Context) ([]models.Category, error)
	ActiveMenuItems(ctx context.Context) ([]models.MenuItem, error)
	ActiveSizes(ctx context.Context) ([]models.Size, error)
	ActiveAttributes(ctx context.Context) ([]models.Attribute, error)
}

type PublishResult struct {
	Path       string `json:"path"`
	Bytes      int    `json:"bytes"`
	Categories int    `json:"categories"`
	MenuItems  int    `json:"menuItems"`
	Sizes      int    `json:"sizes"`
	Attributes int    `json:"attributes"`
	Version    string `json:"version"`
}

type PublishService struct {
	source      CatalogSource
	staticDir   string
	buildCommit string
}

func NewPublishService(source CatalogSource, staticDir, buildCommit string) *PublishService {
	return &PublishService{
		source:      source,
		staticDir:   staticDir,
		buildCommit: buildCommit,
	}
}

// Publish exports the active catalog to the static snapshot file. The four
// source reads run concurrently and join fail-fast: if any one errors, the
// publish aborts with nothing written and the previous snapshot, if any,
// stays in place as the last known good state. Concurrent publishes are
// last-write-wins; each attempt writes a temp file and renames it over the
// target, so readers never observe a half-written document.
func (s *PublishService) Publish(ctx context.Context) (*PublishResult, error) {
	var (
		categories []models.Category
		items      []models.MenuItem
		sizes      []models.Size
		attributes []models.Attribute
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.source.ActiveCategories(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.source.ActiveMenuItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sizes, err = s.source.ActiveSizes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		attributes, err = s.source.ActiveAttributes(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("publish aborted, catalog read failed: %w", err)
	}

	snapshot := models.StaticMenuSnapshot{
		Categories:  categories,
		MenuItems:   items,
		Sizes:       sizes,
		Attributes:  attributes,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Version:     s.version(),
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	target := filepath.Join(s.staticDir, SnapshotFileName)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "menu-*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp snapshot file: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to close snapshot file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to move snapshot into place: %w", err)
	}

	result := &PublishResult{
		Path:       target,
		Bytes:      len(payload),
		Categories: len(categories),
		MenuItems:  len(items),
		Sizes:      len(sizes),
		Attributes: len(attributes),
		Version:    snapshot.Version,
	}
	log.Printf("✅ Published menu snapshot: %d bytes, %d categories, %d items (version %s) -> %s",
		result.Bytes, result.Categories, result.MenuItems, result.Version, result.Path)
	return result, nil
}

func (s *PublishService) version() string {
	if s.buildCommit != "" {
		return s.buildCommit
	}
	return fmt.Sprintf("gen-%d", time.Now().Unix())
}
