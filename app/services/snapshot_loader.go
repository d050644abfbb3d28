package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/lunarbrew/go-cafe/app/models"
)

// ErrNoSnapshot means no published snapshot could be found anywhere: the
// remote fetch failed and no local fallback copy exists. Callers render an
// explicit "menu unavailable" state for it, never a blank page.
var ErrNoSnapshot = errors.New("no menu snapshot available")

// StaleThreshold is how old a snapshot's lastUpdated may be before the
// loader flags it as stale. Advisory only; rendering is never blocked.
const StaleThreshold = 24 * time.Hour

type SnapshotLoader struct {
	url          string
	fallbackPath string
	client       *http.Client
}

func NewSnapshotLoader(url, fallbackPath string) *SnapshotLoader {
	return &SnapshotLoader{
		url:          url,
		fallbackPath: fallbackPath,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Load fetches the published snapshot, preferring the remote artifact and
// degrading to the local development copy. A well-formed remote snapshot is
// returned unmodified.
func (l *SnapshotLoader) Load(ctx context.Context) (*models.StaticMenuSnapshot, error) {
	if l.url != "" {
		snapshot, err := l.fetchRemote(ctx)
		if err == nil {
			return snapshot, nil
		}
		log.Printf("SnapshotLoader: remote fetch failed, trying local fallback: %v", err)
	}

	snapshot, err := l.loadLocal()
	if err == nil {
		return snapshot, nil
	}
	if l.fallbackPath != "" {
		log.Printf("SnapshotLoader: local fallback failed: %v", err)
	}

	return nil, ErrNoSnapshot
}

func (l *SnapshotLoader) fetchRemote(ctx context.Context) (*models.StaticMenuSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot fetch returned status %d", resp.StatusCode)
	}

	var snapshot models.StaticMenuSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("snapshot is malformed: %w", err)
	}
	return &snapshot, nil
}

func (l *SnapshotLoader) loadLocal() (*models.StaticMenuSnapshot, error) {
	if l.fallbackPath == "" {
		return nil, errors.New("no fallback path configured")
	}

	raw, err := os.ReadFile(l.fallbackPath)
	if err != nil {
		return nil, err
	}

	var snapshot models.StaticMenuSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("local snapshot is malformed: %w", err)
	}
	return &snapshot, nil
}

// Stale reports whether the snapshot's lastUpdated is older than the
// threshold. Unparseable timestamps count as stale.
func Stale(snapshot *models.StaticMenuSnapshot) bool {
	updated, err := time.Parse(time.RFC3339, snapshot.LastUpdated)
	if err != nil {
		return true
	}
	return time.Since(updated) > StaleThreshold
}
