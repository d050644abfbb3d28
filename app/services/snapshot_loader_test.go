package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSnapshotJSON = `{
  "categories": [{"id": "c1", "name": "Espresso", "slug": "espresso", "displayOrder": 1, "active": true}],
  "menuItems": [],
  "sizes": [],
  "attributes": [],
  "lastUpdated": "2026-08-01T10:00:00Z",
  "version": "abc1234"
}`

func TestLoad_ReturnsRemoteSnapshotUnmodified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleSnapshotJSON))
	}))
	defer server.Close()

	loader := NewSnapshotLoader(server.URL, "")
	snapshot, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "abc1234", snapshot.Version)
	assert.Equal(t, "2026-08-01T10:00:00Z", snapshot.LastUpdated)
	require.Len(t, snapshot.Categories, 1)
	assert.Equal(t, "Espresso", snapshot.Categories[0].Name)
}

func TestLoad_FallsBackToLocalCopyOn404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fallback := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(fallback, []byte(sampleSnapshotJSON), 0o644))

	loader := NewSnapshotLoader(server.URL, fallback)
	snapshot, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc1234", snapshot.Version)
}

func TestLoad_NoSourcesReturnsStructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	loader := NewSnapshotLoader(server.URL, filepath.Join(t.TempDir(), "missing.json"))
	snapshot, err := loader.Load(context.Background())
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLoad_MalformedRemoteFallsThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	loader := NewSnapshotLoader(server.URL, "")
	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestStale(t *testing.T) {
	fresh := &models.StaticMenuSnapshot{LastUpdated: time.Now().UTC().Format(time.RFC3339)}
	assert.False(t, Stale(fresh))

	old := &models.StaticMenuSnapshot{LastUpdated: time.Now().Add(-25 * time.Hour).UTC().Format(time.RFC3339)}
	assert.True(t, Stale(old))

	garbage := &models.StaticMenuSnapshot{LastUpdated: "yesterday-ish"}
	assert.True(t, Stale(garbage))
}
