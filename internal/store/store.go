// Package store is the storage gateway for the demo dataset. The whole
// dataset is one versioned JSON blob under a fixed key; every read loads the
// entire container and every write re-serializes it wholesale.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/models"
)

// DatasetKey is the fixed KV key holding the container blob.
const DatasetKey = "recipeshare.db"

// Store wraps a KV backend with load/save/update/reset semantics. A missing,
// corrupt or version-mismatched blob silently reseeds; only backend failures
// surface as errors. The mutex serializes read-modify-write cycles so two
// in-flight mutations cannot overwrite each other's writes.
type Store struct {
	kv   KV
	seed func() *models.Dataset
	mu   sync.Mutex
}

func New(kv KV, seed func() *models.Dataset) *Store {
	return &Store{kv: kv, seed: seed}
}

// Load returns the persisted dataset, reseeding when nothing usable is
// stored.
func (s *Store) Load(ctx context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) (*models.Dataset, error) {
	raw, found, err := s.kv.Get(ctx, DatasetKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return s.reset(ctx)
	}

	var ds models.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		slog.Warn("stored dataset is corrupt, reseeding", "error", err)
		return s.reset(ctx)
	}
	if ds.Version != models.SchemaVersion {
		slog.Warn("stored dataset has wrong schema version, reseeding", "version", ds.Version)
		return s.reset(ctx)
	}
	return &ds, nil
}

// Save persists the dataset unconditionally.
func (s *Store) Save(ctx context.Context, ds *models.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, ds)
}

func (s *Store) save(ctx context.Context, ds *models.Dataset) error {
	raw, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	return s.kv.Set(ctx, DatasetKey, raw)
}

// Update loads the dataset, applies mutate and persists the result. The whole
// cycle runs under the store lock.
func (s *Store) Update(ctx context.Context, mutate func(*models.Dataset)) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	mutate(ds)
	if err := s.save(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// Reset regenerates a fresh seeded dataset and persists it.
func (s *Store) Reset(ctx context.Context) (*models.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset(ctx)
}

func (s *Store) reset(ctx context.Context) (*models.Dataset, error) {
	fresh := s.seed()
	if err := s.save(ctx, fresh); err != nil {
		return nil, err
	}
	slog.Info("dataset reseeded",
		"users", len(fresh.Users),
		"recipes", len(fresh.Recipes),
		"categories", len(fresh.Categories))
	return fresh, nil
}

// Require loads the dataset and maps backend failures to the demo-data
// unavailable error.
func (s *Store) Require(ctx context.Context) (*models.Dataset, error) {
	ds, err := s.Load(ctx)
	if err != nil {
		slog.Error("dataset unavailable", "error", err)
		return nil, apierr.StoreUnavailable()
	}
	return ds, nil
}

// Ping verifies the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	_, _, err := s.kv.Get(ctx, DatasetKey)
	return err
}
