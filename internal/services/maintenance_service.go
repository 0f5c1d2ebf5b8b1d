package services

import (
	"context"

	"github.com/recipeshare/server/internal/apierr"
	"github.com/recipeshare/server/internal/store"
)

type MaintenanceService struct {
	store *store.Store
}

func NewMaintenanceService(st *store.Store) *MaintenanceService {
	return &MaintenanceService{store: st}
}

// ResetDemo discards the current dataset and reseeds. Outstanding session
// tokens keep working only if their user exists in the fresh seed.
func (s *MaintenanceService) ResetDemo(ctx context.Context) error {
	if _, err := s.store.Reset(ctx); err != nil {
		return apierr.StoreUnavailable()
	}
	return nil
}
