package store

import (
	"context"

	"finaura/api/models"
)

// Provider supplies the current financial snapshot. It is queried once per request.
type Provider interface {
	Snapshot(ctx context.Context) (*models.Snapshot, error)
}

// Static serves a fixed in-memory snapshot.
type Static struct {
	snap *models.Snapshot
}

func NewStatic(snap *models.Snapshot) *Static {
	return &Static{snap: snap}
}

func (s *Static) Snapshot(_ context.Context) (*models.Snapshot, error) {
	if s.snap == nil {
		return nil, models.ErrMissingProfileData
	}
	return s.snap, nil
}
