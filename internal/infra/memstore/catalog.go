package memstore

import (
	"context"

	"hotel-front-desk/internal/domain/catalog"
	"hotel-front-desk/internal/infra"
)

// CatalogStore serves the fixed set of bookable units. The catalog is
// immutable after construction; unit snapshots attached to reservations are
// copies and never see later catalog changes.
type CatalogStore struct {
	units []catalog.Unit
	byID  map[string]catalog.Unit
}

func NewCatalogStore(units []catalog.Unit) *CatalogStore {
	byID := make(map[string]catalog.Unit, len(units))
	for _, u := range units {
		byID[u.ID()] = u
	}
	return &CatalogStore{
		units: append([]catalog.Unit(nil), units...),
		byID:  byID,
	}
}

func (s *CatalogStore) Get(_ context.Context, id string) (catalog.Unit, error) {
	u, ok := s.byID[id]
	if !ok {
		return catalog.Unit{}, infra.WrapStoreErr(infra.KindNotFound, "unit "+id, nil)
	}
	return u, nil
}

// List filters by category (empty matches all) and minimum capacity.
func (s *CatalogStore) List(_ context.Context, category catalog.Category, minCapacity int) ([]catalog.Unit, error) {
	out := make([]catalog.Unit, 0, len(s.units))
	for _, u := range s.units {
		if category != "" && u.Category() != category {
			continue
		}
		if minCapacity > 0 && u.Capacity() < minCapacity {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}
