package queries

import (
	"context"

	"hotel-front-desk/internal/domain/catalog"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/pkg/errs"
)

type CatalogReader interface {
	Get(ctx context.Context, id string) (catalog.Unit, error)
	List(ctx context.Context, category catalog.Category, minCapacity int) ([]catalog.Unit, error)
}

type CatalogQueries interface {
	GetUnit(ctx context.Context, id string) (*UnitView, error)
	ListUnits(ctx context.Context, category string, minCapacity int) ([]*UnitView, error)
}

type catalogQueriesImpl struct {
	reader CatalogReader
}

func NewCatalogQueries(reader CatalogReader) CatalogQueries {
	return &catalogQueriesImpl{reader: reader}
}

func (q *catalogQueriesImpl) GetUnit(ctx context.Context, id string) (*UnitView, error) {
	unit, err := q.reader.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, err
	}
	return NewUnitView(unit), nil
}

func (q *catalogQueriesImpl) ListUnits(ctx context.Context, category string, minCapacity int) ([]*UnitView, error) {
	var cat catalog.Category
	if category != "" {
		parsed, err := catalog.ParseCategory(category)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		cat = parsed
	}

	units, err := q.reader.List(ctx, cat, minCapacity)
	if err != nil {
		return nil, err
	}

	out := make([]*UnitView, 0, len(units))
	for _, u := range units {
		out = append(out, NewUnitView(u))
	}
	return out, nil
}
