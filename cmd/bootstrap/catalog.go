package bootstrap

import (
	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/catalog"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		SeedUnits,
	),
)

type seedUnit struct {
	id          string
	name        string
	category    catalog.Category
	ratePesos   int64
	capacity    int
	description string
}

// The demo property: three room types, two banquet venues and one
// restaurant. Rates are per night (or per event) in whole pesos.
var seedUnits = []seedUnit{
	{"1", "Deluxe Suite", catalog.CategoryRoom, 7999, 2, "Spacious suite with city view and premium amenities"},
	{"2", "Executive Room", catalog.CategoryRoom, 4999, 2, "Comfortable room with modern amenities"},
	{"3", "Standard Room", catalog.CategoryRoom, 2999, 2, "Cozy room with essential amenities"},
	{"4", "Grand Ballroom", catalog.CategoryBanquet, 49999, 200, "Elegant ballroom perfect for weddings and corporate events"},
	{"5", "Crystal Hall", catalog.CategoryBanquet, 29999, 100, "Intimate venue for smaller celebrations"},
	{"6", "Le Jardin Restaurant", catalog.CategoryRestaurant, 2499, 8, "Fine dining with curated wine selection"},
}

func SeedUnits() ([]catalog.Unit, error) {
	units := make([]catalog.Unit, 0, len(seedUnits))
	for _, s := range seedUnits {
		unit, err := catalog.NewUnit(s.id, s.name, s.category, billing.Pesos(s.ratePesos), s.capacity, s.description)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}
