package catalog

import (
	"errors"
	"strings"

	"hotel-front-desk/internal/domain/billing"
)

var (
	ErrInvalidCategory = errors.New("invalid unit category")
	ErrInvalidRate     = errors.New("unit rate cannot be negative")
	ErrInvalidCapacity = errors.New("unit capacity must be positive")
)

type Category string

const (
	CategoryRoom       Category = "room"
	CategoryBanquet    Category = "banquet"
	CategoryRestaurant Category = "restaurant"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryRoom, CategoryBanquet, CategoryRestaurant:
		return true
	default:
		return false
	}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Unit is a snapshot of one bookable catalog item. Once attached to a
// reservation the snapshot is frozen: later catalog price changes must not
// alter historical bookings.
type Unit struct {
	id          string
	name        string
	category    Category
	rate        billing.Money
	capacity    int
	description string
}

func NewUnit(id, name string, category Category, rate billing.Money, capacity int, description string) (Unit, error) {
	if !category.IsValid() {
		return Unit{}, ErrInvalidCategory
	}
	if rate.IsNegative() {
		return Unit{}, ErrInvalidRate
	}
	if capacity < 1 {
		return Unit{}, ErrInvalidCapacity
	}
	return Unit{
		id:          id,
		name:        name,
		category:    category,
		rate:        rate,
		capacity:    capacity,
		description: description,
	}, nil
}

func (u Unit) ID() string           { return u.id }
func (u Unit) Name() string         { return u.name }
func (u Unit) Category() Category   { return u.category }
func (u Unit) Rate() billing.Money  { return u.rate }
func (u Unit) Capacity() int        { return u.capacity }
func (u Unit) Description() string  { return u.description }
