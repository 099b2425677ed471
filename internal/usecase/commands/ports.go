package commands

import (
	"context"

	"hotel-front-desk/internal/domain/catalog"
	"hotel-front-desk/internal/domain/customer"
	"hotel-front-desk/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReservationStore is the write surface of the record store. Update runs
// fn against a private copy under the record's lock and publishes the
// result only when fn succeeds.
type ReservationStore interface {
	Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*reservation.Reservation) error) (*reservation.Reservation, error)
}

type CatalogStore interface {
	Get(ctx context.Context, id string) (catalog.Unit, error)
}

type CustomerStore interface {
	Create(ctx context.Context, c *customer.Customer) error
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
}
