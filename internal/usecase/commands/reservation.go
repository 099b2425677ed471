package commands

import (
	"context"
	"errors"

	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/reservation"
	reqdto "hotel-front-desk/internal/handler/dto/request"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	AddStayCharges(ctx context.Context, id uuid.UUID, req reqdto.AddChargesRequest, actor billing.Actor) (*queries.ReservationView, error)
	RetractCharge(ctx context.Context, id uuid.UUID, seq int64) (*queries.ReservationView, error)
	Checkout(ctx context.Context, id uuid.UUID, req reqdto.CheckoutRequest, actor billing.Actor) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	store   ReservationStore
	catalog CatalogStore
	factory *reservation.Factory
	clock   clock.Clock
}

func NewReservationCommands(
	store ReservationStore,
	catalog CatalogStore,
	factory *reservation.Factory,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		store:   store,
		catalog: catalog,
		factory: factory,
		clock:   clk,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	unit, err := c.catalog.Get(ctx, req.UnitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, err
	}

	guest, err := req.ToGuestProfile()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	stay, err := req.ToStayWindow()
	if err != nil {
		if errors.Is(err, reservation.ErrInvalidStayWindow) {
			return nil, errs.Mark(err, errs.ErrInvalidStayWindow)
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	res, err := c.factory.CreateReservation(guest, unit, stay, req.ToExtras())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	stored, err := c.store.Create(ctx, res)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(err, errs.ErrConcurrentModification)
		}
		return nil, err
	}
	return queries.NewReservationView(stored), nil
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	updated, err := c.store.Update(ctx, id, func(res *reservation.Reservation) error {
		return res.CheckIn()
	})
	if err != nil {
		return nil, c.translateUpdateErr(err)
	}
	return queries.NewReservationView(updated), nil
}

func (c *reservationCommandsImpl) AddStayCharges(ctx context.Context, id uuid.UUID, req reqdto.AddChargesRequest, actor billing.Actor) (*queries.ReservationView, error) {
	items := req.ToChargeInputs(billing.CategoryInStayAddition, actor)
	now := c.clock.Now()

	updated, err := c.store.Update(ctx, id, func(res *reservation.Reservation) error {
		_, appendErr := res.AddStayItems(items, now)
		return appendErr
	})
	if err != nil {
		return nil, c.translateUpdateErr(err)
	}
	return queries.NewReservationView(updated), nil
}

func (c *reservationCommandsImpl) RetractCharge(ctx context.Context, id uuid.UUID, seq int64) (*queries.ReservationView, error) {
	updated, err := c.store.Update(ctx, id, func(res *reservation.Reservation) error {
		return res.RetractLine(seq)
	})
	if err != nil {
		return nil, c.translateUpdateErr(err)
	}
	return queries.NewReservationView(updated), nil
}

func (c *reservationCommandsImpl) Checkout(ctx context.Context, id uuid.UUID, req reqdto.CheckoutRequest, actor billing.Actor) (*queries.ReservationView, error) {
	adHoc := req.ToChargeInputs(actor)
	now := c.clock.Now()

	updated, err := c.store.Update(ctx, id, func(res *reservation.Reservation) error {
		return res.Checkout(adHoc, actor, now)
	})
	if err != nil {
		return nil, c.translateUpdateErr(err)
	}
	return queries.NewReservationView(updated), nil
}

func (c *reservationCommandsImpl) translateUpdateErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	case errors.Is(err, reservation.ErrIllegalTransition):
		return errs.Mark(err, errs.ErrIllegalTransition)
	case errors.Is(err, billing.ErrInvalidCharge):
		return errs.Mark(err, errs.ErrInvalidCharge)
	case errors.Is(err, billing.ErrLineNotFound):
		return errs.Mark(err, errs.ErrLineNotFound)
	case errors.Is(err, billing.ErrImmutableLine):
		return errs.Mark(err, errs.ErrImmutableLine)
	default:
		return err
	}
}
