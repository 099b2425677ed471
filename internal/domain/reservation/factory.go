package reservation

import (
	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/catalog"
	"hotel-front-desk/internal/pkg/clock"
)

// Factory builds reservations with their booking-time ledger: exactly one
// RoomCharge line (rate × nights) plus one Extra line per selected extra,
// and the advance payment fixed as a percentage of that total.
type Factory struct {
	clock          clock.Clock
	advancePercent int
}

func NewFactory(clk clock.Clock, advancePercent int) *Factory {
	return &Factory{
		clock:          clk,
		advancePercent: advancePercent,
	}
}

// ExtraSelection is one extras-menu pick made during booking.
type ExtraSelection struct {
	Name      string
	UnitPrice billing.Money
	Qty       int
}

func (f *Factory) CreateReservation(
	guest GuestProfile,
	unit catalog.Unit,
	stay StayWindow,
	extras []ExtraSelection,
) (*Reservation, error) {
	now := f.clock.Now()
	ledger := billing.NewLedger()

	roomCharge := billing.ChargeInput{
		Category:    billing.CategoryRoomCharge,
		Description: unit.Name(),
		UnitPrice:   unit.Rate(),
		Qty:         stay.Nights(),
		AddedBy:     billing.ActorSystem,
	}
	if _, err := ledger.Append(roomCharge, now); err != nil {
		return nil, err
	}

	for _, extra := range extras {
		in := billing.ChargeInput{
			Category:    billing.CategoryExtra,
			Description: extra.Name,
			UnitPrice:   extra.UnitPrice,
			Qty:         extra.Qty,
			AddedBy:     billing.ActorGuest,
		}
		if _, err := ledger.Append(in, now); err != nil {
			return nil, err
		}
	}

	// The advance is the single rounding point of the system. It is fixed
	// here and never recomputed, no matter what the ledger does later.
	advance := billing.PercentOf(ledger.Total(), f.advancePercent)

	return newReservation(guest, unit, stay, ledger, advance, now), nil
}
