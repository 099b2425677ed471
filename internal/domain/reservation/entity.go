package reservation

import (
	"errors"
	"time"

	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/catalog"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrCodeAlreadySet    = errors.New("confirmation code already assigned")
)

// Reservation is the aggregate root for one stay: guest snapshot, unit
// snapshot, stay window, the owned charge ledger, the fixed advance payment,
// and the lifecycle status. Every mutation goes through a method here so the
// aggregate can refuse transitions that would lose or double-process money.
type Reservation struct {
	id          uuid.UUID
	code        string
	guest       GuestProfile
	unit        catalog.Unit
	stay        StayWindow
	ledger      *billing.Ledger
	advancePaid billing.Money
	status      Status
	createdAt   time.Time
}

func newReservation(guest GuestProfile, unit catalog.Unit, stay StayWindow, ledger *billing.Ledger, advancePaid billing.Money, createdAt time.Time) *Reservation {
	return &Reservation{
		id:          uuid.New(),
		guest:       guest,
		unit:        unit,
		stay:        stay,
		ledger:      ledger,
		advancePaid: advancePaid,
		status:      StatusBooked,
		createdAt:   createdAt,
	}
}

func Reconstruct(
	id uuid.UUID,
	code string,
	guest GuestProfile,
	unit catalog.Unit,
	stay StayWindow,
	ledger *billing.Ledger,
	advancePaid billing.Money,
	status Status,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		code:        code,
		guest:       guest,
		unit:        unit,
		stay:        stay,
		ledger:      ledger,
		advancePaid: advancePaid,
		status:      status,
		createdAt:   createdAt,
	}
}

// AssignCode sets the guest-facing confirmation code once, at admission into
// the record store.
func (r *Reservation) AssignCode(code string) error {
	if r.code != "" {
		return ErrCodeAlreadySet
	}
	r.code = code
	return nil
}

// CheckIn moves booked → checked_in. The ledger is untouched.
func (r *Reservation) CheckIn() error {
	if r.status != StatusBooked {
		return ErrIllegalTransition
	}
	r.status = StatusCheckedIn
	return nil
}

// AddStayItems appends in-stay additions. Only legal while checked in; the
// whole batch is validated before any line lands.
func (r *Reservation) AddStayItems(items []billing.ChargeInput, at time.Time) ([]billing.ChargeLine, error) {
	if r.status != StatusCheckedIn {
		return nil, ErrIllegalTransition
	}

	lg := r.ledger.Clone()
	lines := make([]billing.ChargeLine, 0, len(items))
	for _, item := range items {
		item.Category = billing.CategoryInStayAddition
		line, err := lg.Append(item, at)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	r.ledger = lg
	return lines, nil
}

// RetractLine removes an unsettled non-room line during the checkout review
// step. A completed reservation's ledger is frozen.
func (r *Reservation) RetractLine(seq int64) error {
	if r.status == StatusCompleted {
		return billing.ErrImmutableLine
	}
	return r.ledger.Retract(seq)
}

// Checkout settles the stay: each ad-hoc line is appended and the status
// becomes completed, or (on any invalid line) nothing at all is applied and
// the reservation stays checked in. A guest is never charged a partial bill.
func (r *Reservation) Checkout(adHoc []billing.ChargeInput, actor billing.Actor, at time.Time) error {
	if r.status != StatusCheckedIn {
		return ErrIllegalTransition
	}

	// Appends go to a clone; the owned ledger is only replaced once the
	// whole batch has landed.
	lg := r.ledger.Clone()
	for _, in := range adHoc {
		in.Category = billing.CategoryAdHoc
		in.AddedBy = actor
		if _, err := lg.Append(in, at); err != nil {
			return err
		}
	}
	r.ledger = lg
	r.status = StatusCompleted
	return nil
}

// Total recomputes the authoritative sum of all current charge lines.
func (r *Reservation) Total() billing.Money {
	return r.ledger.Total()
}

// BalanceDue is total minus the fixed advance. The signed value is kept for
// audit; display surfaces clamp it separately.
func (r *Reservation) BalanceDue() billing.Money {
	return r.ledger.Total().Sub(r.advancePaid)
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) Code() string               { return r.code }
func (r *Reservation) Guest() GuestProfile        { return r.guest }
func (r *Reservation) Unit() catalog.Unit         { return r.unit }
func (r *Reservation) Stay() StayWindow           { return r.stay }
func (r *Reservation) Lines() []billing.ChargeLine { return r.ledger.Lines() }
func (r *Reservation) AdvancePaid() billing.Money { return r.advancePaid }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }

// Clone deep-copies the aggregate, including the owned ledger. The record
// store mutates clones and publishes them whole, so readers only ever see a
// fully applied state.
func (r *Reservation) Clone() *Reservation {
	cp := *r
	cp.ledger = r.ledger.Clone()
	return &cp
}
