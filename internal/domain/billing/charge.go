package billing

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryRoomCharge     Category = "room_charge"
	CategoryExtra          Category = "extra"
	CategoryInStayAddition Category = "in_stay_addition"
	CategoryAdHoc          Category = "ad_hoc"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryRoomCharge, CategoryExtra, CategoryInStayAddition, CategoryAdHoc:
		return true
	default:
		return false
	}
}

// Actor records who appended a charge line.
type Actor string

const (
	ActorSystem Actor = "system"
	ActorGuest  Actor = "guest"
	ActorStaff  Actor = "staff"
)

func (a Actor) String() string {
	return string(a)
}

// ChargeInput is an unvalidated request to append one line.
type ChargeInput struct {
	Category    Category
	Description string
	UnitPrice   Money
	Qty         int
	AddedBy     Actor
}

func (in ChargeInput) Validate() error {
	if !in.Category.IsValid() {
		return ErrInvalidCharge
	}
	if strings.TrimSpace(in.Description) == "" {
		return ErrInvalidCharge
	}
	if in.Qty < 1 {
		return ErrInvalidCharge
	}
	if in.UnitPrice.IsNegative() {
		return ErrInvalidCharge
	}
	return nil
}

// ChargeLine is one itemized entry on a reservation's ledger. Immutable once
// appended; corrections are new AdHoc lines, removals are retractions.
type ChargeLine struct {
	Seq         int64
	Category    Category
	Description string
	UnitPrice   Money
	Qty         int
	AddedAt     time.Time
	AddedBy     Actor
}

func (l ChargeLine) Amount() Money {
	return l.UnitPrice.MulQty(l.Qty)
}
