//go:build unit

package builder

import (
	"time"

	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/catalog"
	"hotel-front-desk/internal/domain/reservation"
	"hotel-front-desk/internal/pkg/clock"
)

// ReservationBuilder assembles a reservation through the real factory, so
// built aggregates carry a proper room charge line and advance.
type ReservationBuilder struct {
	UnitID          string
	UnitName        string
	UnitCategory    catalog.Category
	UnitRatePesos   int64
	UnitCapacity    int
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	SpecialRequests string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	Extras          []reservation.ExtraSelection
	AdvancePercent  int
	Now             time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	manila := time.FixedZone("Asia/Manila", 8*60*60)
	checkIn := time.Date(2026, time.March, 10, 14, 0, 0, 0, manila)
	return &ReservationBuilder{
		UnitID:         "3",
		UnitName:       "Standard Room",
		UnitCategory:   catalog.CategoryRoom,
		UnitRatePesos:  2999,
		UnitCapacity:   2,
		FirstName:      "Maria",
		LastName:       "Santos",
		Email:          "maria.santos@example.com",
		Phone:          "+63 917 555 0143",
		CheckIn:        checkIn,
		CheckOut:       checkIn.AddDate(0, 0, 2),
		Guests:         2,
		AdvancePercent: 30,
		Now:            checkIn.AddDate(0, 0, -7),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithExtra(name string, pesos int64, qty int) *ReservationBuilder {
	b.Extras = append(b.Extras, reservation.ExtraSelection{
		Name:      name,
		UnitPrice: billing.Pesos(pesos),
		Qty:       qty,
	})
	return b
}

func (b *ReservationBuilder) BuildUnit() (catalog.Unit, error) {
	return catalog.NewUnit(b.UnitID, b.UnitName, b.UnitCategory, billing.Pesos(b.UnitRatePesos), b.UnitCapacity, "")
}

func (b *ReservationBuilder) BuildGuest() (reservation.GuestProfile, error) {
	return reservation.NewGuestProfile(b.FirstName, b.LastName, b.Email, b.Phone, b.Address, b.SpecialRequests)
}

func (b *ReservationBuilder) BuildStay() (reservation.StayWindow, error) {
	return reservation.NewStayWindow(b.CheckIn, b.CheckOut, b.Guests)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	unit, err := b.BuildUnit()
	if err != nil {
		return nil, err
	}
	guest, err := b.BuildGuest()
	if err != nil {
		return nil, err
	}
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}

	factory := reservation.NewFactory(clock.NewFixedClock(b.Now), b.AdvancePercent)
	return factory.CreateReservation(guest, unit, stay, b.Extras)
}
