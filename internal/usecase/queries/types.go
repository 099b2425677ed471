package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID              uuid.UUID        `json:"id"`
	Code            string           `json:"code"`
	Status          string           `json:"status"`
	GuestName       string           `json:"guest_name"`
	GuestEmail      string           `json:"guest_email"`
	GuestPhone      string           `json:"guest_phone"`
	GuestAddress    string           `json:"guest_address,omitempty"`
	SpecialRequests string           `json:"special_requests,omitempty"`
	UnitID          string           `json:"unit_id"`
	UnitName        string           `json:"unit_name"`
	UnitCategory    string           `json:"unit_category"`
	UnitRate        int64            `json:"unit_rate_centavos"`
	CheckIn         time.Time        `json:"check_in"`
	CheckOut        time.Time        `json:"check_out"`
	Nights          int              `json:"nights"`
	PartySize       int              `json:"party_size"`
	Lines           []ChargeLineView `json:"lines"`
	TotalCentavos   int64            `json:"total_centavos"`
	AdvancePaid     int64            `json:"advance_paid_centavos"`
	BalanceDue      int64            `json:"balance_due_centavos"` // signed; clamp at display only
	CreatedAt       time.Time        `json:"created_at"`
}

type ChargeLineView struct {
	Seq         int64     `json:"seq"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	UnitPrice   int64     `json:"unit_price_centavos"`
	Qty         int       `json:"qty"`
	Amount      int64     `json:"amount_centavos"`
	AddedAt     time.Time `json:"added_at"`
	AddedBy     string    `json:"added_by"`
}

type ReservationListItem struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	Status        string    `json:"status"`
	GuestName     string    `json:"guest_name"`
	GuestEmail    string    `json:"guest_email"`
	GuestPhone    string    `json:"guest_phone"`
	UnitName      string    `json:"unit_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	TotalCentavos int64     `json:"total_centavos"`
	CreatedAt     time.Time `json:"created_at"`
}

// DeskBoardView backs the front-desk dashboard tabs.
type DeskBoardView struct {
	Date     time.Time              `json:"date"`
	Today    []*ReservationListItem `json:"today"`
	Upcoming []*ReservationListItem `json:"upcoming"`
	InHouse  []*ReservationListItem `json:"in_house"`
	All      []*ReservationListItem `json:"all"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

type UnitView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	RateCentavos int64  `json:"rate_centavos"`
	Capacity     int    `json:"capacity"`
	Description  string `json:"description,omitempty"`
}
