package request

import (
	"strings"
	"time"

	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/reservation"
)

type ExtraSelectionRequest struct {
	Name           string `json:"name" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_centavos" binding:"min=0"`
	Qty            int    `json:"qty" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	UnitID          string                  `json:"unit_id" binding:"required"`
	CheckIn         time.Time               `json:"check_in" binding:"required"`
	CheckOut        time.Time               `json:"check_out" binding:"required"`
	Guests          int                     `json:"guests" binding:"required,min=1"`
	FirstName       string                  `json:"first_name" binding:"required"`
	LastName        string                  `json:"last_name" binding:"required"`
	Email           string                  `json:"email" binding:"required,email"`
	Phone           string                  `json:"phone" binding:"required"`
	Address         string                  `json:"address,omitempty"`
	SpecialRequests string                  `json:"special_requests,omitempty"`
	Extras          []ExtraSelectionRequest `json:"extras,omitempty"`

	// The booking form submits card details. They are accepted so strict
	// JSON decoding does not reject the payload, then discarded: no payment
	// processing happens and they never reach the domain.
	CardName   string `json:"card_name,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
	CardExpiry string `json:"card_expiry,omitempty"`
	CardCVC    string `json:"card_cvc,omitempty"`
}

func (r CreateReservationRequest) ToGuestProfile() (reservation.GuestProfile, error) {
	return reservation.NewGuestProfile(
		strings.TrimSpace(r.FirstName),
		strings.TrimSpace(r.LastName),
		strings.TrimSpace(r.Email),
		strings.TrimSpace(r.Phone),
		strings.TrimSpace(r.Address),
		strings.TrimSpace(r.SpecialRequests),
	)
}

func (r CreateReservationRequest) ToStayWindow() (reservation.StayWindow, error) {
	return reservation.NewStayWindow(r.CheckIn, r.CheckOut, r.Guests)
}

func (r CreateReservationRequest) ToExtras() []reservation.ExtraSelection {
	out := make([]reservation.ExtraSelection, 0, len(r.Extras))
	for _, e := range r.Extras {
		out = append(out, reservation.ExtraSelection{
			Name:      strings.TrimSpace(e.Name),
			UnitPrice: billing.NewMoney(e.UnitPriceCents),
			Qty:       e.Qty,
		})
	}
	return out
}

type ChargeItemRequest struct {
	Description    string `json:"description" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_centavos" binding:"min=0"`
	Qty            int    `json:"qty" binding:"required,min=1"`
}

type AddChargesRequest struct {
	Items []ChargeItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r AddChargesRequest) ToChargeInputs(category billing.Category, actor billing.Actor) []billing.ChargeInput {
	out := make([]billing.ChargeInput, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, billing.ChargeInput{
			Category:    category,
			Description: strings.TrimSpace(item.Description),
			UnitPrice:   billing.NewMoney(item.UnitPriceCents),
			Qty:         item.Qty,
			AddedBy:     actor,
		})
	}
	return out
}

type CheckoutRequest struct {
	AdHocItems []ChargeItemRequest `json:"ad_hoc_items,omitempty"`
}

func (r CheckoutRequest) ToChargeInputs(actor billing.Actor) []billing.ChargeInput {
	out := make([]billing.ChargeInput, 0, len(r.AdHocItems))
	for _, item := range r.AdHocItems {
		out = append(out, billing.ChargeInput{
			Category:    billing.CategoryAdHoc,
			Description: strings.TrimSpace(item.Description),
			UnitPrice:   billing.NewMoney(item.UnitPriceCents),
			Qty:         item.Qty,
			AddedBy:     actor,
		})
	}
	return out
}
