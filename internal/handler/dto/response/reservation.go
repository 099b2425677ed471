package response

import (
	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/pkg/moneyfmt"
	"hotel-front-desk/internal/usecase/queries"
)

// ReservationResponse decorates the read model with display strings. The
// underlying centavo amounts stay authoritative.
type ReservationResponse struct {
	*queries.ReservationView
	TotalDisplay   string `json:"total_display"`
	BalanceDisplay string `json:"balance_display"`
}

func FromReservationView(view *queries.ReservationView) ReservationResponse {
	balance := billing.NewMoney(view.BalanceDue).ClampNonNegative()
	return ReservationResponse{
		ReservationView: view,
		TotalDisplay:    moneyfmt.Display(billing.NewMoney(view.TotalCentavos)),
		BalanceDisplay:  moneyfmt.Display(balance),
	}
}

type ReservationListResponse struct {
	Items []*queries.ReservationListItem `json:"items"`
	Count int                            `json:"count"`
}

func FromReservationList(items []*queries.ReservationListItem) ReservationListResponse {
	return ReservationListResponse{
		Items: items,
		Count: len(items),
	}
}

type DeskBoardResponse struct {
	*queries.DeskBoardView
}

func FromDeskBoardView(view *queries.DeskBoardView) DeskBoardResponse {
	return DeskBoardResponse{DeskBoardView: view}
}

type UnitListResponse struct {
	Units []*queries.UnitView `json:"units"`
	Count int                 `json:"count"`
}

func FromUnitList(units []*queries.UnitView) UnitListResponse {
	return UnitListResponse{
		Units: units,
		Count: len(units),
	}
}
