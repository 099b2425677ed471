package queries

import (
	"hotel-front-desk/internal/domain/catalog"
	"hotel-front-desk/internal/domain/customer"
	"hotel-front-desk/internal/domain/reservation"
)

func NewReservationView(res *reservation.Reservation) *ReservationView {
	lines := res.Lines()
	lineViews := make([]ChargeLineView, 0, len(lines))
	for _, line := range lines {
		lineViews = append(lineViews, ChargeLineView{
			Seq:         line.Seq,
			Category:    line.Category.String(),
			Description: line.Description,
			UnitPrice:   line.UnitPrice.Centavos(),
			Qty:         line.Qty,
			Amount:      line.Amount().Centavos(),
			AddedAt:     line.AddedAt,
			AddedBy:     line.AddedBy.String(),
		})
	}

	guest := res.Guest()
	unit := res.Unit()
	stay := res.Stay()

	return &ReservationView{
		ID:              res.ID(),
		Code:            res.Code(),
		Status:          res.Status().String(),
		GuestName:       guest.FullName(),
		GuestEmail:      guest.Email(),
		GuestPhone:      guest.Phone(),
		GuestAddress:    guest.Address(),
		SpecialRequests: guest.SpecialRequests(),
		UnitID:          unit.ID(),
		UnitName:        unit.Name(),
		UnitCategory:    unit.Category().String(),
		UnitRate:        unit.Rate().Centavos(),
		CheckIn:         stay.CheckIn(),
		CheckOut:        stay.CheckOut(),
		Nights:          stay.Nights(),
		PartySize:       stay.Guests(),
		Lines:           lineViews,
		TotalCentavos:   res.Total().Centavos(),
		AdvancePaid:     res.AdvancePaid().Centavos(),
		BalanceDue:      res.BalanceDue().Centavos(),
		CreatedAt:       res.CreatedAt(),
	}
}

func NewReservationListItem(res *reservation.Reservation) *ReservationListItem {
	guest := res.Guest()
	stay := res.Stay()
	return &ReservationListItem{
		ID:            res.ID(),
		Code:          res.Code(),
		Status:        res.Status().String(),
		GuestName:     guest.FullName(),
		GuestEmail:    guest.Email(),
		GuestPhone:    guest.Phone(),
		UnitName:      res.Unit().Name(),
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
		TotalCentavos: res.Total().Centavos(),
		CreatedAt:     res.CreatedAt(),
	}
}

func NewCustomerView(c *customer.Customer) *CustomerView {
	return &CustomerView{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt(),
	}
}

func NewUnitView(u catalog.Unit) *UnitView {
	return &UnitView{
		ID:           u.ID(),
		Name:         u.Name(),
		Category:     u.Category().String(),
		RateCentavos: u.Rate().Centavos(),
		Capacity:     u.Capacity(),
		Description:  u.Description(),
	}
}
