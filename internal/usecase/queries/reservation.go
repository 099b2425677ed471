package queries

import (
	"context"
	"regexp"
	"strings"
	"time"

	"hotel-front-desk/internal/domain/reservation"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

// CheckedInFilter selects how the guest self-checkout lookup matches.
type CheckedInFilter string

const (
	FilterByCode  CheckedInFilter = "code"
	FilterByEmail CheckedInFilter = "email"
	FilterByPhone CheckedInFilter = "phone"
)

func ParseCheckedInFilter(s string) (CheckedInFilter, error) {
	switch CheckedInFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterByCode:
		return FilterByCode, nil
	case FilterByEmail:
		return FilterByEmail, nil
	case FilterByPhone:
		return FilterByPhone, nil
	default:
		return "", errs.Newf("unknown checkout search filter %q", s)
	}
}

// ReservationReader is the snapshot read surface of the record store.
type ReservationReader interface {
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	List(ctx context.Context) ([]*reservation.Reservation, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByGuestContact(ctx context.Context, email, phone string) ([]*ReservationListItem, error)
	FindCheckedIn(ctx context.Context, filter CheckedInFilter, value string) ([]*ReservationListItem, error)
	DeskBoard(ctx context.Context, date time.Time) (*DeskBoardView, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	reader ReservationReader
}

func NewReservationQueries(reader ReservationReader) ReservationQueries {
	return &reservationQueriesImpl{reader: reader}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	res, err := q.reader.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return NewReservationView(res), nil
}

var nonDigits = regexp.MustCompile(`\D`)

// FindByGuestContact matches email by case-insensitive substring and phone
// by digit-only substring, mirroring how contact details were historically
// displayed and searched at the desk.
func (q *reservationQueriesImpl) FindByGuestContact(ctx context.Context, email, phone string) ([]*ReservationListItem, error) {
	all, err := q.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	emailNeedle := strings.ToLower(strings.TrimSpace(email))
	phoneNeedle := nonDigits.ReplaceAllString(phone, "")

	out := make([]*ReservationListItem, 0)
	for _, res := range all {
		if matchesContact(res, emailNeedle, phoneNeedle) {
			out = append(out, NewReservationListItem(res))
		}
	}
	return out, nil
}

func matchesContact(res *reservation.Reservation, emailNeedle, phoneNeedle string) bool {
	if emailNeedle != "" && strings.Contains(strings.ToLower(res.Guest().Email()), emailNeedle) {
		return true
	}
	if phoneNeedle != "" && strings.Contains(res.Guest().PhoneDigits(), phoneNeedle) {
		return true
	}
	return false
}

// FindCheckedIn only ever considers currently checked-in stays: a booked
// stay cannot be checked out and a completed stay cannot be checked out
// twice.
func (q *reservationQueriesImpl) FindCheckedIn(ctx context.Context, filter CheckedInFilter, value string) ([]*ReservationListItem, error) {
	all, err := q.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*ReservationListItem, 0)
	for _, res := range all {
		if res.Status() != reservation.StatusCheckedIn {
			continue
		}
		if matchesCheckedInFilter(res, filter, value) {
			out = append(out, NewReservationListItem(res))
		}
	}
	return out, nil
}

func matchesCheckedInFilter(res *reservation.Reservation, filter CheckedInFilter, value string) bool {
	switch filter {
	case FilterByCode:
		return strings.Contains(strings.ToLower(res.Code()), strings.ToLower(strings.TrimSpace(value)))
	case FilterByEmail:
		return strings.Contains(strings.ToLower(res.Guest().Email()), strings.ToLower(strings.TrimSpace(value)))
	case FilterByPhone:
		needle := nonDigits.ReplaceAllString(value, "")
		return needle != "" && strings.Contains(res.Guest().PhoneDigits(), needle)
	default:
		return false
	}
}

// DeskBoard partitions by the check-in date: calendar-day equality for
// today's arrivals, strictly later days for upcoming.
func (q *reservationQueriesImpl) DeskBoard(ctx context.Context, date time.Time) (*DeskBoardView, error) {
	all, err := q.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	board := &DeskBoardView{
		Date:     date,
		Today:    make([]*ReservationListItem, 0),
		Upcoming: make([]*ReservationListItem, 0),
		InHouse:  make([]*ReservationListItem, 0),
		All:      make([]*ReservationListItem, 0, len(all)),
	}
	for _, res := range all {
		item := NewReservationListItem(res)
		board.All = append(board.All, item)
		if res.Stay().ArrivesOn(date) {
			board.Today = append(board.Today, item)
		}
		if res.Stay().ArrivesAfter(date) {
			board.Upcoming = append(board.Upcoming, item)
		}
		if res.Status() == reservation.StatusCheckedIn {
			board.InHouse = append(board.InHouse, item)
		}
	}
	return board, nil
}

// ListByCustomerEmail is the customer portal history: exact email match,
// case-insensitive, across every lifecycle state.
func (q *reservationQueriesImpl) ListByCustomerEmail(ctx context.Context, email string) ([]*ReservationListItem, error) {
	all, err := q.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(email))
	out := make([]*ReservationListItem, 0)
	for _, res := range all {
		if strings.ToLower(res.Guest().Email()) == needle {
			out = append(out, NewReservationListItem(res))
		}
	}
	return out, nil
}
