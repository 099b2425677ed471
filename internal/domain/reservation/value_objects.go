package reservation

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidStayWindow = errors.New("check-out must be after check-in")
	ErrInvalidPartySize  = errors.New("party size must be positive")
	ErrInvalidGuestName  = errors.New("guest name is required")
	ErrInvalidGuestEmail = errors.New("invalid guest email")
	ErrInvalidGuestPhone = errors.New("invalid guest phone")
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// StayWindow is the booked date range plus party size. Check-out must be
// strictly after check-in; billing still floors at one night, so a window
// shorter than a day bills as one.
type StayWindow struct {
	checkIn  time.Time
	checkOut time.Time
	guests   int
}

func NewStayWindow(checkIn, checkOut time.Time, guests int) (StayWindow, error) {
	if !checkOut.After(checkIn) {
		return StayWindow{}, ErrInvalidStayWindow
	}
	if guests < 1 {
		return StayWindow{}, ErrInvalidPartySize
	}
	return StayWindow{checkIn: checkIn, checkOut: checkOut, guests: guests}, nil
}

func (w StayWindow) CheckIn() time.Time  { return w.checkIn }
func (w StayWindow) CheckOut() time.Time { return w.checkOut }
func (w StayWindow) Guests() int         { return w.guests }

// Nights is the billable unit count: ceiling of the window in whole days,
// never less than one.
func (w StayWindow) Nights() int {
	d := w.checkOut.Sub(w.checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}

// ArrivesOn reports calendar-day equality of the check-in date, ignoring
// time of day. The check-in is read in the given date's location, so a
// booking made with a client offset lands on the same day the desk sees.
func (w StayWindow) ArrivesOn(date time.Time) bool {
	y1, m1, d1 := w.checkIn.In(date.Location()).Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ArrivesAfter reports whether check-in falls on a strictly later calendar
// day than the given date, using the same location convention as ArrivesOn.
// Together the two predicates split arrivals into past, today and upcoming
// with no gaps.
func (w StayWindow) ArrivesAfter(date time.Time) bool {
	y1, m1, d1 := w.checkIn.In(date.Location()).Date()
	y2, m2, d2 := date.Date()
	if y1 != y2 {
		return y1 > y2
	}
	if m1 != m2 {
		return m1 > m2
	}
	return d1 > d2
}

// GuestProfile is the guest contact snapshot captured at booking time. It is
// kept whether or not the guest holds a registered customer account.
type GuestProfile struct {
	firstName       string
	lastName        string
	email           string
	phone           string
	address         string
	specialRequests string
}

func NewGuestProfile(firstName, lastName, email, phone, address, specialRequests string) (GuestProfile, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return GuestProfile{}, ErrInvalidGuestName
	}

	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return GuestProfile{}, ErrInvalidGuestEmail
	}

	phone = strings.TrimSpace(phone)
	if phone == "" || !phonePattern.MatchString(phone) {
		return GuestProfile{}, ErrInvalidGuestPhone
	}

	return GuestProfile{
		firstName:       firstName,
		lastName:        lastName,
		email:           email,
		phone:           phone,
		address:         strings.TrimSpace(address),
		specialRequests: strings.TrimSpace(specialRequests),
	}, nil
}

func (g GuestProfile) FirstName() string       { return g.firstName }
func (g GuestProfile) LastName() string        { return g.lastName }
func (g GuestProfile) FullName() string        { return g.firstName + " " + g.lastName }
func (g GuestProfile) Email() string           { return g.email }
func (g GuestProfile) Phone() string           { return g.phone }
func (g GuestProfile) Address() string         { return g.address }
func (g GuestProfile) SpecialRequests() string { return g.specialRequests }

// PhoneDigits strips formatting for digit-substring phone matching, the
// historical behavior of the front-desk lookup.
func (g GuestProfile) PhoneDigits() string {
	return nonDigitPattern.ReplaceAllString(g.phone, "")
}
