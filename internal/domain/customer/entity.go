package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("name is required")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// Customer is a registered self-service account. Anonymous bookings exist
// without one; a customer only links to reservations through its email.
type Customer struct {
	id           uuid.UUID
	name         string
	email        string
	phone        string
	passwordHash string
	createdAt    time.Time
}

func NewCustomer(name, email, phone, passwordHash string, now time.Time) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if phone == "" || !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	return &Customer{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		createdAt:    now,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, name, email, phone, passwordHash string, createdAt time.Time) *Customer {
	return &Customer{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) PasswordHash() string { return c.passwordHash }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// NormalizeEmail is the uniqueness key for registered customers. Email is
// case-insensitively unique among accounts, not across anonymous bookings.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
