//go:build unit

package customer_test

import (
	"testing"
	"time"

	"hotel-front-desk/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	now := time.Now()

	t.Run("valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Maria Santos", "  maria.santos@example.com ", "+63 917 555 0143", "hashed", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, c.ID())
		assert.Equal(t, "maria.santos@example.com", c.Email())
		assert.Equal(t, "hashed", c.PasswordHash())
		assert.Equal(t, now, c.CreatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			cname string
			email string
			phone string
		}{
			{"empty name", "", "a@b.com", "0917"},
			{"bad email", "Maria", "not-an-email", "0917"},
			{"bad phone", "Maria", "a@b.com", "call me"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := customer.NewCustomer(tc.cname, tc.email, tc.phone, "hashed", now)
				assert.Error(t, err)
			})
		}
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "maria@example.com", customer.NormalizeEmail("  Maria@Example.COM "))
	assert.Equal(t, "", customer.NormalizeEmail("   "))
}
