//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-front-desk/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeInput(category billing.Category, desc string, pesos int64, qty int) billing.ChargeInput {
	return billing.ChargeInput{
		Category:    category,
		Description: desc,
		UnitPrice:   billing.Pesos(pesos),
		Qty:         qty,
		AddedBy:     billing.ActorStaff,
	}
}

func TestLedgerAppend(t *testing.T) {
	now := time.Now()

	t.Run("seq starts at one and is monotonic", func(t *testing.T) {
		lg := billing.NewLedger()

		first, err := lg.Append(chargeInput(billing.CategoryRoomCharge, "Standard Room", 2999, 2), now)
		require.NoError(t, err)
		second, err := lg.Append(chargeInput(billing.CategoryExtra, "Breakfast for 2", 800, 1), now)
		require.NoError(t, err)

		assert.Equal(t, int64(1), first.Seq)
		assert.Equal(t, int64(2), second.Seq)
		assert.Equal(t, 2, lg.Len())
	})

	t.Run("retracted seq is never reused", func(t *testing.T) {
		lg := billing.NewLedger()

		_, err := lg.Append(chargeInput(billing.CategoryExtra, "Bathrobe", 250, 1), now)
		require.NoError(t, err)
		require.NoError(t, lg.Retract(1))

		next, err := lg.Append(chargeInput(billing.CategoryExtra, "Extra Towels", 100, 1), now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), next.Seq)
	})

	t.Run("validation rejects bad input", func(t *testing.T) {
		lg := billing.NewLedger()

		cases := []struct {
			name string
			in   billing.ChargeInput
		}{
			{"unknown category", chargeInput("minibar", "Snacks", 100, 1)},
			{"empty description", chargeInput(billing.CategoryExtra, "   ", 100, 1)},
			{"zero quantity", chargeInput(billing.CategoryExtra, "Pillow", 150, 0)},
			{"negative quantity", chargeInput(billing.CategoryExtra, "Pillow", 150, -1)},
			{"negative price", chargeInput(billing.CategoryExtra, "Pillow", -150, 1)},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := lg.Append(tc.in, now)
				assert.ErrorIs(t, err, billing.ErrInvalidCharge)
			})
		}
		assert.Equal(t, 0, lg.Len())
	})

	t.Run("line amount is price times qty", func(t *testing.T) {
		lg := billing.NewLedger()
		line, err := lg.Append(chargeInput(billing.CategoryInStayAddition, "Extra Blanket", 250, 3), now)
		require.NoError(t, err)
		assert.Equal(t, billing.Pesos(750), line.Amount())
	})
}

func TestLedgerRetract(t *testing.T) {
	now := time.Now()

	t.Run("room charge is immutable", func(t *testing.T) {
		lg := billing.NewLedger()
		line, err := lg.Append(chargeInput(billing.CategoryRoomCharge, "Deluxe Suite", 7999, 1), now)
		require.NoError(t, err)

		assert.ErrorIs(t, lg.Retract(line.Seq), billing.ErrImmutableLine)
		assert.Equal(t, 1, lg.Len())
	})

	t.Run("unknown seq", func(t *testing.T) {
		lg := billing.NewLedger()
		assert.ErrorIs(t, lg.Retract(99), billing.ErrLineNotFound)
	})

	t.Run("retract drops the line from the total", func(t *testing.T) {
		lg := billing.NewLedger()
		_, err := lg.Append(chargeInput(billing.CategoryExtra, "Airport Transport", 1200, 1), now)
		require.NoError(t, err)
		extra, err := lg.Append(chargeInput(billing.CategoryExtra, "Breakfast for 2", 800, 2), now)
		require.NoError(t, err)

		require.NoError(t, lg.Retract(extra.Seq))
		assert.Equal(t, billing.Pesos(1200), lg.Total())

		_, found := lg.Find(extra.Seq)
		assert.False(t, found)
	})
}

func TestLedgerTotal(t *testing.T) {
	now := time.Now()

	t.Run("total is recomputed from lines", func(t *testing.T) {
		lg := billing.NewLedger()
		assert.True(t, lg.Total().IsZero())

		_, err := lg.Append(chargeInput(billing.CategoryRoomCharge, "Standard Room", 2999, 2), now)
		require.NoError(t, err)
		_, err = lg.Append(chargeInput(billing.CategoryInStayAddition, "Towel Set", 100, 1), now)
		require.NoError(t, err)

		assert.Equal(t, billing.Pesos(6098), lg.Total())
	})
}

func TestLedgerClone(t *testing.T) {
	now := time.Now()

	lg := billing.NewLedger()
	_, err := lg.Append(chargeInput(billing.CategoryRoomCharge, "Executive Room", 4999, 1), now)
	require.NoError(t, err)

	clone := lg.Clone()
	_, err = clone.Append(chargeInput(billing.CategoryAdHoc, "Minibar", 350, 1), now)
	require.NoError(t, err)

	assert.Equal(t, 1, lg.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, billing.Pesos(4999), lg.Total())
	assert.Equal(t, billing.Pesos(5349), clone.Total())
}

func TestLedgerLinesCopy(t *testing.T) {
	now := time.Now()

	lg := billing.NewLedger()
	_, err := lg.Append(chargeInput(billing.CategoryExtra, "Extra Pillows", 150, 1), now)
	require.NoError(t, err)

	lines := lg.Lines()
	lines[0].Description = "mutated"

	fresh := lg.Lines()
	assert.Equal(t, "Extra Pillows", fresh[0].Description)
}
