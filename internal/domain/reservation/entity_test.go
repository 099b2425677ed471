//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-front-desk/internal/domain/billing"
	"hotel-front-desk/internal/domain/reservation"
	"hotel-front-desk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stayItem(desc string, pesos int64, qty int) billing.ChargeInput {
	return billing.ChargeInput{
		Description: desc,
		UnitPrice:   billing.Pesos(pesos),
		Qty:         qty,
		AddedBy:     billing.ActorStaff,
	}
}

func TestFactoryCreateReservation(t *testing.T) {
	t.Run("room charge covers the whole stay", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NotEqual(t, uuid.Nil, res.ID())
		assert.Empty(t, res.Code())
		assert.Equal(t, reservation.StatusBooked, res.Status())

		lines := res.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, billing.CategoryRoomCharge, lines[0].Category)
		assert.Equal(t, "Standard Room", lines[0].Description)
		assert.Equal(t, 2, lines[0].Qty)
		assert.Equal(t, billing.ActorSystem, lines[0].AddedBy)
		assert.Equal(t, billing.Pesos(5998), res.Total())
	})

	t.Run("extras are guest lines and feed the advance", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().
			WithExtra("Breakfast for 2", 800, 2).
			BuildDomain()
		require.NoError(t, err)

		lines := res.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, billing.CategoryExtra, lines[1].Category)
		assert.Equal(t, billing.ActorGuest, lines[1].AddedBy)

		// 5998 + 1600 = 7598; 30% = 2279.40 exactly
		assert.Equal(t, billing.Pesos(7598), res.Total())
		assert.Equal(t, int64(227_940), res.AdvancePaid().Centavos())
	})

	t.Run("invalid extra aborts creation", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			WithExtra("   ", 100, 1).
			BuildDomain()
		assert.ErrorIs(t, err, billing.ErrInvalidCharge)
	})
}

func TestReservationLifecycle(t *testing.T) {
	now := time.Now()

	newCheckedIn := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, res.CheckIn())
		return res
	}

	t.Run("forward only", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.CheckIn())
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())

		assert.ErrorIs(t, res.CheckIn(), reservation.ErrIllegalTransition)

		require.NoError(t, res.Checkout(nil, billing.ActorStaff, now))
		assert.Equal(t, reservation.StatusCompleted, res.Status())

		assert.ErrorIs(t, res.Checkout(nil, billing.ActorStaff, now), reservation.ErrIllegalTransition)
		assert.ErrorIs(t, res.CheckIn(), reservation.ErrIllegalTransition)
	})

	t.Run("booked reservation cannot check out", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		assert.ErrorIs(t, res.Checkout(nil, billing.ActorGuest, now), reservation.ErrIllegalTransition)
	})

	t.Run("stay items only while checked in", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		_, addErr := res.AddStayItems([]billing.ChargeInput{stayItem("Towel Set", 100, 1)}, now)
		assert.ErrorIs(t, addErr, reservation.ErrIllegalTransition)

		require.NoError(t, res.CheckIn())
		lines, addErr := res.AddStayItems([]billing.ChargeInput{stayItem("Towel Set", 100, 1)}, now)
		require.NoError(t, addErr)
		require.Len(t, lines, 1)
		assert.Equal(t, billing.CategoryInStayAddition, lines[0].Category)
	})

	t.Run("bad batch leaves the ledger untouched", func(t *testing.T) {
		res := newCheckedIn(t)
		before := res.Total()

		_, err := res.AddStayItems([]billing.ChargeInput{
			stayItem("Extra Blanket", 250, 1),
			stayItem("", 100, 1),
		}, now)
		assert.ErrorIs(t, err, billing.ErrInvalidCharge)
		assert.Equal(t, before, res.Total())
		assert.Len(t, res.Lines(), 1)
	})

	t.Run("failed checkout keeps the stay open", func(t *testing.T) {
		res := newCheckedIn(t)
		before := res.Total()

		err := res.Checkout([]billing.ChargeInput{
			{Description: "Minibar", UnitPrice: billing.Pesos(350), Qty: 1},
			{Description: "", UnitPrice: billing.Pesos(100), Qty: 1},
		}, billing.ActorStaff, now)
		assert.ErrorIs(t, err, billing.ErrInvalidCharge)
		assert.Equal(t, reservation.StatusCheckedIn, res.Status())
		assert.Equal(t, before, res.Total())
	})

	t.Run("checkout appends ad hoc lines as the acting party", func(t *testing.T) {
		res := newCheckedIn(t)

		err := res.Checkout([]billing.ChargeInput{
			{Description: "Minibar", UnitPrice: billing.Pesos(350), Qty: 1},
		}, billing.ActorGuest, now)
		require.NoError(t, err)

		lines := res.Lines()
		last := lines[len(lines)-1]
		assert.Equal(t, billing.CategoryAdHoc, last.Category)
		assert.Equal(t, billing.ActorGuest, last.AddedBy)
	})

	t.Run("completed ledger is frozen", func(t *testing.T) {
		res := newCheckedIn(t)
		lines, err := res.AddStayItems([]billing.ChargeInput{stayItem("Pillow", 150, 1)}, now)
		require.NoError(t, err)
		require.NoError(t, res.Checkout(nil, billing.ActorStaff, now))

		assert.ErrorIs(t, res.RetractLine(lines[0].Seq), billing.ErrImmutableLine)
	})

	t.Run("confirmation code is assigned once", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, res.AssignCode("BK000123"))
		assert.Equal(t, "BK000123", res.Code())
		assert.ErrorIs(t, res.AssignCode("BK000124"), reservation.ErrCodeAlreadySet)
	})
}

// Walks a stay end to end with pen-and-paper amounts: the advance is fixed
// at booking and the balance follows the ledger.
func TestReservationBillingScenario(t *testing.T) {
	now := time.Now()

	res, err := builder.NewReservationBuilder().
		With(func(b *builder.ReservationBuilder) {
			b.UnitName = "Garden Room"
			b.UnitRatePesos = 3000
		}).
		WithExtra("Breakfast for 2", 800, 2).
		BuildDomain()
	require.NoError(t, err)

	// Room 3000 x 2 nights + breakfast 800 x 2 = 7600; advance 30% = 2280.
	assert.Equal(t, billing.Pesos(7600), res.Total())
	assert.Equal(t, billing.Pesos(2280), res.AdvancePaid())

	require.NoError(t, res.CheckIn())
	_, err = res.AddStayItems([]billing.ChargeInput{stayItem("Towel Set", 100, 1)}, now)
	require.NoError(t, err)

	assert.Equal(t, billing.Pesos(7700), res.Total())
	assert.Equal(t, billing.Pesos(5420), res.BalanceDue())
	// The advance never moves after booking.
	assert.Equal(t, billing.Pesos(2280), res.AdvancePaid())

	err = res.Checkout([]billing.ChargeInput{
		{Description: "Minibar", UnitPrice: billing.Pesos(350), Qty: 1},
	}, billing.ActorStaff, now)
	require.NoError(t, err)

	assert.Equal(t, billing.Pesos(8050), res.Total())
	assert.Equal(t, billing.Pesos(5770), res.BalanceDue())
	assert.Equal(t, billing.Pesos(2280), res.AdvancePaid())
}

func TestReservationClone(t *testing.T) {
	now := time.Now()

	res, err := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, res.CheckIn())

	snapshot := res.Clone()
	_, err = res.AddStayItems([]billing.ChargeInput{stayItem("Extra Blanket", 250, 1)}, now)
	require.NoError(t, err)

	assert.Len(t, res.Lines(), 2)
	assert.Len(t, snapshot.Lines(), 1)
}
