//go:build unit

package billing_test

import (
	"testing"

	"hotel-front-desk/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("arithmetic stays in centavos", func(t *testing.T) {
		a := billing.NewMoney(100_000) // ₱1000
		b := billing.NewMoney(25_050)  // ₱250.50

		assert.Equal(t, int64(125_050), a.Add(b).Centavos())
		assert.Equal(t, int64(74_950), a.Sub(b).Centavos())
		assert.Equal(t, int64(300_000), a.MulQty(3).Centavos())
	})

	t.Run("negative construction", func(t *testing.T) {
		m, err := billing.NewMoneyFromInt(-1)
		require.Error(t, err)
		assert.Equal(t, int64(0), m.Centavos())

		m, err = billing.NewMoneyFromInt(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("clamp non-negative", func(t *testing.T) {
		over := billing.NewMoney(100).Sub(billing.NewMoney(250))
		assert.True(t, over.IsNegative())
		assert.Equal(t, int64(-150), over.Centavos())
		assert.Equal(t, int64(0), over.ClampNonNegative().Centavos())

		pos := billing.NewMoney(150)
		assert.Equal(t, int64(150), pos.ClampNonNegative().Centavos())
	})
}

func TestPercentOf(t *testing.T) {
	cases := []struct {
		name     string
		centavos int64
		percent  int
		want     int64
	}{
		{"exact division", 100_000, 30, 30_000},
		{"half centavo rounds up", 5, 30, 2},        // 1.5 -> 2
		{"below half rounds down", 4, 30, 1},        // 1.2 -> 1
		{"above half rounds up", 6, 30, 2},          // 1.8 -> 2
		{"zero amount", 0, 30, 0},
		{"hundred percent", 759_900, 100, 759_900},
		{"advance on odd total", 759_901, 30, 227_970}, // 227970.3 -> 227970
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := billing.PercentOf(billing.NewMoney(tc.centavos), tc.percent)
			assert.Equal(t, tc.want, got.Centavos())
		})
	}
}
