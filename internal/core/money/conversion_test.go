package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twopi/moneycore/internal/apperrors"
	"github.com/twopi/moneycore/internal/core/money"
)

// The UI layers this engine replaces mixed Math.round and Math.floor for the
// same scaling operation. The single policy here is round-half-away-from-zero,
// pinned by the 2.005 case below.
func TestToMinorUnits_RoundingPolicy(t *testing.T) {
	tests := []struct {
		name          string
		decimalAmount float64
		decimalDigits int32
		want          int64
	}{
		{"half rounds up, not floor", 2.005, 2, 201},
		{"half rounds away from zero when negative", -2.005, 2, -201},
		{"below half rounds down", 2.004, 2, 200},
		{"above half rounds up", 2.006, 2, 201},
		{"zero digits rounds whole units", 0.5, 0, 1},
		{"zero digits negative half", -0.5, 0, -1},
		{"three digit currency", 12.3456, 3, 12346},
		{"exact value unchanged", 1234.56, 2, 123456},
		{"zero amount", 0, 2, 0},
		{"negative amount", -999.99, 2, -99999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ToMinorUnits(tt.decimalAmount, tt.decimalDigits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMinorUnits_NonFiniteInput(t *testing.T) {
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := money.ToMinorUnits(amount, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	}
}

func TestToMinorUnits_NegativeDigitsRejected(t *testing.T) {
	_, err := money.ToMinorUnits(1.23, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToDecimalAmount(t *testing.T) {
	tests := []struct {
		name          string
		minorUnits    int64
		decimalDigits int32
		want          string
	}{
		{"two digits", 123456, 2, "1234.56"},
		{"zero digits", 1500, 0, "1500"},
		{"three digits", -5000, 3, "-5"},
		{"zero", 0, 2, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.ToDecimalAmount(tt.minorUnits, tt.decimalDigits)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

// Round-trip contract: converting minor units to decimal and back must be the
// identity for realistic currency magnitudes.
func TestMinorUnitRoundTrip(t *testing.T) {
	samples := []int64{
		0, 1, -1, 2, 99, 100, 101, -101, 999, 2005, -2005,
		123456, 9999999, -9999999, 123456789, 1000000000, -1000000000,
	}

	for _, decimalDigits := range []int32{0, 2, 3} {
		for _, minorUnits := range samples {
			decimalAmount := money.ToDecimalAmount(minorUnits, decimalDigits).InexactFloat64()
			got, err := money.ToMinorUnits(decimalAmount, decimalDigits)
			require.NoError(t, err)
			assert.Equalf(t, minorUnits, got, "round trip of %d with %d digits", minorUnits, decimalDigits)
		}
	}
}
