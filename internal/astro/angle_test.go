package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"full circle", 360, 0},
		{"negative full circle", -360, 0},
		{"two circles", 720, 0},
		{"negative two circles", -720, 0},
		{"in range", 123.5, 123.5},
		{"just over", 361, 1},
		{"just under zero", -1, 359},
		{"negative quarter", -90, 270},
		{"negative over a circle", -450, 270},
		{"large positive", 3600 + 45, 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Normalize(tc.in), 1e-9)
		})
	}
}

func TestNormalizeStaysInRange(t *testing.T) {
	t.Parallel()

	for d := -1440.0; d <= 1440; d += 0.25 {
		got := Normalize(d)
		require.GreaterOrEqual(t, got, 0.0, "Normalize(%v)", d)
		require.Less(t, got, 360.0, "Normalize(%v)", d)
	}

	// values that would round to 360 on the negative branch
	for _, d := range []float64{-1e-13, -360 - 1e-13, -math.SmallestNonzeroFloat64} {
		got := Normalize(d)
		require.GreaterOrEqual(t, got, 0.0)
		require.Less(t, got, 360.0)
	}
}

func TestNormalizeIsPeriodic(t *testing.T) {
	t.Parallel()

	for d := -725; d <= 725; d += 5 {
		base := Normalize(float64(d))
		for k := -3; k <= 3; k++ {
			require.Equal(t, base, Normalize(float64(d+360*k)), "d=%d k=%d", d, k)
		}
	}
}

func TestDecimalHour(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.5, DecimalHour(HourAngle{Hour: 1, Minute: 30}))
	assert.Equal(t, 6.0, DecimalHour(HourAngle{Hour: 6}))
	assert.Equal(t, 12.0, DecimalHour(HourAngle{Hour: 12}))
	// 0h 0m 59s = 0.01638.. truncates, not rounds
	assert.Equal(t, 0.01, DecimalHour(HourAngle{Second: 59}))
	// 11h 59m 59s stays below 12 after truncation
	assert.Less(t, DecimalHour(HourAngle{Hour: 11, Minute: 59, Second: 59}), 12.0)
}

func TestDecimalDeclination(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -10.5, DecimalDeclination(Declination{Degree: -10, Minute: 30}))
	assert.Equal(t, 10.5, DecimalDeclination(Declination{Degree: 10, Minute: 30}))
	assert.Equal(t, 90.0, DecimalDeclination(Declination{Degree: 90}))
	assert.Equal(t, -90.0, DecimalDeclination(Declination{Degree: -90}))

	t.Run("zero degree stays zero", func(t *testing.T) {
		assert.Equal(t, 0.0, DecimalDeclination(Declination{}))
		assert.Equal(t, 0.0, DecimalDeclination(Declination{Degree: 0, Minute: 30}))
		assert.False(t, math.Signbit(DecimalDeclination(Declination{Degree: 0, Minute: 59.9})))
	})

	t.Run("truncates toward negative infinity", func(t *testing.T) {
		// 20' = 0.3333..
		assert.Equal(t, 45.33, DecimalDeclination(Declination{Degree: 45, Minute: 20}))
		assert.Equal(t, -45.34, DecimalDeclination(Declination{Degree: -45, Minute: 20}))
	})
}

func TestHourAngleToDegrees(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, HourAngleToDegrees(HourAngle{}))
	assert.Equal(t, 90.0, HourAngleToDegrees(HourAngle{Hour: 6}))
	assert.Equal(t, 22.5, HourAngleToDegrees(HourAngle{Hour: 1, Minute: 30}))
	assert.InDelta(t, 359.85, HourAngleToDegrees(HourAngle{Hour: 23, Minute: 59, Second: 59}), 1e-9)
}
