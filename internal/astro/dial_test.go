package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourAngleRotation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		ha   HourAngle
		want float64
	}{
		{HourAngle{Hour: 6}, 0},
		{HourAngle{Hour: 18}, 0},
		{HourAngle{Hour: 9}, 45},
		{HourAngle{Hour: 21}, 45},
		{HourAngle{}, 270},
		{HourAngle{Hour: 12}, 270},
		{HourAngle{Hour: 3}, 315},
		{HourAngle{Hour: 7, Minute: 30}, 22.5},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, HourAngleRotation(tc.ha), 1e-9, "ha %v", tc.ha)
	}
}

func TestDeclinationRotation(t *testing.T) {
	t.Parallel()

	t.Run("pole at 6h rests on the offset", func(t *testing.T) {
		got := DeclinationRotation(Declination{Degree: 90}, HourAngle{Hour: 6})
		assert.Equal(t, 0.0, got)
	})

	t.Run("needle flips across transit", func(t *testing.T) {
		dec := Declination{Degree: 45}
		assert.Equal(t, 45.0, DeclinationRotation(dec, HourAngle{Hour: 6}))
		assert.Equal(t, 315.0, DeclinationRotation(dec, HourAngle{Hour: 18}))
	})

	t.Run("exactly at transit collapses to the offset", func(t *testing.T) {
		m := Mount{DialOffset: 30, Direction: Clockwise}
		assert.Equal(t, 30.0, m.DeclinationRotation(Declination{Degree: -45, Minute: 15}, HourAngle{Hour: 12}))
		assert.Equal(t, 0.0, DeclinationRotation(Declination{Degree: 10}, HourAngle{Hour: 12}))
	})

	t.Run("equator ignores minutes on a zero degree", func(t *testing.T) {
		// sign(6-12) = -1, direction -1, 90 - 0 = 90
		assert.Equal(t, 90.0, DeclinationRotation(Declination{Degree: 0, Minute: 30}, HourAngle{Hour: 6}))
		assert.Equal(t, 270.0, DeclinationRotation(Declination{Degree: 0, Minute: 30}, HourAngle{Hour: 18}))
	})

	t.Run("southern declination", func(t *testing.T) {
		// sign(0-12) = -1, direction -1, 90 - (-10.5) = 100.5
		assert.Equal(t, 100.5, DeclinationRotation(Declination{Degree: -10, Minute: 30}, HourAngle{}))
	})

	t.Run("clockwise mount with offset", func(t *testing.T) {
		m := Mount{DialOffset: 90, Direction: Clockwise}
		assert.Equal(t, 45.0, m.DeclinationRotation(Declination{Degree: 45}, HourAngle{Hour: 6}))
		assert.Equal(t, 135.0, m.DeclinationRotation(Declination{Degree: 45}, HourAngle{Hour: 18}))
	})

	t.Run("offset wraps", func(t *testing.T) {
		m := Mount{DialOffset: 350, Direction: CounterClockwise}
		assert.Equal(t, 35.0, m.DeclinationRotation(Declination{Degree: 45}, HourAngle{Hour: 6}))
	})
}

func TestRotationsStayInRange(t *testing.T) {
	t.Parallel()

	mounts := []Mount{DefaultMount, {DialOffset: 90, Direction: Clockwise}, {DialOffset: -400, Direction: CounterClockwise}}
	for _, m := range mounts {
		for deg := -90; deg <= 90; deg += 5 {
			for _, minute := range []float64{0, 17.5, 59.9} {
				dec := Declination{Degree: float64(deg), Minute: minute}
				for h := 0; h < 24; h++ {
					for _, mm := range []int{0, 29, 59} {
						ha := HourAngle{Hour: h, Minute: mm, Second: 59}
						d := m.DeclinationRotation(dec, ha)
						require.True(t, d >= 0 && d < 360, "dec rotation %v for %v %v", d, dec, ha)
						r := m.HourAngleRotation(ha)
						require.True(t, r >= 0 && r < 360, "ha rotation %v for %v", r, ha)
					}
				}
			}
		}
	}
}

func TestRotationInputsAreReadOnly(t *testing.T) {
	t.Parallel()

	dec := Declination{Degree: -12, Minute: 34}
	ha := HourAngle{Hour: 13, Minute: 14, Second: 15}
	_ = DeclinationRotation(dec, ha)
	_ = HourAngleRotation(ha)
	assert.Equal(t, Declination{Degree: -12, Minute: 34}, dec)
	assert.Equal(t, HourAngle{Hour: 13, Minute: 14, Second: 15}, ha)
}
