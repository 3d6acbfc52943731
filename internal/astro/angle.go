package astro

import "math"

const (
	fullCircle     = 360.0
	degreesPerHour = 15.0
)

// Normalize maps any angle onto [0, 360).
//
// Negative input is measured back from 360 so the result never needs a second
// sign check downstream; exact multiples of 360 land on 0, never 360.
func Normalize(degree float64) float64 {
	if degree >= 0 {
		return math.Mod(degree, fullCircle)
	}
	rem := math.Mod(math.Abs(degree), fullCircle)
	if rem == 0 {
		return 0
	}
	out := fullCircle - rem
	// 360 - tiny rounds back up to 360 in float64.
	if out >= fullCircle {
		return 0
	}
	return out
}

// truncate2 drops everything past the second decimal place (floor, not round).
func truncate2(x float64) float64 {
	return math.Floor(x*100) / 100
}

// sign returns -1, 0 or 1.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// DecimalHour is hour + minute/60 + second/3600, truncated to two decimals.
func DecimalHour(ha HourAngle) float64 {
	return truncate2(float64(ha.Hour) + float64(ha.Minute)/60 + float64(ha.Second)/3600)
}

// DecimalDeclination folds the arc-minutes into the signed degree value,
// truncated to two decimals. A zero degree has sign 0, so the result is 0
// whatever the minutes are.
func DecimalDeclination(dec Declination) float64 {
	return truncate2(sign(dec.Degree) * (math.Abs(dec.Degree) + dec.Minute/60))
}

// HourAngleToDegrees converts the hour angle at 15 degrees per hour.
// The result is not normalized.
func HourAngleToDegrees(ha HourAngle) float64 {
	return DecimalHour(ha) * degreesPerHour
}
