package astro

// Advance adds elapsedSeconds to an hour angle, carrying seconds into minutes
// and minutes into hours, and wraps every field into its range.
//
// Remainders are floored, so negative elapsed values wrap backwards instead of
// producing negative fields.
func Advance(ha HourAngle, elapsedSeconds int64) HourAngle {
	totalSeconds := int64(ha.Second) + elapsedSeconds
	totalMinutes := int64(ha.Minute) + floorDiv(totalSeconds, 60)
	totalHours := int64(ha.Hour) + floorDiv(totalMinutes, 60)

	return HourAngle{
		Hour:   int(floorMod(totalHours, 24)),
		Minute: int(floorMod(totalMinutes, 60)),
		Second: int(floorMod(totalSeconds, 60)),
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
