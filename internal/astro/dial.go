package astro

// transitHour is where the declination arm swings to the other side.
const transitHour = 12

// DeclinationRotation is the needle angle for the declination dial.
//
// The needle flips sides once the hour angle crosses 12h. Exactly at 12h the
// sign term is zero and the needle rests on DialOffset.
func (m Mount) DeclinationRotation(dec Declination, ha HourAngle) float64 {
	flip := sign(DecimalHour(ha) - transitHour)
	rotation := m.DialOffset + float64(m.Direction)*flip*(90-DecimalDeclination(dec))
	return Normalize(truncate2(rotation))
}

// HourAngleRotation is the needle angle for the hour-angle dial.
// 6h maps to 0; the second half of the day folds back by 180 degrees, so one
// double-ended pointer serves both halves.
func (m Mount) HourAngleRotation(ha HourAngle) float64 {
	return HourAngleRotation(ha)
}

// DeclinationRotation uses DefaultMount.
func DeclinationRotation(dec Declination, ha HourAngle) float64 {
	return DefaultMount.DeclinationRotation(dec, ha)
}

// HourAngleRotation is independent of the mount settings.
func HourAngleRotation(ha HourAngle) float64 {
	half := floorDiv(int64(ha.Hour), transitHour)
	return Normalize(HourAngleToDegrees(ha) - 90 - float64(half)*180)
}
