// Package astro converts declination / hour-angle pairs into dial rotations.
//
// Allowed here:
// - value types for coordinates (Declination, HourAngle) and mount settings
// - angle normalization, hour-angle advancement, decimal conversions
// - the two dial rotation formulas
//
// Not allowed here:
// - clocks, storage, logging, or anything that can fail
//
// The model is a stylized mount-rotation model, not an ephemeris: there is no
// sidereal time, observer location, or epoch correction.
package astro
