package tracker

import (
	"time"

	"github.com/jask/skydial/internal/astro"
	"github.com/jask/skydial/internal/catalog"
)

// Reading is the dial state of one entry at one instant.
type Reading struct {
	EntryID             string            `json:"entryId"`
	Name                string            `json:"name"`
	Declination         astro.Declination `json:"declination"`
	HourAngle           astro.HourAngle   `json:"hourAngle"`
	ElapsedSeconds      int64             `json:"elapsedSeconds"`
	DeclinationRotation float64           `json:"declinationRotation"`
	HourAngleRotation   float64           `json:"hourAngleRotation"`
	At                  time.Time         `json:"at"`
}

// Elapsed returns the whole seconds from since to now, rounded toward negative infinity.
func Elapsed(since, now time.Time) int64 {
	d := now.Sub(since)
	secs := int64(d / time.Second)
	if d%time.Second < 0 {
		secs--
	}
	return secs
}

// Compute advances the entry's recorded hour angle to now and derives both dial rotations
// from the advanced value.
func Compute(e catalog.Entry, now time.Time, mount astro.Mount) Reading {
	elapsed := Elapsed(e.Timestamp, now)
	ha := astro.Advance(e.HourAngle, elapsed)
	return Reading{
		EntryID:             e.ID,
		Name:                e.Name,
		Declination:         e.Declination,
		HourAngle:           ha,
		ElapsedSeconds:      elapsed,
		DeclinationRotation: mount.DeclinationRotation(e.Declination, ha),
		HourAngleRotation:   mount.HourAngleRotation(ha),
		At:                  now,
	}
}

func ComputeAll(entries []catalog.Entry, now time.Time, mount astro.Mount) []Reading {
	out := make([]Reading, len(entries))
	for i := range entries {
		out[i] = Compute(entries[i], now, mount)
	}
	return out
}
