package testdata

import (
	"context"
	"time"

	"github.com/jask/skydial/internal/astro"
	"github.com/jask/skydial/internal/catalog"
)

type sample struct {
	name string
	dec  astro.Declination
	ha   astro.HourAngle
}

// Positions are illustrative, not an ephemeris.
var samples = []sample{
	{"Polaris", astro.Declination{Degree: 89, Minute: 15.85}, astro.HourAngle{Hour: 2, Minute: 31, Second: 49}},
	{"Vega", astro.Declination{Degree: 38, Minute: 47.02}, astro.HourAngle{Hour: 18, Minute: 36, Second: 56}},
	{"Sirius", astro.Declination{Degree: -16, Minute: 42.97}, astro.HourAngle{Hour: 6, Minute: 45, Second: 9}},
	{"Betelgeuse", astro.Declination{Degree: 7, Minute: 24.42}, astro.HourAngle{Hour: 5, Minute: 55, Second: 10}},
	{"Canopus", astro.Declination{Degree: -52, Minute: 41.73}, astro.HourAngle{Hour: 6, Minute: 23, Second: 57}},
}

// Seed adds a handful of well-known objects when the catalog is empty.
// It returns the number of entries added.
func Seed(ctx context.Context, c *catalog.Controller, now time.Time) (int, error) {
	if c.Snapshot().Len() > 0 {
		return 0, nil
	}
	added := 0
	for _, s := range samples {
		_, err := c.Add(ctx, catalog.Entry{Name: s.name, Declination: s.dec, HourAngle: s.ha, Timestamp: now})
		if err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
