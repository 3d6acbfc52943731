package editor

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jask/skydial/internal/astro"
	"github.com/jask/skydial/internal/catalog"
	"github.com/jask/skydial/internal/tracker"
)

// Draft is the in-progress form state for one entry.
type Draft struct {
	Name        string
	Declination astro.Declination
	HourAngle   astro.HourAngle
	Timestamp   time.Time
}

// NewDraft returns the defaults offered for a brand new object.
func NewDraft(now time.Time) Draft {
	return Draft{
		Name:        "New Object",
		Declination: astro.Declination{Degree: 90},
		HourAngle:   astro.HourAngle{Hour: 6},
		Timestamp:   now,
	}
}

func DraftFrom(e catalog.Entry) Draft {
	return Draft{Name: e.Name, Declination: e.Declination, HourAngle: e.HourAngle, Timestamp: e.Timestamp}
}

// Editor turns drafts into catalog changes, stamping hour-angle edits with the current time.
type Editor struct {
	clock clockwork.Clock
}

func New(clock clockwork.Clock) *Editor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Editor{clock: clock}
}

// SetHourAngle records a new hour angle on the draft as observed now.
func (ed *Editor) SetHourAngle(d Draft, ha astro.HourAngle) Draft {
	if ha == d.HourAngle {
		return d
	}
	d.HourAngle = ha
	d.Timestamp = ed.clock.Now()
	return d
}

// Changes returns one patch per edited field. Name and declination patches
// touch only their own field; an hour-angle patch also carries a fresh timestamp.
func (ed *Editor) Changes(orig catalog.Entry, d Draft) []catalog.Patch {
	var patches []catalog.Patch
	if d.Name != orig.Name {
		name := d.Name
		patches = append(patches, catalog.Patch{ID: orig.ID, Name: &name})
	}
	if d.Declination != orig.Declination {
		dec := d.Declination
		patches = append(patches, catalog.Patch{ID: orig.ID, Declination: &dec})
	}
	if d.HourAngle != orig.HourAngle {
		ha := d.HourAngle
		now := ed.clock.Now()
		patches = append(patches, catalog.Patch{ID: orig.ID, HourAngle: &ha, Timestamp: &now})
	}
	return patches
}

// Create builds an entry without an ID, ready for catalog Add.
func (ed *Editor) Create(d Draft) catalog.Entry {
	ts := d.Timestamp
	if ts.IsZero() {
		ts = ed.clock.Now()
	}
	return catalog.Entry{Name: d.Name, Declination: d.Declination, HourAngle: d.HourAngle, Timestamp: ts}
}

// Preview computes the dial reading the draft would produce right now.
func (ed *Editor) Preview(d Draft, mount astro.Mount) tracker.Reading {
	return tracker.Compute(ed.Create(d), ed.clock.Now(), mount)
}
