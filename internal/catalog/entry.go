package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/skydial/internal/astro"
)

// Entry is a named tracked object. The hour angle was true at Timestamp.
type Entry struct {
	ID          string
	Name        string
	Declination astro.Declination
	HourAngle   astro.HourAngle
	Timestamp   time.Time
}

// Patch carries a partial update; nil fields are left alone.
type Patch struct {
	ID          string
	Name        *string
	Declination *astro.Declination
	HourAngle   *astro.HourAngle
	Timestamp   *time.Time
}

func (p Patch) apply(e Entry) Entry {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Declination != nil {
		e.Declination = *p.Declination
	}
	if p.HourAngle != nil {
		e.HourAngle = *p.HourAngle
	}
	if p.Timestamp != nil {
		e.Timestamp = *p.Timestamp
	}
	return e
}

// NewID returns a short random hex id, e.g. "3fa85f64".
var NewID = func() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:4])
}

var errMissingID = errors.New("missing id")

// Validate checks the ranges the coordinate engine relies on.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errMissingID
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("entry %s: missing timestamp", e.ID)
	}
	d := e.Declination
	if math.IsNaN(d.Degree) || math.IsInf(d.Degree, 0) || d.Degree < -90 || d.Degree > 90 {
		return fmt.Errorf("entry %s: declination degree %v out of range", e.ID, d.Degree)
	}
	if math.IsNaN(d.Minute) || d.Minute < 0 || d.Minute >= 60 {
		return fmt.Errorf("entry %s: declination minute %v out of range", e.ID, d.Minute)
	}
	h := e.HourAngle
	if h.Hour < 0 || h.Hour >= 24 || h.Minute < 0 || h.Minute >= 60 || h.Second < 0 || h.Second >= 60 {
		return fmt.Errorf("entry %s: hour angle %v out of range", e.ID, h)
	}
	return nil
}
