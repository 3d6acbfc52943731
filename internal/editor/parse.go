package editor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jask/skydial/internal/astro"
)

// Form field identifiers, in tab order.
const (
	FieldName      = "name"
	FieldDecDegree = "dec_degree"
	FieldDecMinute = "dec_minute"
	FieldHour      = "ha_hour"
	FieldMinute    = "ha_minute"
	FieldSecond    = "ha_second"
)

// FieldError reports a single form field that could not be accepted.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ParseName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", &FieldError{Field: FieldName, Message: "required"}
	}
	return name, nil
}

// ParseDeclination accepts a signed degree in [-90, 90] and minutes in [0, 60).
// Blank fields read as zero.
func ParseDeclination(deg, min string) (astro.Declination, error) {
	d, err := parseFloat(FieldDecDegree, deg)
	if err != nil {
		return astro.Declination{}, err
	}
	m, err := parseFloat(FieldDecMinute, min)
	if err != nil {
		return astro.Declination{}, err
	}
	if d < -90 || d > 90 {
		return astro.Declination{}, &FieldError{Field: FieldDecDegree, Message: "must be between -90 and 90"}
	}
	if m < 0 || m >= 60 {
		return astro.Declination{}, &FieldError{Field: FieldDecMinute, Message: "must be at least 0 and below 60"}
	}
	return astro.Declination{Degree: d, Minute: m}, nil
}

// ParseHourAngle accepts whole hours in [0, 24) and whole minutes and seconds in [0, 60).
// Blank fields read as zero.
func ParseHourAngle(h, m, s string) (astro.HourAngle, error) {
	hour, err := parseInt(FieldHour, h, 24)
	if err != nil {
		return astro.HourAngle{}, err
	}
	minute, err := parseInt(FieldMinute, m, 60)
	if err != nil {
		return astro.HourAngle{}, err
	}
	second, err := parseInt(FieldSecond, s, 60)
	if err != nil {
		return astro.HourAngle{}, err
	}
	return astro.HourAngle{Hour: hour, Minute: minute, Second: second}, nil
}

func parseFloat(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Message: fmt.Sprintf("%q is not a number", s)}
	}
	return v, nil
}

func parseInt(field, s string, limit int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FieldError{Field: field, Message: fmt.Sprintf("%q is not a whole number", s)}
	}
	if v < 0 || v >= limit {
		return 0, &FieldError{Field: field, Message: fmt.Sprintf("must be at least 0 and below %d", limit)}
	}
	return v, nil
}
