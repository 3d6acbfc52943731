package astro

import "fmt"

// Declination is an angle north or south of the reference plane.
// Degree carries the sign; Minute is an unsigned arc-minute offset applied in
// the direction of Degree. A zero Degree has no sign, so its minutes add nothing.
type Declination struct {
	Degree float64 `json:"degree" yaml:"degree" toml:"degree"`
	Minute float64 `json:"minute" yaml:"minute" toml:"minute"`
}

// HourAngle is a cyclic 24-hour position.
type HourAngle struct {
	Hour   int `json:"hour" yaml:"hour" toml:"hour"`
	Minute int `json:"minute" yaml:"minute" toml:"minute"`
	Second int `json:"second" yaml:"second" toml:"second"`
}

func (d Declination) String() string {
	return fmt.Sprintf("%g° %g'", d.Degree, d.Minute)
}

func (h HourAngle) String() string {
	return fmt.Sprintf("%dh %dm %ds", h.Hour, h.Minute, h.Second)
}

// Direction is the sense in which dial gradations increase.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "unknown"
	}
}

// Mount holds the display constants of a particular mount: where the
// declination dial points at rest and which way its gradations run.
type Mount struct {
	DialOffset float64
	Direction  Direction
}

// DefaultMount points north and counts counter-clockwise.
var DefaultMount = Mount{DialOffset: 0, Direction: CounterClockwise}
