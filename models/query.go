package models

import "fmt"

// Scale selects the temperature unit
type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
)

// Suffix returns the degree symbol and letter appended to rendered temperatures.
func (s Scale) Suffix() string {
	if s == Fahrenheit {
		return "°F"
	}
	return "°C"
}

func (s Scale) String() string {
	if s == Fahrenheit {
		return "F"
	}
	return "C"
}

// Query is a normalized weather request. Days is always within [MinDays, MaxDays].
type Query struct {
	City  string
	Days  int
	Scale Scale
}

const (
	MinDays = 1
	MaxDays = 5
)

// UseFahrenheit reports whether temperatures should be shown in °F
func (q Query) UseFahrenheit() bool {
	return q.Scale == Fahrenheit
}

func (q Query) String() string {
	return fmt.Sprintf("%s (%d day(s), °%s)", q.City, q.Days, q.Scale)
}
