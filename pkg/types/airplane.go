package types

import (
	"fmt"
	"strings"
)

// Airplane defaults.
const (
	DefaultMaxAltitude       = 10000
	DefaultPassengerCapacity = 150
)

// Airplane is the payload of an airplane transport.
type Airplane struct {
	MaxAltitude       int `json:"maxAltitude" validate:"min=0,max=20000"`
	PassengerCapacity int `json:"passengerCapacity" validate:"min=1,max=1000"`
}

// DefaultAirplane returns the airplane payload defaults.
func DefaultAirplane() Airplane {
	return Airplane{
		MaxAltitude:       DefaultMaxAltitude,
		PassengerCapacity: DefaultPassengerCapacity,
	}
}

func (Airplane) Kind() Kind { return KindAirplane }

func (a Airplane) render(sb *strings.Builder) {
	fmt.Fprintf(sb, " %s=%d %s=%d",
		FieldMaxAltitude, a.MaxAltitude,
		FieldPassengerCapacity, a.PassengerCapacity)
}

// NewAirplane builds an airplane transport.
func NewAirplane(name string, maxSpeed int, manufacturer string, maxAltitude, passengerCapacity int) (Transport, error) {
	return New(
		Base{Name: name, MaxSpeed: maxSpeed, Manufacturer: manufacturer},
		Airplane{MaxAltitude: maxAltitude, PassengerCapacity: passengerCapacity},
	)
}

// Airplane returns the airplane payload; ok is false for other kinds.
func (t Transport) Airplane() (Airplane, bool) {
	a, ok := t.variant.(Airplane)
	return a, ok
}

// SetMaxAltitude sets the maximum altitude of an airplane.
func (t *Transport) SetMaxAltitude(altitude int) error {
	a, ok := t.Airplane()
	if !ok {
		return t.mismatch(KindAirplane, FieldMaxAltitude)
	}
	a.MaxAltitude = altitude
	return t.replace(a)
}

// SetPassengerCapacity sets the passenger capacity of an airplane.
func (t *Transport) SetPassengerCapacity(capacity int) error {
	a, ok := t.Airplane()
	if !ok {
		return t.mismatch(KindAirplane, FieldPassengerCapacity)
	}
	a.PassengerCapacity = capacity
	return t.replace(a)
}
