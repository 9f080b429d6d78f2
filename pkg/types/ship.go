package types

import (
	"fmt"
	"strings"
)

// Ship defaults.
const (
	DefaultDisplacement = 5000
	DefaultCrewSize     = 20
	DefaultShipType     = "Cargo"
)

// Ship is the payload of a ship transport. Displacement is in tonnes.
type Ship struct {
	Displacement int    `json:"displacement" validate:"min=1,max=1000000"`
	CrewSize     int    `json:"crewSize" validate:"min=1,max=5000"`
	ShipType     string `json:"shipType"`
}

// DefaultShip returns the ship payload defaults.
func DefaultShip() Ship {
	return Ship{
		Displacement: DefaultDisplacement,
		CrewSize:     DefaultCrewSize,
		ShipType:     DefaultShipType,
	}
}

func (Ship) Kind() Kind { return KindShip }

func (s Ship) render(sb *strings.Builder) {
	fmt.Fprintf(sb, " %s=%d %s=%d %s=%q",
		FieldDisplacement, s.Displacement,
		FieldCrewSize, s.CrewSize,
		FieldShipType, s.ShipType)
}

// NewShip builds a ship transport.
func NewShip(name string, maxSpeed int, manufacturer string, displacement, crewSize int, shipType string) (Transport, error) {
	return New(
		Base{Name: name, MaxSpeed: maxSpeed, Manufacturer: manufacturer},
		Ship{Displacement: displacement, CrewSize: crewSize, ShipType: shipType},
	)
}

// Ship returns the ship payload; ok is false for other kinds.
func (t Transport) Ship() (Ship, bool) {
	s, ok := t.variant.(Ship)
	return s, ok
}

func (t *Transport) SetDisplacement(tonnes int) error {
	s, ok := t.Ship()
	if !ok {
		return t.mismatch(KindShip, FieldDisplacement)
	}
	s.Displacement = tonnes
	return t.replace(s)
}

func (t *Transport) SetCrewSize(crew int) error {
	s, ok := t.Ship()
	if !ok {
		return t.mismatch(KindShip, FieldCrewSize)
	}
	s.CrewSize = crew
	return t.replace(s)
}

func (t *Transport) SetShipType(shipType string) error {
	s, ok := t.Ship()
	if !ok {
		return t.mismatch(KindShip, FieldShipType)
	}
	s.ShipType = shipType
	return t.replace(s)
}
