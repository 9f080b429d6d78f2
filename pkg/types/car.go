package types

import (
	"fmt"
	"strings"
)

// Car defaults.
const (
	DefaultLicensePlate = "AA0000AA"
	DefaultDoorCount    = 4
	DefaultFuelType     = "Petrol"
)

// Car is the payload of a car transport. LicensePlate and FuelType accept any
// string.
type Car struct {
	LicensePlate string `json:"licensePlate"`
	DoorCount    int    `json:"doorCount" validate:"min=1,max=10"`
	FuelType     string `json:"fuelType"`
}

// DefaultCar returns the car payload defaults.
func DefaultCar() Car {
	return Car{
		LicensePlate: DefaultLicensePlate,
		DoorCount:    DefaultDoorCount,
		FuelType:     DefaultFuelType,
	}
}

func (Car) Kind() Kind { return KindCar }

func (c Car) render(sb *strings.Builder) {
	fmt.Fprintf(sb, " %s=%q %s=%d %s=%q",
		FieldLicensePlate, c.LicensePlate,
		FieldDoorCount, c.DoorCount,
		FieldFuelType, c.FuelType)
}

// NewCar builds a car transport.
func NewCar(name string, maxSpeed int, manufacturer string, licensePlate string, doorCount int, fuelType string) (Transport, error) {
	return New(
		Base{Name: name, MaxSpeed: maxSpeed, Manufacturer: manufacturer},
		Car{LicensePlate: licensePlate, DoorCount: doorCount, FuelType: fuelType},
	)
}

// Car returns the car payload; ok is false for other kinds.
func (t Transport) Car() (Car, bool) {
	c, ok := t.variant.(Car)
	return c, ok
}

func (t *Transport) SetLicensePlate(plate string) error {
	c, ok := t.Car()
	if !ok {
		return t.mismatch(KindCar, FieldLicensePlate)
	}
	c.LicensePlate = plate
	return t.replace(c)
}

func (t *Transport) SetDoorCount(doors int) error {
	c, ok := t.Car()
	if !ok {
		return t.mismatch(KindCar, FieldDoorCount)
	}
	c.DoorCount = doors
	return t.replace(c)
}

func (t *Transport) SetFuelType(fuel string) error {
	c, ok := t.Car()
	if !ok {
		return t.mismatch(KindCar, FieldFuelType)
	}
	c.FuelType = fuel
	return t.replace(c)
}
