package types

import (
	"errors"
	"fmt"
	"strings"
)

// Default base field values.
const (
	DefaultName         = "Unknown"
	DefaultMaxSpeed     = 0
	DefaultManufacturer = "Unknown"
)

// Base holds the fields every transport carries.
type Base struct {
	Name         string `json:"name"`
	MaxSpeed     int    `json:"maxSpeed" validate:"min=0,max=2000"`
	Manufacturer string `json:"manufacturer"`
}

// DefaultBase returns the base fields used when none are given.
func DefaultBase() Base {
	return Base{
		Name:         DefaultName,
		MaxSpeed:     DefaultMaxSpeed,
		Manufacturer: DefaultManufacturer,
	}
}

// Variant is the kind-specific payload of a Transport. It is implemented only
// by Airplane, Car and Ship.
type Variant interface {
	Kind() Kind
	render(sb *strings.Builder)
}

// Transport is a single inventory entity. The zero value is a generic
// transport with empty base fields. Transport is a value: copies are
// independent of each other.
type Transport struct {
	base    Base
	variant Variant
}

// Fields carries the raw values for building any kind of transport. Build
// reads Base and the payload matching the requested kind only.
type Fields struct {
	Base     Base
	Airplane Airplane
	Car      Car
	Ship     Ship
}

// DefaultFields returns Fields populated with every default value.
func DefaultFields() Fields {
	return Fields{
		Base:     DefaultBase(),
		Airplane: DefaultAirplane(),
		Car:      DefaultCar(),
		Ship:     DefaultShip(),
	}
}

// New validates base and v and returns the resulting Transport. A nil v
// yields the generic kind. On failure the zero Transport is returned.
func New(base Base, v Variant) (Transport, error) {
	switch v.(type) {
	case nil, Airplane, Car, Ship:
	default:
		return Transport{}, fmt.Errorf("%w: %T", ErrUnknownKind, v)
	}

	errs := []error{check(base)}
	if v != nil {
		errs = append(errs, check(v))
	}
	if err := errors.Join(errs...); err != nil {
		return Transport{}, err
	}

	return Transport{base: base, variant: v}, nil
}

// Build constructs a Transport of the given kind from fields.
func Build(kind Kind, f Fields) (Transport, error) {
	switch kind {
	case KindTransport:
		return New(f.Base, nil)
	case KindAirplane:
		return New(f.Base, f.Airplane)
	case KindCar:
		return New(f.Base, f.Car)
	case KindShip:
		return New(f.Base, f.Ship)
	default:
		return Transport{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Default returns a Transport of the given kind with every default value.
func Default(kind Kind) (Transport, error) {
	return Build(kind, DefaultFields())
}

// NewGeneric builds a generic transport.
func NewGeneric(name string, maxSpeed int, manufacturer string) (Transport, error) {
	return New(Base{Name: name, MaxSpeed: maxSpeed, Manufacturer: manufacturer}, nil)
}

// Kind returns the variant tag.
func (t Transport) Kind() Kind {
	if t.variant == nil {
		return KindTransport
	}
	return t.variant.Kind()
}

// Base returns a copy of the shared fields.
func (t Transport) Base() Base { return t.base }

func (t Transport) Name() string { return t.base.Name }

func (t Transport) MaxSpeed() int { return t.base.MaxSpeed }

func (t Transport) Manufacturer() string { return t.base.Manufacturer }

// SetName replaces the name. Names are not validated.
func (t *Transport) SetName(name string) {
	t.base.Name = name
}

// SetMaxSpeed sets the maximum speed. Returns a *ValidationError when speed
// is outside [MaxSpeedMin, MaxSpeedMax]; the entity is unchanged on error.
func (t *Transport) SetMaxSpeed(speed int) error {
	next := t.base
	next.MaxSpeed = speed
	if err := check(next); err != nil {
		return err
	}
	t.base = next
	return nil
}

// SetManufacturer replaces the manufacturer. Manufacturers are not validated.
func (t *Transport) SetManufacturer(manufacturer string) {
	t.base.Manufacturer = manufacturer
}

// Equal reports whether t and other are the same kind with identical fields.
// Kinds never compare equal across variants, even with identical base fields.
func (t Transport) Equal(other Transport) bool {
	return t.base == other.base && t.variant == other.variant
}

// String renders every field of the entity, e.g.
//
//	Airplane{name="X" maxSpeed=100 manufacturer="M" maxAltitude=10000 passengerCapacity=150}
func (t Transport) String() string {
	var sb strings.Builder
	sb.WriteString(t.Kind().Title())
	fmt.Fprintf(&sb, "{%s=%q %s=%d %s=%q",
		FieldName, t.base.Name,
		FieldMaxSpeed, t.base.MaxSpeed,
		FieldManufacturer, t.base.Manufacturer)
	if t.variant != nil {
		t.variant.render(&sb)
	}
	sb.WriteByte('}')
	return sb.String()
}

// replace validates v and installs it as the payload.
func (t *Transport) replace(v Variant) error {
	if err := check(v); err != nil {
		return err
	}
	t.variant = v
	return nil
}

func (t Transport) mismatch(want Kind, field string) error {
	return fmt.Errorf("%w: %s belongs to %s, entity is %s", ErrKindMismatch, field, want, t.Kind())
}
