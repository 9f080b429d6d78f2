package types

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names used in renderings and validation errors.
const (
	FieldName              = "name"
	FieldMaxSpeed          = "maxSpeed"
	FieldManufacturer      = "manufacturer"
	FieldMaxAltitude       = "maxAltitude"
	FieldPassengerCapacity = "passengerCapacity"
	FieldLicensePlate      = "licensePlate"
	FieldDoorCount         = "doorCount"
	FieldFuelType          = "fuelType"
	FieldDisplacement      = "displacement"
	FieldCrewSize          = "crewSize"
	FieldShipType          = "shipType"
)

// Numeric bounds, inclusive. The validate tags on Base, Airplane, Car and Ship
// must carry the same numbers.
const (
	MaxSpeedMin          = 0
	MaxSpeedMax          = 2000
	MaxAltitudeMin       = 0
	MaxAltitudeMax       = 20000
	PassengerCapacityMin = 1
	PassengerCapacityMax = 1000
	DoorCountMin         = 1
	DoorCountMax         = 10
	DisplacementMin      = 1
	DisplacementMax      = 1000000
	CrewSizeMin          = 1
	CrewSizeMax          = 5000
)

// Limit is a closed integer range.
type Limit struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range.
func (l Limit) Contains(v int) bool {
	return v >= l.Min && v <= l.Max
}

var limits = map[string]Limit{
	FieldMaxSpeed:          {MaxSpeedMin, MaxSpeedMax},
	FieldMaxAltitude:       {MaxAltitudeMin, MaxAltitudeMax},
	FieldPassengerCapacity: {PassengerCapacityMin, PassengerCapacityMax},
	FieldDoorCount:         {DoorCountMin, DoorCountMax},
	FieldDisplacement:      {DisplacementMin, DisplacementMax},
	FieldCrewSize:          {CrewSizeMin, CrewSizeMax},
}

// Limits returns the range of a numeric field. ok is false for string fields
// and unknown names.
func Limits(field string) (Limit, bool) {
	l, ok := limits[field]
	return l, ok
}

var validate = newValidator()

// newValidator reports fields by their json names so errors match renderings.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates one field group and converts validator output into
// ValidationErrors. Several failures are joined.
func check(group any) error {
	err := validate.Struct(group)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		l := limits[fe.Field()]
		errs = append(errs, &ValidationError{
			Field: fe.Field(),
			Value: fe.Value(),
			Min:   l.Min,
			Max:   l.Max,
			Rule:  fe.Tag(),
		})
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
