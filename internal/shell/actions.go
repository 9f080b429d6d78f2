package shell

import (
	"fmt"

	"github.com/mesh-intelligence/fleet/internal/collection"
	"github.com/mesh-intelligence/fleet/pkg/types"
)

// form reads a sequence of fields and keeps the first read error; later reads
// are skipped once one fails.
type form struct {
	s   *Shell
	err error
}

func (f *form) text(label string, dst *string) {
	if f.err != nil {
		return
	}
	*dst, f.err = f.s.readLine(label + ": ")
}

// number reads an integer field. A field with a range shows it in the prompt
// and is asked again until the value lies within it.
func (f *form) number(field, label string, dst *int) {
	if f.err != nil {
		return
	}
	l, bounded := types.Limits(field)
	if bounded {
		label = fmt.Sprintf("%s [%d-%d]", label, l.Min, l.Max)
	}
	for {
		n, err := f.s.readInt(label + ": ")
		if err != nil {
			f.err = err
			return
		}
		if !bounded || l.Contains(n) {
			*dst = n
			return
		}
		f.s.fail(outOfRange(field, n, l))
	}
}

func outOfRange(field string, n int, l types.Limit) *types.ValidationError {
	rule := "max"
	if n < l.Min {
		rule = "min"
	}
	return &types.ValidationError{Field: field, Value: n, Min: l.Min, Max: l.Max, Rule: rule}
}

func (s *Shell) add() error {
	kind, err := s.readKind()
	if err != nil {
		return err
	}

	fields := types.DefaultFields()
	f := &form{s: s}
	f.text("Name", &fields.Base.Name)
	f.number(types.FieldMaxSpeed, "Max speed (km/h)", &fields.Base.MaxSpeed)
	f.text("Manufacturer", &fields.Base.Manufacturer)

	switch kind {
	case types.KindAirplane:
		f.number(types.FieldMaxAltitude, "Max altitude (m)", &fields.Airplane.MaxAltitude)
		f.number(types.FieldPassengerCapacity, "Passenger capacity", &fields.Airplane.PassengerCapacity)
	case types.KindCar:
		f.text("License plate", &fields.Car.LicensePlate)
		f.number(types.FieldDoorCount, "Door count", &fields.Car.DoorCount)
		f.text("Fuel type", &fields.Car.FuelType)
	case types.KindShip:
		f.number(types.FieldDisplacement, "Displacement (t)", &fields.Ship.Displacement)
		f.number(types.FieldCrewSize, "Crew size", &fields.Ship.CrewSize)
		f.text("Ship type", &fields.Ship.ShipType)
	}
	if f.err != nil {
		return f.err
	}

	t, err := s.store.Add(kind, fields)
	if err != nil {
		return err
	}
	s.succeed("Added: %s", t)
	return nil
}

// readKind prompts until a kind number is chosen.
func (s *Shell) readKind() (types.Kind, error) {
	fmt.Fprintln(s.out, "Choose a transport type:")
	for i, k := range types.Kinds {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, k.Title())
	}
	for {
		n, err := s.readInt("Your choice: ")
		if err != nil {
			return "", err
		}
		kind, err := types.ParseKind(fmt.Sprint(n))
		if err == nil {
			return kind, nil
		}
		s.fail(fmt.Errorf("enter a number from 1 to %d", len(types.Kinds)))
	}
}

func (s *Shell) remove() error {
	n := s.store.Len()
	if n == 0 {
		s.warn(msgEmpty)
		return nil
	}
	s.list()

	index, err := s.readInt(fmt.Sprintf("Index to remove [0-%d]: ", n-1))
	if err != nil {
		return err
	}
	removed, err := s.store.RemoveAt(index)
	if err != nil {
		return err
	}
	s.succeed("Removed: %s", removed)
	return nil
}

func (s *Shell) list() {
	entries := s.store.List()
	if len(entries) == 0 {
		s.warn(msgEmpty)
		return
	}
	s.colors.header.Fprintln(s.out, "Transports:")
	for _, e := range entries {
		fmt.Fprintf(s.out, "%d: %s\n", e.Index, e.Transport)
	}
}

func (s *Shell) compare() error {
	n := s.store.Len()
	if n < 2 {
		return &types.IndexError{Op: collection.OpCompare, Len: n, Err: types.ErrInsufficientElements}
	}
	s.list()

	f := &form{s: s}
	var a, b int
	prompt := fmt.Sprintf("[0-%d]", n-1)
	f.number("", "Index of the first element "+prompt, &a)
	f.number("", "Index of the second element "+prompt, &b)
	if f.err != nil {
		return f.err
	}

	c, err := s.store.Compare(a, b)
	if err != nil {
		return err
	}
	if c.Equal {
		s.succeed("Elements are equal")
	} else {
		s.warn("Elements are not equal")
	}
	fmt.Fprintf(s.out, "First:  %s\n", c.First)
	fmt.Fprintf(s.out, "Second: %s\n", c.Second)
	return nil
}
