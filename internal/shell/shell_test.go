package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/mesh-intelligence/fleet/internal/collection"
	"github.com/mesh-intelligence/fleet/pkg/types"
)

// run feeds lines to a fresh shell over store and returns everything printed.
func run(t *testing.T, store collection.Store, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	sh := New(store, in, &out, WithColor(false), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, sh.Run())
	return out.String()
}

func teslaLines(fuel string) []string {
	return []string{"1", "3", "Tesla", "250", "Tesla", "AB1234CD", "4", fuel}
}

func TestExit(t *testing.T) {
	out := run(t, collection.New(), "5")
	assert.Contains(t, out, "=== Choose an action ===")
	assert.Contains(t, out, "Shutting down...")
}

func TestEndOfInputExits(t *testing.T) {
	var out bytes.Buffer
	sh := New(collection.New(), strings.NewReader(""), &out, WithColor(false))
	require.NoError(t, sh.Run())
	assert.Contains(t, out.String(), "Shutting down...")
}

func TestEndOfInputInsideFlowExits(t *testing.T) {
	store := collection.New()
	var out bytes.Buffer
	sh := New(store, strings.NewReader("1\n2\nJet\n"), &out, WithColor(false))
	require.NoError(t, sh.Run())
	assert.Zero(t, store.Len())
}

func TestInvalidMenuInput(t *testing.T) {
	out := run(t, collection.New(), "abc", "9", "5")
	assert.Contains(t, out, "Error: enter a whole number from 1 to 5")
	assert.Contains(t, out, "Error: unknown choice 9")
	assert.Equal(t, 3, strings.Count(out, "=== Choose an action ==="), "menu is shown again after each error")
}

func TestAddEachKind(t *testing.T) {
	store := collection.New()
	lines := []string{
		"1", "1", "Cart", "10", "Amish",
		"1", "2", "Boeing 737", "850", "Boeing", "12000", "180",
		"1", "3", "Model S", "250", "Tesla", "AB1234CD", "4", "Electric",
		"1", "4", "Titanic", "45", "Harland", "52310", "885", "Liner",
		"5",
	}
	out := run(t, store, lines...)

	list := store.List()
	require.Len(t, list, 4)
	for i, k := range types.Kinds {
		assert.Equal(t, k, list[i].Transport.Kind())
	}
	ship, ok := list[3].Transport.Ship()
	require.True(t, ok)
	assert.Equal(t, types.Ship{Displacement: 52310, CrewSize: 885, ShipType: "Liner"}, ship)
	assert.Equal(t, 4, strings.Count(out, "Added: "))
	assert.Contains(t, out, "Max altitude (m) [0-20000]: ")
}

func TestAddRetriesNonNumericField(t *testing.T) {
	store := collection.New()
	out := run(t, store, "1", "x", "7", "1", "Bus", "fast", "90", "Volvo", "5")

	assert.Contains(t, out, "Error: enter a number from 1 to 4")
	assert.Contains(t, out, "Error: enter a whole number")
	require.Equal(t, 1, store.Len())
	assert.Equal(t, 90, store.List()[0].Transport.MaxSpeed())
}

func TestAddOutOfRangeFieldIsAskedAgain(t *testing.T) {
	store := collection.New()
	out := run(t, store,
		"1", "2", "Jet", "-5", "900", "Airbus", "25000", "20000", "0", "150",
		"5")

	assert.Contains(t, out, "Error: maxSpeed must be at least 0, got -5")
	assert.Contains(t, out, "Error: maxAltitude must be at most 20000, got 25000")
	assert.Contains(t, out, "Error: passengerCapacity must be at least 1, got 0")
	assert.Equal(t, 2, strings.Count(out, "Max altitude (m) [0-20000]: "))
	assert.Equal(t, 2, strings.Count(out, "=== Choose an action ==="), "the menu is not shown mid-flow")

	require.Equal(t, 1, store.Len())
	got := store.List()[0].Transport
	assert.Equal(t, 900, got.MaxSpeed())
	a, _ := got.Airplane()
	assert.Equal(t, types.Airplane{MaxAltitude: 20000, PassengerCapacity: 150}, a)
}

func TestLongLineIsDiscarded(t *testing.T) {
	long := strings.Repeat("x", 70*1024)

	t.Run("at the menu", func(t *testing.T) {
		out := run(t, collection.New(), long, "5")
		assert.Contains(t, out, "Error: input line longer than 4096 bytes")
		assert.Contains(t, out, "Shutting down...")
	})

	t.Run("inside a flow", func(t *testing.T) {
		store := collection.New()
		out := run(t, store, "1", "1", long, "Cart", "10", "Amish", "5")
		assert.Contains(t, out, "Error: input line longer than 4096 bytes")
		require.Equal(t, 1, store.Len())
		assert.Equal(t, "Cart", store.List()[0].Transport.Name())
	})

	t.Run("without trailing newline", func(t *testing.T) {
		var out bytes.Buffer
		sh := New(collection.New(), strings.NewReader(long), &out, WithColor(false))
		require.NoError(t, sh.Run())
		assert.Contains(t, out.String(), "Shutting down...")
	})
}

func TestRemove(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		out := run(t, collection.New(), "2", "5")
		assert.Contains(t, out, "Collection is empty.")
		assert.NotContains(t, out, "Index to remove")
	})

	t.Run("out of range then valid", func(t *testing.T) {
		store := collection.New()
		lines := append(teslaLines("Electric"), "2", "3", "2", "0", "5")
		out := run(t, store, lines...)

		assert.Contains(t, out, "Index to remove [0-0]: ")
		assert.Contains(t, out, "Error: removeAt: index out of range")
		assert.Contains(t, out, `Removed: Car{name="Tesla"`)
		assert.Zero(t, store.Len())
	})
}

func TestList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := run(t, collection.New(), "3", "5")
		assert.Contains(t, out, "Collection is empty.")
	})

	t.Run("entries", func(t *testing.T) {
		lines := append(teslaLines("Electric"), "3", "5")
		out := run(t, collection.New(), lines...)
		assert.Contains(t, out, `0: Car{name="Tesla" maxSpeed=250 manufacturer="Tesla" licensePlate="AB1234CD" doorCount=4 fuelType="Electric"}`)
	})
}

func TestCompare(t *testing.T) {
	t.Run("insufficient elements", func(t *testing.T) {
		lines := append(teslaLines("Electric"), "4", "5")
		out := run(t, collection.New(), lines...)
		assert.Contains(t, out, "Error: compare: insufficient elements: need at least 2, have 1")
	})

	t.Run("equal cars", func(t *testing.T) {
		lines := append(teslaLines("Electric"), teslaLines("Electric")...)
		lines = append(lines, "4", "0", "1", "5")
		out := run(t, collection.New(), lines...)
		assert.Contains(t, out, "Elements are equal")
	})

	t.Run("different fuel", func(t *testing.T) {
		lines := append(teslaLines("Electric"), teslaLines("Petrol")...)
		lines = append(lines, "4", "0", "1", "5")
		out := run(t, collection.New(), lines...)
		assert.Contains(t, out, "Elements are not equal")
		assert.Contains(t, out, `Second: Car{name="Tesla" maxSpeed=250 manufacturer="Tesla" licensePlate="AB1234CD" doorCount=4 fuelType="Petrol"}`)
	})

	t.Run("bad index", func(t *testing.T) {
		lines := append(teslaLines("Electric"), teslaLines("Electric")...)
		lines = append(lines, "4", "0", "2", "5")
		out := run(t, collection.New(), lines...)
		assert.Contains(t, out, "Error: compare: index out of range: index 2 not in [0, 1]")
	})
}

// failingReader returns an error on the first read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadErrorStopsRun(t *testing.T) {
	var out bytes.Buffer
	err := New(collection.New(), failingReader{}, &out, WithColor(false)).Run()
	assert.ErrorContains(t, err, "disk on fire")
}

func TestColorOutput(t *testing.T) {
	var plain, colored bytes.Buffer
	p := newPalette(false)
	p.failure.Fprint(&plain, "x")
	assert.Equal(t, "x", plain.String())

	c := newPalette(true)
	c.failure.EnableColor()
	c.failure.Fprint(&colored, "x")
	assert.NotEqual(t, "x", colored.String())
}
