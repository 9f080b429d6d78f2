package collection

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/fleet/pkg/types"
)

// Event describes one completed Store operation.
type Event struct {
	CallID   uuid.UUID
	Op       string
	Args     []any
	Result   any
	Err      error
	Duration time.Duration
}

// Observer is notified after each add, removeAt, update and compare call.
// Observers must not retain or modify Args and Result.
type Observer interface {
	Observe(e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// observed wraps a Store and reports its mutating and comparing operations.
type observed struct {
	next      Store
	observers []Observer
	now       func() time.Time
}

// Observe returns a Store that forwards every call to next and notifies
// observers after add, removeAt, update and compare. List and Len pass
// through unreported. With no observers next is returned unchanged.
func Observe(next Store, observers ...Observer) Store {
	if len(observers) == 0 {
		return next
	}
	return &observed{next: next, observers: observers, now: time.Now}
}

func (o *observed) Add(kind types.Kind, fields types.Fields) (types.Transport, error) {
	start := o.now()
	t, err := o.next.Add(kind, fields)
	o.notify(OpAdd, start, []any{kind, fields}, t, err)
	return t, err
}

func (o *observed) RemoveAt(index int) (types.Transport, error) {
	start := o.now()
	t, err := o.next.RemoveAt(index)
	o.notify(OpRemoveAt, start, []any{index}, t, err)
	return t, err
}

func (o *observed) Update(index int, mutate func(t *types.Transport) error) (types.Transport, error) {
	start := o.now()
	t, err := o.next.Update(index, mutate)
	o.notify(OpUpdate, start, []any{index}, t, err)
	return t, err
}

func (o *observed) Compare(a, b int) (Comparison, error) {
	start := o.now()
	c, err := o.next.Compare(a, b)
	o.notify(OpCompare, start, []any{a, b}, c, err)
	return c, err
}

func (o *observed) List() []Entry { return o.next.List() }

func (o *observed) Len() int { return o.next.Len() }

func (o *observed) notify(op string, start time.Time, args []any, result any, err error) {
	e := Event{
		CallID:   newCallID(),
		Op:       op,
		Args:     args,
		Err:      err,
		Duration: o.now().Sub(start),
	}
	if err == nil {
		e.Result = result
	}
	for _, obs := range o.observers {
		obs.Observe(e)
	}
}

// newCallID returns a UUID v7, falling back to v4 if the clock source fails.
func newCallID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
