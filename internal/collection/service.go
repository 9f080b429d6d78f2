// Package collection holds the ordered, in-memory transport collection and
// the decorator that reports its operations to observers.
package collection

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/fleet/pkg/types"
)

// Operation names reported in errors and observer events.
const (
	OpAdd      = "add"
	OpRemoveAt = "removeAt"
	OpUpdate   = "update"
	OpCompare  = "compare"
)

// Store is the set of collection operations the shell depends on.
type Store interface {
	// Add builds a transport of kind from fields and appends it.
	// Validation errors are returned without touching the collection.
	Add(kind types.Kind, fields types.Fields) (types.Transport, error)

	// RemoveAt removes and returns the transport at index. Later entries
	// shift down by one.
	RemoveAt(index int) (types.Transport, error)

	// Update applies mutate to a copy of the transport at index and stores
	// the copy only when mutate returns nil.
	Update(index int, mutate func(t *types.Transport) error) (types.Transport, error)

	// Compare returns both transports and whether they are equal.
	Compare(a, b int) (Comparison, error)

	// List returns copies of every transport in order.
	List() []Entry

	// Len returns the number of transports held.
	Len() int
}

// Entry is one positioned transport in a List result.
type Entry struct {
	Index     int
	Transport types.Transport
}

// Comparison is the result of Compare.
type Comparison struct {
	First  types.Transport
	Second types.Transport
	Equal  bool
}

// Service is the in-memory Store. It is not safe for concurrent use.
type Service struct {
	items []types.Transport
}

// New returns an empty Service.
func New() *Service {
	return &Service{}
}

var _ Store = (*Service)(nil)

func (s *Service) Add(kind types.Kind, fields types.Fields) (types.Transport, error) {
	t, err := types.Build(kind, fields)
	if err != nil {
		return types.Transport{}, fmt.Errorf("%s %s: %w", OpAdd, kind, err)
	}
	s.items = append(s.items, t)
	return t, nil
}

func (s *Service) RemoveAt(index int) (types.Transport, error) {
	if err := s.checkIndex(OpRemoveAt, index); err != nil {
		return types.Transport{}, err
	}
	removed := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	return removed, nil
}

func (s *Service) Update(index int, mutate func(t *types.Transport) error) (types.Transport, error) {
	if err := s.checkIndex(OpUpdate, index); err != nil {
		return types.Transport{}, err
	}
	next := s.items[index]
	if err := mutate(&next); err != nil {
		return types.Transport{}, fmt.Errorf("%s %d: %w", OpUpdate, index, err)
	}
	s.items[index] = next
	return next, nil
}

// Compare fails with ErrInsufficientElements when fewer than two transports
// are held, before looking at the indices.
func (s *Service) Compare(a, b int) (Comparison, error) {
	if len(s.items) < 2 {
		return Comparison{}, &types.IndexError{
			Op:  OpCompare,
			Len: len(s.items),
			Err: types.ErrInsufficientElements,
		}
	}
	for _, i := range []int{a, b} {
		if err := s.checkIndex(OpCompare, i); err != nil {
			return Comparison{}, err
		}
	}
	first, second := s.items[a], s.items[b]
	return Comparison{
		First:  first,
		Second: second,
		Equal:  first.Equal(second),
	}, nil
}

func (s *Service) List() []Entry {
	entries := make([]Entry, len(s.items))
	for i, t := range s.items {
		entries[i] = Entry{Index: i, Transport: t}
	}
	return entries
}

func (s *Service) Len() int {
	return len(s.items)
}

func (s *Service) checkIndex(op string, index int) error {
	if index < 0 || index >= len(s.items) {
		return &types.IndexError{
			Op:    op,
			Index: index,
			Len:   len(s.items),
			Err:   types.ErrIndexOutOfRange,
		}
	}
	return nil
}

func (c Comparison) String() string {
	return fmt.Sprintf("equal=%t first=%s second=%s", c.Equal, c.First, c.Second)
}
