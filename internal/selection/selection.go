// Package selection is the single-selection state machine over catalog ids
// that drives the instrument comparison tabs.
package selection

import (
	"fmt"

	"sudreview/internal/catalog"
)

// ChangeFunc is called after every Select with the previous and new id.
// from == to when an already active id is selected again.
type ChangeFunc func(from, to catalog.ID)

// State tracks which instrument is active. Every id is reachable from every
// other id; there is no terminal state.
type State struct {
	catalog  *catalog.Catalog
	active   catalog.ID
	OnChange ChangeFunc
}

// New returns a State with the first screening instrument active.
func New(c *catalog.Catalog) *State {
	return &State{
		catalog: c,
		active:  c.First(catalog.Screening),
	}
}

// Active returns the active id.
func (s *State) Active() catalog.ID {
	return s.active
}

// Record returns the active instrument.
func (s *State) Record() catalog.Instrument {
	return s.catalog.Get(s.active)
}

// Catalog returns the catalog the state selects from.
func (s *State) Catalog() *catalog.Catalog {
	return s.catalog
}

// Select makes id active. Selecting an id outside the catalog is a
// programming error and panics.
func (s *State) Select(id catalog.ID) {
	if !s.catalog.Has(id) {
		panic(fmt.Sprintf("selection: %q is not in the catalog", id))
	}
	from := s.active
	s.active = id
	if s.OnChange != nil {
		s.OnChange(from, id)
	}
}

// SelectIndex selects the id at position i in catalog order.
func (s *State) SelectIndex(i int) {
	s.Select(s.catalog.At(i))
}

// Next selects the following id in catalog order, wrapping around.
func (s *State) Next() {
	i := s.catalog.Index(s.active)
	s.SelectIndex((i + 1) % s.catalog.Len())
}

// Prev selects the preceding id in catalog order, wrapping around.
func (s *State) Prev() {
	i := s.catalog.Index(s.active)
	n := s.catalog.Len()
	s.SelectIndex((i - 1 + n) % n)
}
