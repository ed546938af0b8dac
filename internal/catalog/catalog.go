// Package catalog holds the compiled-in table of SUD screening and assessment
// instruments compared by the review.
package catalog

import (
	"errors"
	"fmt"
)

// ID is the short mnemonic that identifies an instrument (e.g. "AUDIT").
type ID string

// Category groups instruments into the two tab clusters.
type Category int

const (
	Screening Category = iota
	Assessment
)

func (c Category) String() string {
	switch c {
	case Screening:
		return "Screening"
	case Assessment:
		return "Assessment"
	default:
		return "Unknown"
	}
}

// Label is the heading used for the category's tab cluster.
func (c Category) Label() string {
	return c.String() + " Tools"
}

// Categories lists every category in display order.
var Categories = []Category{Screening, Assessment}

// Tone selects the colour family of an instrument's verdict callout.
type Tone int

const (
	ToneScreening   Tone = iota // blue
	ToneSpecialized             // purple
	ToneFavorable               // green
	ToneMonitoring              // yellow
	ToneCautionary              // red
)

func (t Tone) String() string {
	switch t {
	case ToneScreening:
		return "screening"
	case ToneSpecialized:
		return "specialized"
	case ToneFavorable:
		return "favorable"
	case ToneMonitoring:
		return "monitoring"
	case ToneCautionary:
		return "cautionary"
	default:
		return "unknown"
	}
}

// Instrument is one immutable catalog record.
type Instrument struct {
	ID                 ID
	Category           Category
	DisplayName        string // tab label
	FullName           string
	AdministrationType string // e.g. "Screening (Pike, 2014)"
	TargetSubstance    string
	AdministrationTime string
	Strengths          []string
	Limitations        []string
	Verdict            string
	Tone               Tone
}

// Catalog is an ordered, validated set of instruments.
type Catalog struct {
	order []ID
	byID  map[ID]Instrument
}

// New builds a catalog from records, preserving their order.
// It returns an error if any invariant of the table is broken.
func New(records []Instrument) (*Catalog, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}
	c := &Catalog{
		order: make([]ID, 0, len(records)),
		byID:  make(map[ID]Instrument, len(records)),
	}
	for _, r := range records {
		c.order = append(c.order, r.ID)
		c.byID[r.ID] = r
	}
	return c, nil
}

// MustNew is New for compiled-in tables; a broken table is a programming defect.
func MustNew(records []Instrument) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Default returns the review's instrument catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog = MustNew(instruments)

// Validate checks the table invariants: non-empty, unique ids, every scalar
// field present, non-empty strengths and limitations, and both categories
// populated.
func Validate(records []Instrument) error {
	if len(records) == 0 {
		return errors.New("no instruments")
	}
	seen := make(map[ID]bool, len(records))
	perCategory := make(map[Category]int)
	for i, r := range records {
		if r.ID == "" {
			return fmt.Errorf("record %d: empty id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Category != Screening && r.Category != Assessment {
			return fmt.Errorf("%s: unknown category %d", r.ID, r.Category)
		}
		perCategory[r.Category]++
		for name, v := range map[string]string{
			"display name":        r.DisplayName,
			"full name":           r.FullName,
			"administration type": r.AdministrationType,
			"target substance":    r.TargetSubstance,
			"administration time": r.AdministrationTime,
			"verdict":             r.Verdict,
		} {
			if v == "" {
				return fmt.Errorf("%s: empty %s", r.ID, name)
			}
		}
		if len(r.Strengths) == 0 {
			return fmt.Errorf("%s: no strengths", r.ID)
		}
		if len(r.Limitations) == 0 {
			return fmt.Errorf("%s: no limitations", r.ID)
		}
	}
	for _, c := range Categories {
		if perCategory[c] == 0 {
			return fmt.Errorf("no %s instruments", c)
		}
	}
	return nil
}

// IDs returns all instrument ids in catalog order.
func (c *Catalog) IDs() []ID {
	out := make([]ID, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of instruments.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id ID) bool {
	_, ok := c.byID[id]
	return ok
}

// Lookup returns the instrument for id.
func (c *Catalog) Lookup(id ID) (Instrument, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Get returns the instrument for id and panics if id is not in the catalog.
func (c *Catalog) Get(id ID) Instrument {
	r, ok := c.byID[id]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown instrument %q", id))
	}
	return r
}

// Index returns the position of id in catalog order, or -1.
func (c *Catalog) Index(id ID) int {
	for i, o := range c.order {
		if o == id {
			return i
		}
	}
	return -1
}

// At returns the id at position i in catalog order.
func (c *Catalog) At(i int) ID {
	return c.order[i]
}

// Group returns the ids of one category, in catalog order.
func (c *Catalog) Group(cat Category) []ID {
	var out []ID
	for _, id := range c.order {
		if c.byID[id].Category == cat {
			out = append(out, id)
		}
	}
	return out
}

// First returns the first id of a category.
func (c *Catalog) First(cat Category) ID {
	g := c.Group(cat)
	if len(g) == 0 {
		panic(fmt.Sprintf("catalog: no %s instruments", cat))
	}
	return g[0]
}

// All returns every instrument in catalog order.
func (c *Catalog) All() []Instrument {
	out := make([]Instrument, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
