package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sudreview/internal/catalog"
)

func TestNew_DefaultsToFirstScreeningTool(t *testing.T) {
	s := New(catalog.Default())
	assert.Equal(t, catalog.ID("AUDIT"), s.Active())
	assert.Equal(t, "AUDIT & DAST-20", s.Record().FullName)
}

func TestSelect_EveryIDReachableFromEveryID(t *testing.T) {
	c := catalog.Default()
	for _, from := range c.IDs() {
		for _, to := range c.IDs() {
			s := New(c)
			s.Select(from)
			s.Select(to)
			assert.Equal(t, to, s.Active())
		}
	}
}

func TestSelect_SameIDIsIdempotent(t *testing.T) {
	s := New(catalog.Default())
	var calls [][2]catalog.ID
	s.OnChange = func(from, to catalog.ID) {
		calls = append(calls, [2]catalog.ID{from, to})
	}

	s.Select("AUDIT")
	s.Select("AUDIT")

	assert.Equal(t, catalog.ID("AUDIT"), s.Active())
	assert.Equal(t, [][2]catalog.ID{{"AUDIT", "AUDIT"}, {"AUDIT", "AUDIT"}}, calls)
}

func TestSelect_UnknownIDPanics(t *testing.T) {
	s := New(catalog.Default())
	assert.Panics(t, func() { s.Select("NOPE") })
	assert.Equal(t, catalog.ID("AUDIT"), s.Active())
}

func TestNextPrev_Wrap(t *testing.T) {
	s := New(catalog.Default())

	s.Prev()
	assert.Equal(t, catalog.ID("TLFB"), s.Active())
	s.Next()
	assert.Equal(t, catalog.ID("AUDIT"), s.Active())
	s.Next()
	assert.Equal(t, catalog.ID("DAST"), s.Active())
}

func TestOnChange_ReportsTransition(t *testing.T) {
	s := New(catalog.Default())
	var from, to catalog.ID
	s.OnChange = func(f, t catalog.ID) { from, to = f, t }

	s.Select("SIP")
	assert.Equal(t, catalog.ID("AUDIT"), from)
	assert.Equal(t, catalog.ID("SIP"), to)
}
