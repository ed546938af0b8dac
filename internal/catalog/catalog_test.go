package catalog

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecords() []Instrument {
	return []Instrument{
		{
			ID: "A", Category: Screening, DisplayName: "A", FullName: "Alpha",
			AdministrationType: "Screening", TargetSubstance: "Alcohol", AdministrationTime: "2 mins",
			Strengths: []string{"s"}, Limitations: []string{"l"}, Verdict: "ok",
		},
		{
			ID: "B", Category: Assessment, DisplayName: "B", FullName: "Beta",
			AdministrationType: "Assessment", TargetSubstance: "Drugs", AdministrationTime: "20 mins",
			Strengths: []string{"s"}, Limitations: []string{"l"}, Verdict: "ok",
		},
	}
}

func TestDefault_Invariants(t *testing.T) {
	c := Default()
	require.NoError(t, Validate(c.All()))
	assert.Equal(t, 6, c.Len())

	for _, r := range c.All() {
		assert.NotEmpty(t, r.Strengths, r.ID)
		assert.NotEmpty(t, r.Limitations, r.ID)
		assert.NotEmpty(t, r.Verdict, r.ID)
	}
}

func TestDefault_CategoriesPartitionIDs(t *testing.T) {
	c := Default()
	screening := c.Group(Screening)
	assessment := c.Group(Assessment)

	require.NotEmpty(t, screening)
	require.NotEmpty(t, assessment)
	assert.Len(t, append(append([]ID{}, screening...), assessment...), c.Len())

	seen := make(map[ID]int)
	for _, id := range screening {
		seen[id]++
	}
	for _, id := range assessment {
		seen[id]++
	}
	for _, id := range c.IDs() {
		assert.Equal(t, 1, seen[id], "id %s should be in exactly one group", id)
	}
}

func TestDefault_FirstScreeningIsAUDIT(t *testing.T) {
	assert.Equal(t, ID("AUDIT"), Default().First(Screening))
	assert.Equal(t, []ID{"AUDIT", "DAST", "ADS"}, Default().Group(Screening))
	assert.Equal(t, []ID{"SIP", "ASI", "TLFB"}, Default().Group(Assessment))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Instrument) []Instrument
	}{
		{"empty", func([]Instrument) []Instrument { return nil }},
		{"empty id", func(r []Instrument) []Instrument { r[0].ID = ""; return r }},
		{"duplicate id", func(r []Instrument) []Instrument { r[1].ID = r[0].ID; return r }},
		{"missing strengths", func(r []Instrument) []Instrument { r[0].Strengths = nil; return r }},
		{"missing limitations", func(r []Instrument) []Instrument { r[1].Limitations = nil; return r }},
		{"missing verdict", func(r []Instrument) []Instrument { r[0].Verdict = ""; return r }},
		{"missing substance", func(r []Instrument) []Instrument { r[1].TargetSubstance = ""; return r }},
		{"single category", func(r []Instrument) []Instrument { r[1].Category = Screening; return r }},
		{"unknown category", func(r []Instrument) []Instrument { r[1].Category = Category(9); return r }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(validRecords()))
			assert.Error(t, err)
		})
	}
}

func TestMustNew_PanicsOnBrokenTable(t *testing.T) {
	assert.Panics(t, func() { MustNew(nil) })
}

func TestCatalog_LookupAndIndex(t *testing.T) {
	c, err := New(validRecords())
	require.NoError(t, err)

	r, ok := c.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, "Beta", r.FullName)
	assert.Equal(t, 1, c.Index("B"))
	assert.Equal(t, -1, c.Index("Z"))
	assert.Equal(t, ID("A"), c.At(0))
	assert.False(t, c.Has("Z"))
	assert.Panics(t, func() { c.Get("Z") })
}

func TestCatalog_IDsIsACopy(t *testing.T) {
	c, err := New(validRecords())
	require.NoError(t, err)

	ids := c.IDs()
	ids[0] = "mutated"
	assert.Equal(t, ID("A"), c.At(0))
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Screening Tools", Screening.Label())
	assert.Equal(t, "Assessment Tools", Assessment.Label())
	assert.Equal(t, "Unknown", Category(7).String())
}

// pikeEntry is the published AUDIT / DAST-20 entry the two screening records
// are split from.
var pikeEntry = struct {
	pros, cons []string
	verdict    string
}{
	pros: []string{
		"Reliability: Excellent internal consistency (α=0.93 for AUDIT, α=0.86 for DAST).",
		"Performance: Mean score 14.73 for AUDIT (Medium risk); 10.1 for DAST (Substantial risk).",
		"Validity: Correlated w/ Legal History & BDI-II (r=.25).",
	},
	cons: []string{
		"Generalizability: Validated only in male, faith-based rehab settings (Pike, 2014).",
		"Constraint: Validated in a sober/housed cohort during rehab.",
		"Independence: Weak correlation between AUDIT & DAST (r=.19) suggests they measure distinct risks.",
	},
	verdict: "Psychometrically superior to other screens but lacks evidence in street-based HCH outreach.",
}

var number = regexp.MustCompile(`\d+(\.\d+)?`)

func TestPikeRecords_TraceToPublishedEntry(t *testing.T) {
	c := Default()
	for _, id := range []ID{"AUDIT", "DAST"} {
		r := c.Get(id)
		assert.Equal(t, pikeEntry.verdict, r.Verdict, id)
		assert.Equal(t, pikeEntry.cons, r.Limitations, id)
		assert.Equal(t, "Screening (Pike, 2014)", r.AdministrationType, id)

		require.Len(t, r.Strengths, len(pikeEntry.pros), id)
		for i, s := range r.Strengths {
			src := pikeEntry.pros[i]
			label, _, _ := strings.Cut(s, ":")
			assert.True(t, strings.HasPrefix(src, label+":"), "%s strength %d label %q", id, i, label)
			for _, n := range number.FindAllString(s, -1) {
				assert.Contains(t, src, n, "%s strength %d: %q not in the published entry", id, i, n)
			}
			if strings.Contains(src, "AUDIT") && strings.Contains(src, "DAST") {
				assert.Contains(t, s, string(id), "%s strength %d must name the test it reports", id, i)
			}
		}
	}
}
