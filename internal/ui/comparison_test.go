package ui

import (
	"strings"
	"testing"
	"time"

	"sudreview/internal/catalog"
	"sudreview/internal/motion"
	"sudreview/internal/selection"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 4, 25, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func newComparison(t *testing.T) (*ComparisonView, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	v := NewComparisonView(selection.New(catalog.Default()), clk, 300*time.Millisecond)
	v.Width = 120
	return v, clk
}

func settle(v *ComparisonView, clk *fakeClock) {
	v.Advance(clk.Add(time.Second))
}

func TestProject_EveryInstrumentHasAllZones(t *testing.T) {
	c := catalog.Default()
	for _, id := range c.IDs() {
		p := Project(c, id)
		rec := c.Get(id)
		assert.Equal(t, rec.FullName, p.Header.FullName, id)
		assert.NotEmpty(t, p.Header.AdministrationType, id)
		assert.NotEmpty(t, p.Header.TargetSubstance, id)
		assert.NotEmpty(t, p.Header.AdministrationTime, id)
		assert.NotEmpty(t, p.Strengths, id)
		assert.NotEmpty(t, p.Limitations, id)
		assert.NotEmpty(t, p.Verdict, id)

		out := RenderPanel(p, 120, Styles)
		assert.Contains(t, out, rec.DisplayName, id)
		assert.Contains(t, out, StrengthsTitle, id)
		assert.Contains(t, out, LimitationsTitle, id)
		assert.Contains(t, out, VerdictTitle, id)
		assert.Contains(t, out, "✓", id)
		assert.Contains(t, out, "•", id)
	}
}

func TestProject_UnknownIDPanics(t *testing.T) {
	assert.Panics(t, func() { Project(catalog.Default(), "CAGE") })
}

func TestRenderPanel_ColumnsByWidth(t *testing.T) {
	p := Project(catalog.Default(), "AUDIT")
	sameLine := func(out string) bool {
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, StrengthsTitle) && strings.Contains(line, LimitationsTitle) {
				return true
			}
		}
		return false
	}

	wide := RenderPanel(p, TwoColumnMinWidth, Styles)
	assert.True(t, sameLine(wide), "wide card should put zones side by side")
	assert.LessOrEqual(t, lipgloss.Width(wide), TwoColumnMinWidth)

	narrow := RenderPanel(p, TwoColumnMinWidth-1, Styles)
	assert.False(t, sameLine(narrow), "narrow card should stack zones")
	assert.LessOrEqual(t, lipgloss.Width(narrow), TwoColumnMinWidth-1)
}

func TestComparison_InitialMountIsFirstScreeningTool(t *testing.T) {
	v, clk := newComparison(t)
	assert.Equal(t, catalog.ID("AUDIT"), v.State.Active())
	assert.True(t, v.Animating(), "initial mount plays an enter")

	settle(v, clk)
	assert.False(t, v.Animating())
	assert.Equal(t, []catalog.ID{"AUDIT"}, v.Mounted())
}

func TestComparison_TabsPartitionByCategory(t *testing.T) {
	v, _ := newComparison(t)
	c := v.State.Catalog()
	tabs := v.renderTabs()

	screening := strings.Index(tabs, catalog.Screening.Label())
	assessment := strings.Index(tabs, catalog.Assessment.Label())
	require.GreaterOrEqual(t, screening, 0)
	require.Greater(t, assessment, screening)

	for _, id := range c.IDs() {
		name := c.Get(id).DisplayName
		assert.Equal(t, 1, strings.Count(tabs, name), "%s should appear in exactly one cluster", name)
		pos := strings.Index(tabs, name)
		if c.Get(id).Category == catalog.Screening {
			assert.True(t, pos > screening && pos < assessment, name)
		} else {
			assert.Greater(t, pos, assessment, name)
		}
	}
}

func TestComparison_ReselectIsNoop(t *testing.T) {
	v, clk := newComparison(t)
	settle(v, clk)
	before := v.View()

	v.Select(v.State.Active())
	assert.Equal(t, before, v.View())
	assert.False(t, v.Animating())
}

func TestComparison_RapidReselectionSettlesOnLast(t *testing.T) {
	v, clk := newComparison(t)
	settle(v, clk)

	v.Select("DAST")
	v.Select("SIP")
	assert.Equal(t, catalog.ID("SIP"), v.State.Active(), "selection never waits for animation")
	assert.Equal(t, []catalog.ID{"DAST", "SIP"}, v.Mounted(), "at most one outgoing child")

	v.Advance(clk.Add(300 * time.Millisecond))
	assert.Equal(t, []catalog.ID{"SIP"}, v.Mounted())
	assert.False(t, v.Animating())
}

func TestComparison_NeverTwoOpaqueCards(t *testing.T) {
	v, clk := newComparison(t)
	settle(v, clk)
	v.Select("TLFB")
	for i := 0; i < 20; i++ {
		v.Advance(clk.Add(20 * time.Millisecond))
		opaque := 0
		for _, f := range v.Presence.Frames() {
			if f.Style.Opacity >= 1 {
				opaque++
			}
		}
		assert.LessOrEqual(t, opaque, 1)
		assert.NotEmpty(t, v.Presence.Frames())
	}
}

func TestComparison_Keys(t *testing.T) {
	v, clk := newComparison(t)
	settle(v, clk)

	v.Update(keyMsg("right"))
	assert.Equal(t, catalog.ID("AUDIT"), v.State.Active(), "keys are ignored without focus")

	v.Focused = true
	v.Update(keyMsg("right"))
	assert.Equal(t, catalog.ID("DAST"), v.State.Active())
	v.Update(keyMsg("h"))
	assert.Equal(t, catalog.ID("AUDIT"), v.State.Active())
	v.Update(keyMsg("left"))
	assert.Equal(t, catalog.ID("TLFB"), v.State.Active(), "wraps around")
	v.Update(keyMsg("4"))
	assert.Equal(t, catalog.ID("SIP"), v.State.Active())
	v.Update(keyMsg("9"))
	assert.Equal(t, catalog.ID("SIP"), v.State.Active(), "out of range index is ignored")
	v.Update(SelectInstrumentMsg{ID: "ASI"})
	assert.Equal(t, catalog.ID("ASI"), v.State.Active())
}

func TestComparison_CardDuringTransitionKeepsHeight(t *testing.T) {
	v, clk := newComparison(t)
	settle(v, clk)
	steady := lipgloss.Height(v.renderCard())

	v.Select("ASI")
	v.Advance(clk.Add(150 * time.Millisecond))
	assert.Len(t, v.Presence.Frames(), 2)
	mid := v.renderCard()
	assert.GreaterOrEqual(t, lipgloss.Height(mid), steady-2)
}

func TestComposeLayers(t *testing.T) {
	bottom := newLayer("a\nb\nc", 0, 1)
	top := newLayer("X\n\nZ", 1, 1)
	assert.Equal(t, []string{"a", "X", "c"}, composeLayers(3, bottom, top))

	hidden := newLayer("H\nH\nH", 0, 0)
	assert.Equal(t, []string{"a", "b", "c"}, composeLayers(0, bottom, hidden))
}

func TestFadeBlendsTowardBackground(t *testing.T) {
	assert.Equal(t, ColorAccent, string(Fade(ColorAccent, 1)))
	assert.Equal(t, ColorBackground, string(Fade(ColorAccent, 0)))
	mid := string(Fade(ColorAccent, 0.5))
	assert.NotEqual(t, ColorAccent, mid)
	assert.NotEqual(t, ColorBackground, mid)
}

var _ motion.Clock = (*fakeClock)(nil)

func TestComparison_ArrowsActivateWithoutCommit(t *testing.T) {
	v, clk := newComparison(t)
	settle(v, clk)
	v.Focused = true

	v.Update(keyMsg("right"))
	assert.Equal(t, catalog.ID("DAST"), v.State.Active(), "arrow activates the tab it lands on")
	settle(v, clk)

	before := v.View()
	v.Update(keyMsg("enter"))
	assert.Equal(t, catalog.ID("DAST"), v.State.Active())
	assert.False(t, v.Animating())
	assert.Equal(t, before, v.View())

	for _, b := range newRegistry().DirectHelp(RegionComparison) {
		assert.NotContains(t, b.Help().Key, "enter", "help must not offer a commit key")
	}
}

func TestToneColor_Families(t *testing.T) {
	tests := []struct {
		tone   catalog.Tone
		minHue float64
		maxHue float64
	}{
		{catalog.ToneScreening, 200, 230},   // blue
		{catalog.ToneSpecialized, 245, 275}, // purple
		{catalog.ToneFavorable, 140, 170},   // green
		{catalog.ToneMonitoring, 40, 65},    // yellow
		{catalog.ToneCautionary, -15, 15},   // red
	}
	for _, tt := range tests {
		t.Run(tt.tone.String(), func(t *testing.T) {
			c, err := colorful.Hex(ToneColor(tt.tone))
			require.NoError(t, err)
			h, _, _ := c.Hsv()
			if h > 180 && tt.maxHue < 180 {
				h -= 360
			}
			assert.GreaterOrEqual(t, h, tt.minHue)
			assert.LessOrEqual(t, h, tt.maxHue)
		})
	}
}
