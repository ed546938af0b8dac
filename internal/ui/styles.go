package ui

import (
	"sudreview/internal/catalog"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme colors used throughout the UI. Hex values so they can be faded
// toward the background.
const (
	ColorBackground = "#0b1120" // page background
	ColorSurface    = "#1e293b" // solid nav bar, cards
	ColorText       = "#e2e8f0"
	ColorMuted      = "#94a3b8"
	ColorDim        = "#475569"
	ColorAccent     = "#2dd4bf" // teal: titles, focus, keys
	ColorEmphasis   = "#818cf8" // indigo: hero emphasis, kickers
	ColorPositive   = "#34d399" // strengths
	ColorNegative   = "#fb7185" // limitations
)

// toneColors are the verdict callout colours per tone.
var toneColors = map[catalog.Tone]string{
	catalog.ToneScreening:   "#60a5fa", // blue
	catalog.ToneSpecialized: "#a78bfa", // purple
	catalog.ToneFavorable:   "#34d399", // green
	catalog.ToneMonitoring:  "#facc15", // yellow
	catalog.ToneCautionary:  "#f87171", // red
}

// ToneColor returns the callout colour for t.
func ToneColor(t catalog.Tone) string {
	if c, ok := toneColors[t]; ok {
		return c
	}
	return ColorMuted
}

// Fade blends hex toward the background. opacity 1 returns hex unchanged,
// 0 returns the background.
func Fade(hex string, opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return lipgloss.Color(hex)
	case opacity <= 0:
		return lipgloss.Color(ColorBackground)
	}
	fg, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color(hex)
	}
	bg, _ := colorful.Hex(ColorBackground)
	return lipgloss.Color(bg.BlendLab(fg, opacity).Clamped().Hex())
}

// Palette is the set of styles at a given opacity. Animated components
// render with Faded(opacity); everything else uses Styles.
type Palette struct {
	Title     lipgloss.Style // bold accent
	Emphasis  lipgloss.Style // hero title tail, kickers
	Heading   lipgloss.Style // section titles
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Selected  lipgloss.Style // active tab
	Focused   lipgloss.Style // inactive tabs while the tab region has focus
	Positive  lipgloss.Style // ✓ bullets
	Negative  lipgloss.Style // • bullets
	Chip      lipgloss.Style // substance chip
	Badge     lipgloss.Style // duration badge
	Box       lipgloss.Style // rounded card
	BoxAccent lipgloss.Style // rounded card, accent border
	NavSolid  lipgloss.Style
	Toast     lipgloss.Style

	opacity float64
}

// Faded returns the palette with every colour blended to opacity.
func Faded(opacity float64) Palette {
	c := func(hex string) lipgloss.Color { return Fade(hex, opacity) }
	return Palette{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(c(ColorAccent)),
		Emphasis: lipgloss.NewStyle().Foreground(c(ColorEmphasis)),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(c(ColorText)),
		Normal:   lipgloss.NewStyle().Foreground(c(ColorText)),
		Muted:    lipgloss.NewStyle().Foreground(c(ColorMuted)),
		Dim:      lipgloss.NewStyle().Foreground(c(ColorDim)),
		Selected: lipgloss.NewStyle().Bold(true).
			Foreground(c(ColorBackground)).
			Background(c(ColorAccent)).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().Underline(true).
			Foreground(c(ColorAccent)).
			Padding(0, 1),
		Positive: lipgloss.NewStyle().Foreground(c(ColorPositive)),
		Negative: lipgloss.NewStyle().Foreground(c(ColorNegative)),
		Chip: lipgloss.NewStyle().
			Foreground(c(ColorText)).
			Background(c(ColorSurface)).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(c(ColorEmphasis)).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(ColorDim)).
			Padding(0, 1),
		BoxAccent: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(ColorAccent)).
			Padding(0, 1),
		NavSolid: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(ColorText)).
			Background(c(ColorSurface)),
		Toast: lipgloss.NewStyle().
			Foreground(c(ColorBackground)).
			Background(c(ColorAccent)).
			Padding(0, 1),
		opacity: opacity,
	}
}

// Tone returns the callout style for t at the palette's opacity.
func (p Palette) Tone(t catalog.Tone) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(Fade(ToneColor(t), p.opacity)).
		Foreground(Fade(ColorText, p.opacity)).
		PaddingLeft(1)
}

// Styles is the fully opaque palette.
var Styles = Faded(1)
