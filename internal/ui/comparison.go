package ui

import (
	"fmt"
	"strings"
	"time"

	"sudreview/internal/catalog"
	"sudreview/internal/motion"
	"sudreview/internal/selection"

	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
)

// ComparisonView is the grouped instrument tab control over the comparison
// card. The card swaps through a keyed presence so the outgoing instrument
// fades out while the incoming one fades in.
type ComparisonView struct {
	State    *selection.State
	Presence *motion.Presence[catalog.ID]
	Clock    motion.Clock
	Focused  bool
	Width    int
}

// NewComparisonView mounts the active instrument of state, playing its enter
// transition.
func NewComparisonView(state *selection.State, clock motion.Clock, transition time.Duration) *ComparisonView {
	if clock == nil {
		clock = motion.SystemClock{}
	}
	return &ComparisonView{
		State: state,
		Presence: motion.NewPresence(state.Active(), clock.Now(),
			motion.DefaultEnter(transition), motion.DefaultExit(transition)),
		Clock: clock,
		Width: 80,
	}
}

// Init implements View.
func (v *ComparisonView) Init() tea.Cmd { return nil }

// Update implements View. Keys are only handled while focused. Tabs activate
// as the arrows reach them, so there is no separate cursor to commit.
func (v *ComparisonView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectInstrumentMsg:
		v.Select(msg.ID)
	case tea.KeyMsg:
		if !v.Focused {
			return v, nil
		}
		switch s := msg.String(); s {
		case "left", "h":
			v.State.Prev()
			v.sync()
		case "right", "l":
			v.State.Next()
			v.sync()
		default:
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if i := int(s[0] - '1'); i < v.State.Catalog().Len() {
					v.State.SelectIndex(i)
					v.sync()
				}
			}
		}
	}
	return v, nil
}

// Select makes id active. The selection changes immediately; only the card
// animates.
func (v *ComparisonView) Select(id catalog.ID) {
	v.State.Select(id)
	v.sync()
}

func (v *ComparisonView) sync() {
	v.Presence.Set(v.State.Active(), v.Clock.Now())
}

// Advance moves the card transition to now.
func (v *ComparisonView) Advance(now time.Time) {
	v.Presence.Advance(now)
}

// Animating reports whether the card is mid-transition.
func (v *ComparisonView) Animating() bool {
	return v.Presence.Animating()
}

// View implements View.
func (v *ComparisonView) View() string {
	return v.renderTabs() + "\n\n" + v.renderCard()
}

// renderTabs draws one cluster per category. Clusters sit on one line when
// they fit, otherwise one per line.
func (v *ComparisonView) renderTabs() string {
	c := v.State.Catalog()
	clusters := make([]string, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		label := Styles.Muted
		if v.Focused {
			label = Styles.Title
		}
		parts := []string{label.Render(cat.Label())}
		for _, id := range c.Group(cat) {
			parts = append(parts, v.renderTab(id))
		}
		clusters = append(clusters, strings.Join(parts, " "))
	}
	row := strings.Join(clusters, Styles.Dim.Render("  │  "))
	if lipgloss.Width(row) <= v.Width {
		return row
	}
	return strings.Join(clusters, "\n")
}

func (v *ComparisonView) renderTab(id catalog.ID) string {
	c := v.State.Catalog()
	name := c.Get(id).DisplayName
	if v.Focused {
		name = fmt.Sprintf("%d %s", c.Index(id)+1, name)
	}
	switch {
	case id == v.State.Active():
		return Styles.Selected.Render(name)
	case v.Focused:
		return Styles.Focused.Render(name)
	default:
		return Styles.Muted.Padding(0, 1).Render(name)
	}
}

// renderCard composes every mounted card, outgoing beneath incoming.
func (v *ComparisonView) renderCard() string {
	c := v.State.Catalog()
	frames := v.Presence.Frames()
	layers := make([]layer, 0, len(frames))
	height := 0
	for _, f := range frames {
		block := RenderPanel(Project(c, f.Key), v.Width, Faded(f.Style.Opacity))
		height = max(height, lipgloss.Height(block))
		layers = append(layers, newLayer(block, f.Style.Rows(), f.Style.Opacity))
	}
	return strings.Join(composeLayers(height, layers...), "\n")
}

// Mounted returns the keys of every card currently drawn.
func (v *ComparisonView) Mounted() []catalog.ID {
	return v.Presence.Mounted()
}
