package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"sudreview/internal/content"
	"sudreview/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// ScrollThreshold is the offset past which the nav bar turns solid.
	ScrollThreshold = 3
	// AnchorReferences is the anchor of the reference list.
	AnchorReferences = "references"
	// AnchorComparison is the first line of the comparison tabs.
	AnchorComparison = "comparison"

	maxContentWidth   = 110
	sectionJumpMargin = 1
)

// MarkdownRenderer turns Markdown into terminal text wrapped at width.
type MarkdownRenderer func(markdown string, width int) (string, error)

// GlamourRenderer renders with glamour's dark style, keeping one renderer
// per wrap width.
func GlamourRenderer() MarkdownRenderer {
	renderers := make(map[int]*glamour.TermRenderer)
	return func(md string, width int) (string, error) {
		r, ok := renderers[width]
		if !ok {
			var err error
			r, err = glamour.NewTermRenderer(
				glamour.WithStandardStyle("dark"),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return "", fmt.Errorf("creating markdown renderer: %w", err)
			}
			renderers[width] = r
		}
		out, err := r.Render(md)
		if err != nil {
			return "", fmt.Errorf("rendering markdown: %w", err)
		}
		return strings.Trim(out, "\n"), nil
	}
}

// PlainRenderer wraps Markdown source line by line without styling.
func PlainRenderer(md string, width int) (string, error) {
	var out []string
	for _, line := range strings.Split(strings.TrimRight(md, "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, textutil.Wrap(line, width)...)
	}
	return strings.Join(out, "\n"), nil
}

// DocumentView is the scrollable page: hero, contents, numbered sections
// with the live funnel and comparison spliced in, references and footer.
type DocumentView struct {
	Viewport   viewport.Model
	Funnel     *FunnelView
	Comparison *ComparisonView
	Render     MarkdownRenderer
	Logger     *slog.Logger

	sections   []content.Section
	prose      map[string]string
	proseWidth int
	anchors    map[string]int
	funnelTop  int
	funnelRows int
}

// NewDocumentView creates the page. Call SetSize before the first View.
func NewDocumentView(f *FunnelView, c *ComparisonView, render MarkdownRenderer) *DocumentView {
	if render == nil {
		render = PlainRenderer
	}
	return &DocumentView{
		Viewport:   viewport.New(80, 20),
		Funnel:     f,
		Comparison: c,
		Render:     render,
		Logger:     slog.New(slog.DiscardHandler),
		sections:   content.Sections(),
		anchors:    make(map[string]int),
	}
}

// Init implements View.
func (d *DocumentView) Init() tea.Cmd { return nil }

// SetSize resizes the viewport and re-lays out the page.
func (d *DocumentView) SetSize(width, height int) {
	d.Viewport.Width = width
	d.Viewport.Height = max(height, 1)
	d.Rebuild()
}

// Update implements View.
func (d *DocumentView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch s := msg.String(); s {
		case "g", "home":
			d.Viewport.GotoTop()
			return d, nil
		case "G", "end":
			d.Viewport.GotoBottom()
			return d, nil
		default:
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				if i := int(s[0] - '1'); i < len(d.sections) {
					d.JumpTo(d.sections[i].ID)
				}
				return d, nil
			}
		}
	}
	var cmd tea.Cmd
	d.Viewport, cmd = d.Viewport.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DocumentView) View() string {
	return d.Viewport.View()
}

// Scrolled reports whether the page has moved past ScrollThreshold.
func (d *DocumentView) Scrolled() bool {
	return d.Viewport.YOffset > ScrollThreshold
}

// JumpTo scrolls so the anchor sits just below the top edge. An empty id
// scrolls to the top. Unknown anchors are ignored.
func (d *DocumentView) JumpTo(id string) bool {
	if id == "" {
		d.Viewport.GotoTop()
		return true
	}
	line, ok := d.anchors[id]
	if !ok {
		return false
	}
	d.Viewport.SetYOffset(max(line-sectionJumpMargin, 0))
	return true
}

// Anchor returns the first line of a section.
func (d *DocumentView) Anchor(id string) (int, bool) {
	line, ok := d.anchors[id]
	return line, ok
}

// ActiveSection returns the id of the section at the top of the viewport,
// or "" above the first section.
func (d *DocumentView) ActiveSection() string {
	top := d.Viewport.YOffset + sectionJumpMargin
	active := ""
	for _, s := range d.sections {
		if line, ok := d.anchors[s.ID]; ok && line <= top {
			active = s.ID
		}
	}
	return active
}

// FunnelVisible reports whether any row of the funnel is on screen.
func (d *DocumentView) FunnelVisible() bool {
	top, bottom := d.Viewport.YOffset, d.Viewport.YOffset+d.Viewport.Height
	return d.funnelRows > 0 && d.funnelTop < bottom && d.funnelTop+d.funnelRows > top
}

func (d *DocumentView) contentWidth() int {
	return max(min(d.Viewport.Width-2, maxContentWidth), 20)
}

// Rebuild re-renders the page at the current width, keeping the offset.
// Prose is only re-rendered when the width changes.
func (d *DocumentView) Rebuild() {
	cw := d.contentWidth()
	if d.prose == nil || d.proseWidth != cw {
		d.renderProse(cw)
	}

	var pb pageBuilder
	pb.add(renderHero(cw))
	pb.gap()
	pb.add(d.renderContents(cw))
	pb.gap()
	for _, s := range d.sections {
		d.anchors[s.ID] = pb.height()
		pb.add(Styles.Emphasis.Render(strings.ToUpper(s.Kicker)))
		pb.add(Styles.Heading.Render(s.Title))
		pb.gap()
		pb.add(d.prose[s.ID])
		switch s.Embed {
		case content.EmbedFunnel:
			pb.gap()
			d.funnelTop = pb.height()
			block := d.Funnel.View(cw)
			d.funnelRows = lipgloss.Height(block)
			pb.add(block)
		case content.EmbedComparison:
			pb.gap()
			d.anchors[AnchorComparison] = pb.height()
			d.Comparison.Width = cw
			pb.add(d.Comparison.View())
		}
		pb.gap()
		pb.gap()
	}
	d.anchors[AnchorReferences] = pb.height()
	pb.add(renderReferences(cw))
	pb.gap()
	pb.add(renderShare(cw))
	pb.gap()
	pb.add(renderFooter(cw))

	page := pb.String()
	if margin := (d.Viewport.Width - cw) / 2; margin > 0 {
		page = lipgloss.NewStyle().PaddingLeft(margin).Render(page)
	}
	d.Viewport.SetContent(page)
}

func (d *DocumentView) renderProse(width int) {
	d.prose = make(map[string]string, len(d.sections))
	d.proseWidth = width
	for _, s := range d.sections {
		out, err := d.Render(s.Body, width)
		if err != nil {
			d.Logger.Warn("markdown render failed, showing source", "section", s.ID, "err", err)
			out, _ = PlainRenderer(s.Body, width)
		}
		d.prose[s.ID] = out
	}
}

func (d *DocumentView) renderContents(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Contents"))
	for _, s := range d.sections {
		b.WriteString("\n")
		b.WriteString(Styles.Emphasis.Render(fmt.Sprintf("%02d", s.Number)))
		b.WriteString("  ")
		b.WriteString(Styles.Heading.Render(s.Label))
		b.WriteString(Styles.Muted.Render(textutil.Truncate("  "+s.Sub, max(width-6-textutil.VisualWidth(s.Label), 0))))
	}
	return b.String()
}

func renderHero(width int) string {
	h := content.TheHero()
	var b strings.Builder
	b.WriteString(Styles.Chip.Render(strings.ToUpper(h.Badge)))
	b.WriteString("\n\n")
	title := strings.Join(textutil.Wrap(h.Title, width), "\n")
	b.WriteString(Styles.Heading.Render(title))
	b.WriteString("\n")
	b.WriteString(Styles.Emphasis.Bold(true).Render(h.Emphasis))
	b.WriteString("\n\n")
	b.WriteString(Styles.Muted.Render(strings.Join(textutil.Wrap(h.Subtitle, width), "\n")))
	b.WriteString("\n\n")
	b.WriteString(gradientRule(min(width, 48)))
	return b.String()
}

// gradientRule is a horizontal rule blending accent into emphasis.
func gradientRule(width int) string {
	from, _ := colorful.Hex(ColorAccent)
	to, _ := colorful.Hex(ColorEmphasis)
	var b strings.Builder
	for i := 0; i < width; i++ {
		t := float64(i) / float64(max(width-1, 1))
		c := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("━"))
	}
	return b.String()
}

func renderReferences(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Key References"))
	for i, ref := range content.References() {
		prefix := textutil.PadLeftVisual(strconv.Itoa(i+1)+".", 3) + " "
		for j, line := range textutil.Wrap(ref, width-len(prefix)) {
			b.WriteString("\n")
			if j == 0 {
				b.WriteString(Styles.Dim.Render(prefix))
			} else {
				b.WriteString(strings.Repeat(" ", len(prefix)))
			}
			b.WriteString(Styles.Muted.Render(line))
		}
	}
	return b.String()
}

func renderShare(width int) string {
	text := strings.Join(textutil.Wrap(content.ShareText, width-4), "\n")
	return Styles.BoxAccent.Width(min(width, 72) - 2).Render(
		Styles.Heading.Render("Share this review") + "\n" +
			Styles.Muted.Render(text) + "\n\n" +
			Styles.Title.Render("SPC s") + Styles.Muted.Render(" copy link   ") +
			Styles.Title.Render("SPC p") + Styles.Muted.Render(" save print copy"))
}

func renderFooter(width int) string {
	f := content.TheFooter()
	lines := []string{
		gradientRule(min(width, 48)),
		Styles.Heading.Render(f.Title),
		Styles.Muted.Render(f.Subtitle),
		Styles.Dim.Render(f.Date),
		Styles.Dim.Render(f.Disclosure),
		"",
		Styles.Title.Render("t") + Styles.Muted.Render(" Back to Top"),
	}
	return strings.Join(lines, "\n")
}

// pageBuilder accumulates blocks and tracks line positions for anchors.
type pageBuilder struct {
	lines []string
}

func (p *pageBuilder) add(block string) {
	p.lines = append(p.lines, strings.Split(block, "\n")...)
}

func (p *pageBuilder) gap() {
	p.lines = append(p.lines, "")
}

func (p *pageBuilder) height() int {
	return len(p.lines)
}

func (p *pageBuilder) String() string {
	return strings.Join(p.lines, "\n")
}
