package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"sudreview/internal/catalog"
	"sudreview/internal/content"
	"sudreview/internal/funnel"
	"sudreview/internal/motion"
	"sudreview/internal/report"
	"sudreview/internal/selection"
	"sudreview/internal/trace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options is everything the host decides. The presentation reads no
// environment or flags of its own.
type Options struct {
	Catalog      *catalog.Catalog
	Flow         funnel.Flow
	Transition   time.Duration // comparison card enter/exit
	Pace         float64       // funnel reveal speed; 0 disables the reveal
	FPS          int
	ShareURL     string
	ExportDir    string
	ExportFormat report.Format
	Clock        motion.Clock
	Clipboard    Clipboard
	Markdown     MarkdownRenderer
	Logger       *slog.Logger
	Recorder     *trace.Recorder
}

// DefaultOptions returns options for the built-in review with the system
// clock and clipboard.
func DefaultOptions() Options {
	return Options{
		Catalog:      catalog.Default(),
		Flow:         funnel.Review,
		Transition:   300 * time.Millisecond,
		Pace:         1,
		FPS:          60,
		ExportDir:    ".",
		ExportFormat: report.FormatHTML,
		Clock:        motion.SystemClock{},
		Clipboard:    SystemClipboard(),
		Markdown:     GlamourRenderer(),
	}
}

// AppModel is the root model: the document with its live components, the
// menu overlay, the toast and the keybind system.
type AppModel struct {
	Selection  *selection.State
	Comparison *ComparisonView
	Funnel     *FunnelView
	Document   *DocumentView
	Focus      *FocusRing
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Toast      Toast
	Width      int
	Height     int

	opts    Options
	log     *slog.Logger
	rec     *trace.Recorder
	ticking bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. Unset options fall back
// to DefaultOptions, except Transition and Pace where zero means no motion.
func NewAppModel(opts Options) *AppModel {
	opts = withDefaults(opts)
	a := &AppModel{
		opts: opts,
		log:  opts.Logger,
		rec:  opts.Recorder,
	}

	a.Selection = selection.New(opts.Catalog)
	a.Selection.OnChange = a.selectionChanged
	a.Comparison = NewComparisonView(a.Selection, opts.Clock, opts.Transition)
	a.Funnel = NewFunnelView(opts.Flow, opts.Pace, opts.FPS)
	a.Document = NewDocumentView(a.Funnel, a.Comparison, opts.Markdown)
	a.Document.Logger = opts.Logger

	a.Focus = NewFocusRing(RegionDocument, RegionComparison)
	a.Focus.OnChange = func(_, to Region) {
		if to == RegionComparison {
			a.Document.JumpTo(AnchorComparison)
		}
	}
	a.KeyHandler = NewKeyHandler(newRegistry())
	return a
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Catalog == nil {
		opts.Catalog = def.Catalog
	}
	if opts.Flow == (funnel.Flow{}) {
		opts.Flow = def.Flow
	}
	if opts.FPS <= 0 {
		opts.FPS = def.FPS
	}
	if opts.ExportDir == "" {
		opts.ExportDir = def.ExportDir
	}
	if opts.ExportFormat == "" {
		opts.ExportFormat = def.ExportFormat
	}
	if opts.Clock == nil {
		opts.Clock = def.Clock
	}
	if opts.Clipboard == nil {
		opts.Clipboard = def.Clipboard
	}
	if opts.Markdown == nil {
		opts.Markdown = def.Markdown
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Recorder == nil {
		opts.Recorder = trace.NewRecorder(nil)
	}
	return opts
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	send := func(msg tea.Msg) tea.Cmd { return func() tea.Msg { return msg } }

	reg.Describe("j/k", "scroll", RegionDocument)
	reg.Describe("1-4", "section", RegionDocument)
	reg.Describe("←/→", "instrument", RegionComparison)
	reg.Describe("1-6", "pick", RegionComparison)
	reg.BindWithDesc("tab", send(FocusNextMsg{}), "focus")
	reg.Bind("shift+tab", send(FocusPrevMsg{}))
	reg.BindWithDesc("m", send(ToggleMenuMsg{}), "menu")
	reg.BindWithDesc("t", send(JumpToSectionMsg{}), "top")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)

	reg.BindWithDesc("SPC s", send(ShareMsg{}), "Share link")
	reg.BindWithDesc("SPC p", send(ExportMsg{}), "Save as PDF")
	reg.BindWithDesc("SPC m", send(ToggleMenuMsg{}), "Menu")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for _, s := range content.Sections() {
		reg.BindWithDesc("SPC j "+strconv.Itoa(s.Number), send(JumpToSectionMsg{ID: s.ID}), s.Label)
	}
	reg.BindWithDesc("SPC j r", send(JumpToSectionMsg{ID: AnchorReferences}), "References")
	reg.BindWithDesc("SPC j t", send(JumpToSectionMsg{}), "Top")
	return reg
}

// selectionChanged logs and traces real tab changes.
func (a *AppModel) selectionChanged(from, to catalog.ID) {
	if from == to {
		return
	}
	a.log.Info("instrument selected", "from", from, "to", to)
	a.rec.Selection(context.Background(), string(from), string(to))
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.finish(nil)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
	case frameMsg:
		a.ticking = false
		now := time.Time(msg)
		a.Comparison.Advance(now)
		a.Funnel.Advance(now)
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	case tea.MouseMsg:
		if a.Overlays.Len() == 0 {
			_, cmd = a.Document.Update(msg)
		}
	case SelectInstrumentMsg:
		a.Comparison.Select(msg.ID)
	case JumpToSectionMsg:
		a.Focus.SetFocus(RegionDocument)
		if !a.Document.JumpTo(msg.ID) {
			a.log.Warn("unknown section", "id", msg.ID)
		}
	case FocusNextMsg:
		a.Focus.Next()
	case FocusPrevMsg:
		a.Focus.Prev()
	case ToggleMenuMsg:
		if a.Overlays.Len() > 0 {
			a.Overlays.Pop()
		} else {
			a.Overlays.Push(NewOverlay(NewMenuView(), "esc", "m"))
		}
	case DismissMenuMsg:
		a.Overlays.Pop()
	case ShareMsg:
		cmd = shareCmd(a.opts.Clipboard, a.opts.ShareURL)
	case ShareResultMsg:
		cmd = a.shareDone(msg)
	case ExportMsg:
		doc := report.Document{Catalog: a.opts.Catalog, Flow: a.opts.Flow}
		cmd = exportCmd(doc, a.opts.ExportDir, a.opts.ExportFormat, a.opts.Clock.Now())
	case ExportResultMsg:
		cmd = a.exportDone(msg)
	case toastExpiredMsg:
		a.Toast.Expire(msg)
	}
	return a, a.finish(cmd)
}

// handleKey routes a key: overlay first, then the keybind system, then the
// focused region.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	a.KeyHandler.Region = a.Focus.Current
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	if a.Focus.Is(RegionComparison) {
		_, cmd := a.Comparison.Update(msg)
		return cmd
	}
	_, cmd := a.Document.Update(msg)
	return cmd
}

func (a *AppModel) shareDone(msg ShareResultMsg) tea.Cmd {
	outcome := "clipboard"
	text := "Link copied to clipboard"
	if !msg.Copied {
		outcome = "fallback"
		text = "Share link: " + msg.URL
	}
	if msg.Err != nil {
		a.log.Warn("clipboard write failed", "err", msg.Err)
	} else {
		a.log.Info("link shared", "outcome", outcome)
	}
	a.rec.Share(context.Background(), outcome, msg.Err)
	return a.Toast.Show(text)
}

func (a *AppModel) exportDone(msg ExportResultMsg) tea.Cmd {
	a.rec.Export(context.Background(), string(a.opts.ExportFormat), msg.Path, msg.Err)
	if msg.Err != nil {
		a.log.Error("export failed", "err", msg.Err)
		return a.Toast.Show(fmt.Sprintf("Export failed: %v", msg.Err))
	}
	a.log.Info("report exported", "path", msg.Path)
	return a.Toast.Show("Saved report to " + msg.Path)
}

func (a *AppModel) resize(width, height int) {
	a.Width, a.Height = width, height
	a.Document.SetSize(width, a.bodyHeight())
}

func (a *AppModel) bodyHeight() int {
	return max(a.Height-navHeight-statusHeight, 1)
}

// finish re-lays out the page after any change, starts the funnel reveal
// once it is on screen, and keeps a frame tick running while anything
// animates.
func (a *AppModel) finish(cmd tea.Cmd) tea.Cmd {
	a.Comparison.Focused = a.Focus.Is(RegionComparison)
	if a.Width > 0 {
		a.Document.Rebuild()
		if !a.Funnel.Started() && a.Document.FunnelVisible() {
			a.Funnel.Start(a.opts.Clock.Now())
		}
	}
	if a.animating() && !a.ticking {
		a.ticking = true
		return tea.Batch(cmd, frameCmd(time.Second/time.Duration(a.opts.FPS)))
	}
	return cmd
}

func (a *AppModel) animating() bool {
	return a.Comparison.Animating() || a.Funnel.Animating()
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Width == 0 {
		return ""
	}
	bodyHeight := a.bodyHeight()
	nav := renderNav(a.Width, a.Document.Scrolled(), a.Document.ActiveSection())

	body := a.Document.View()
	if a.Overlays.Len() > 0 {
		body = a.Overlays.Render(a.Width, bodyHeight)
	}
	if help := RenderKeybindHelp(a.KeyHandler, a.Focus.Current); help != "" {
		h := lipgloss.Height(help)
		body = strings.Join(composeLayers(bodyHeight,
			newLayer(clipLines(body, bodyHeight), 0, 1),
			newLayer(help, bodyHeight-h, 1)), "\n")
	}

	keys := NewKeyMap(a.KeyHandler.Registry, nil, a.Focus.Current)
	status := renderStatus(a.Width, keys, &a.Toast)
	return nav + "\n" + clipLines(body, bodyHeight) + "\n" + status
}
