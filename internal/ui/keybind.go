package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence. A nil cmd marks a help-only entry
// for a key some view handles itself.
type binding struct {
	cmd     tea.Cmd
	desc    string
	regions []Region // empty: every region
}

func (b binding) in(region Region) bool {
	return len(b.regions) == 0 || slices.Contains(b.regions, region)
}

// KeybindRegistry maps key sequences to commands. Sequences use leader
// notation: "SPC j 2" is space, then j, then 2. Plain keys are written the
// way tea.KeyMsg.String() reports them ("t", "tab", "ctrl+c").
type KeybindRegistry struct {
	bindings map[string]binding
	order    []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq with no help text.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForRegion(seq, cmd, "", nil)
}

// BindWithDesc registers seq in every region.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForRegion(seq, cmd, desc, nil)
}

// BindWithDescForRegion registers seq for the given regions only. Rebinding
// a sequence replaces it but keeps its place in help.
func (r *KeybindRegistry) BindWithDescForRegion(seq string, cmd tea.Cmd, desc string, regions []Region) {
	n := normalizeSeq(seq)
	if _, ok := r.bindings[n]; !ok {
		r.order = append(r.order, n)
	}
	r.bindings[n] = binding{cmd: cmd, desc: desc, regions: regions}
}

// Describe documents a key that a view handles itself. It shows in help for
// regions but the registry never dispatches it.
func (r *KeybindRegistry) Describe(seq, desc string, regions ...Region) {
	r.BindWithDescForRegion(seq, nil, desc, regions)
}

// Lookup returns the command for seq in any region.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// LookupIn returns the command for seq if it applies in region.
func (r *KeybindRegistry) LookupIn(seq string, region Region) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.in(region) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a dispatchable binding continues past seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for s, b := range r.bindings {
		if b.cmd != nil && strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Hints returns every dispatchable sequence with its description, or the
// sequence itself when it has none.
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string, len(r.bindings))
	for s, b := range r.bindings {
		if b.cmd == nil {
			continue
		}
		out[s] = b.label(s)
	}
	return out
}

func (b binding) label(seq string) string {
	if b.desc != "" {
		return b.desc
	}
	return seq
}

// submenuLabels name leader keys that open a further level.
var submenuLabels = map[string]string{
	"j": "Jump",
}

// LeaderHints returns the next keys after currentSeq ("" means just after
// SPC) that apply in region. Keys opening a submenu get its label.
func (r *KeybindRegistry) LeaderHints(currentSeq string, region Region) map[string]string {
	base := "SPC"
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	out := make(map[string]string)
	for s, b := range r.bindings {
		rest, ok := strings.CutPrefix(s, base+" ")
		if !ok || b.cmd == nil || !b.in(region) {
			continue
		}
		next, _, deeper := strings.Cut(rest, " ")
		switch {
		case deeper || r.HasPrefix(base+" "+next):
			if l, ok := submenuLabels[next]; ok {
				out[next] = l
			} else {
				out[next] = next + "…"
			}
		default:
			out[next] = b.label(s)
		}
	}
	return out
}

// DirectHelp returns the described non-leader keys for region in
// registration order.
func (r *KeybindRegistry) DirectHelp(region Region) []key.Binding {
	var out []key.Binding
	for _, s := range r.order {
		b := r.bindings[s]
		if b.desc == "" || strings.HasPrefix(s, "SPC") || !b.in(region) {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(s), key.WithHelp(s, b.desc)))
	}
	return out
}

// normalizeSeq writes space as SPC and collapses runs of whitespace.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart maps one tea key string to sequence notation.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler tracks the pending leader sequence and dispatches complete
// sequences through the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string // as tea.KeyMsg.String() reports it
	LeaderSeq     string
	LeaderWaiting bool
	Buffer        []string
	Region        Region // set by the app before Handle
}

// NewKeyHandler returns a handler with space as the leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle feeds one key into the handler. consumed means the key belongs to
// the keybind system and must not reach a view.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()
	switch {
	case s == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil

	case s == h.LeaderKey:
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil

	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupIn(seq, h.Region); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		// unknown leader keys are swallowed
		return true, nil
	}

	if c := h.Registry.LookupIn(keyToSeqPart(s), h.Region); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Pending returns the leader sequence typed so far, or "".
func (h *KeyHandler) Pending() string {
	return strings.Join(h.Buffer, " ")
}

// KeyMap adapts the registry to help.KeyMap for the status line: the direct
// keys of the focused region, or the leader's next keys while one is pending.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	region     Region
}

// NewKeyMap returns the help.KeyMap for region. keyHandler may be nil.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, region Region) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, region: region}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	switch {
	case km.registry == nil:
		return nil
	case km.keyHandler != nil && km.keyHandler.LeaderWaiting:
		return leaderBindings(km.registry.LeaderHints(km.keyHandler.Pending(), km.region))
	default:
		return km.registry.DirectHelp(km.region)
	}
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}

// leaderBindings turns hints into bindings sorted by key, ending with esc.
func leaderBindings(hints map[string]string) []key.Binding {
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}
