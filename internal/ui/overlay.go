package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a view drawn over the page. While it is on top it receives
// every key; Dismiss closes it.
type Overlay struct {
	View    View
	Dismiss key.Binding
}

// NewOverlay wraps v, closed by the given keys.
func NewOverlay(v View, dismiss ...string) Overlay {
	return Overlay{View: v, Dismiss: key.NewBinding(key.WithKeys(dismiss...))}
}

// OverlayStack holds open overlays; the last one is on top.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o on top.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns how many overlays are open.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop sends msg to the top overlay, or closes it on its dismiss key.
// ok is false when no overlay is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	if k, isKey := msg.(tea.KeyMsg); isKey && key.Matches(k, top.Dismiss) {
		s.Pop()
		return nil, true
	}
	top.View, cmd = top.View.Update(msg)
	return cmd, true
}

// Render centres the top overlay in width×height.
func (s *OverlayStack) Render(width, height int) string {
	top, ok := s.Peek()
	if !ok {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View.View())
}
