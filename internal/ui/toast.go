package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastDuration is how long a toast stays up.
const ToastDuration = 3 * time.Second

// Toast is a transient status message. Each Show supersedes the previous
// toast; only the newest toast's timer hides it.
type Toast struct {
	Text string
	seq  int
}

// Show displays text and returns the command that expires it.
func (t *Toast) Show(text string) tea.Cmd {
	t.seq++
	t.Text = text
	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Expire hides the toast if msg belongs to the one showing.
func (t *Toast) Expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.Text = ""
	}
}

// Visible reports whether a toast is showing.
func (t *Toast) Visible() bool {
	return t.Text != ""
}

// View renders the toast, or "" when hidden.
func (t *Toast) View() string {
	if !t.Visible() {
		return ""
	}
	return Styles.Toast.Render(t.Text)
}
