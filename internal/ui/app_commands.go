package ui

import (
	"time"

	"sudreview/internal/report"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
	// Unsupported reports that no clipboard utility is available.
	Unsupported() bool
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }
func (systemClipboard) Unsupported() bool          { return clipboard.Unsupported }

// SystemClipboard returns the clipboard backed by xclip/xsel/pbcopy/etc.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

// shareCmd copies url to the clipboard. Without a usable clipboard the
// result carries Copied=false and the link is shown instead; that is not
// an error.
func shareCmd(cb Clipboard, url string) tea.Cmd {
	return func() tea.Msg {
		if cb == nil || cb.Unsupported() {
			return ShareResultMsg{URL: url}
		}
		if err := cb.WriteAll(url); err != nil {
			return ShareResultMsg{URL: url, Err: err}
		}
		return ShareResultMsg{URL: url, Copied: true}
	}
}

// exportCmd writes the print document into dir.
func exportCmd(doc report.Document, dir string, format report.Format, at time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := doc.WriteFile(dir, format, at)
		return ExportResultMsg{Path: path, Err: err}
	}
}

// frameCmd schedules the next animation frame.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
