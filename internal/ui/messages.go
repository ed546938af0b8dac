package ui

import (
	"time"

	"sudreview/internal/catalog"
)

// frameMsg advances every running animation to its timestamp.
type frameMsg time.Time

// SelectInstrumentMsg makes an instrument the active comparison tab.
type SelectInstrumentMsg struct {
	ID catalog.ID
}

// JumpToSectionMsg scrolls the document to a section anchor. An empty ID
// scrolls to the top.
type JumpToSectionMsg struct {
	ID string
}

// FocusNextMsg rotates focus to the next region (Tab).
type FocusNextMsg struct{}

// FocusPrevMsg rotates focus to the previous region (shift+Tab).
type FocusPrevMsg struct{}

// ToggleMenuMsg opens the menu overlay, or closes it if open.
type ToggleMenuMsg struct{}

// DismissMenuMsg closes the menu overlay.
type DismissMenuMsg struct{}

// ShareMsg copies the share link (SPC s or the menu).
type ShareMsg struct{}

// ShareResultMsg reports the outcome of a share. Copied is false when the
// clipboard was unavailable and the link is shown instead.
type ShareResultMsg struct {
	URL    string
	Copied bool
	Err    error
}

// ExportMsg writes the print document (SPC p or the menu).
type ExportMsg struct{}

// ExportResultMsg reports where the print document was written.
type ExportResultMsg struct {
	Path string
	Err  error
}

// toastExpiredMsg hides the toast if it is still the one with seq.
type toastExpiredMsg struct {
	seq int
}
