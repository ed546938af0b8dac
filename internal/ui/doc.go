// Package ui is the Bubble Tea front end of the review.
//
// Core abstractions:
//   - View: a region with its own model, update and view (Elm-style)
//   - Region / FocusRing: which region receives keys, rotated with Tab
//   - KeybindRegistry / KeyHandler: single keys plus SPC-led sequences
//   - OverlayStack: the menu and other popups, topmost receives input first
//   - ComparisonView: grouped instrument tabs over a keyed presence transition
//   - FunnelView: the study-selection funnel and its staged reveal
//   - DocumentView: the scrollable page that hosts both live components
//
// Animation time comes from frame messages; AppModel keeps a frame tick
// running only while something is in flight.
package ui
