// Package ui is the QuickHelp terminal interface, built on Bubble Tea.
//
// Core pieces:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - FormPanel: the inputs of one tab, with FocusManager rotating between them
//   - ResultsView: a scrollable viewport over the active tab's results
//   - LoadingOverlay: the spinner box shown while an operation is in flight
//   - KeybindRegistry / KeyHandler: global keys, rendered with bubbles/help
//
// Operations run as tea.Cmds that call the controller; the controller writes
// to a shared controller.ViewState which the model snapshots on redraw.
package ui
