package ui

import "quickhelp/internal/controller"

// SubmitMsg is sent when the user presses enter on a tab's form.
type SubmitMsg struct {
	Tab    controller.Tab
	Values map[string]string // field ID -> value
}

// SwitchTabMsg activates a specific tab (f1..f4).
type SwitchTabMsg struct {
	Tab controller.Tab
}

// CycleTabMsg moves to the next (+1) or previous (-1) tab.
type CycleTabMsg struct {
	Delta int
}

// ReloadStatsMsg refreshes the header counters (ctrl+r).
type ReloadStatsMsg struct{}

// OperationDoneMsg is sent when a controller operation returns. The view
// state already holds its result; the model only needs to redraw.
type OperationDoneMsg struct {
	Op      controller.Operation
	Outcome controller.Outcome
	// User is true for operations that hold the loading overlay.
	User bool
}
