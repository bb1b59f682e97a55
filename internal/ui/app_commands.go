package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"quickhelp/internal/controller"
)

// operationCmd runs fn on the command goroutine and reports its outcome.
func operationCmd(op controller.Operation, user bool, fn func() controller.Outcome) tea.Cmd {
	return func() tea.Msg {
		return OperationDoneMsg{Op: op, Outcome: fn(), User: user}
	}
}

func loadStatsCmd(ctx context.Context, c *controller.Controller) tea.Cmd {
	return operationCmd(controller.OpStats, false, func() controller.Outcome {
		return c.LoadStats(ctx)
	})
}

func loadClustersCmd(ctx context.Context, c *controller.Controller) tea.Cmd {
	return operationCmd(controller.OpClusters, false, func() controller.Outcome {
		return c.LoadClusters(ctx)
	})
}

// submitCmd maps a form submission to its controller operation.
func submitCmd(ctx context.Context, c *controller.Controller, msg SubmitMsg) tea.Cmd {
	v := msg.Values
	switch msg.Tab {
	case controller.TabSearch:
		return operationCmd(controller.OpSearch, true, func() controller.Outcome {
			return c.Search(ctx, v[FieldQuery], v[FieldMode])
		})
	case controller.TabAsk:
		return operationCmd(controller.OpAsk, true, func() controller.Outcome {
			return c.Ask(ctx, v[FieldQuestion])
		})
	case controller.TabCluster:
		return operationCmd(controller.OpCluster, true, func() controller.Outcome {
			return c.RunClustering(ctx, v[FieldAlgorithm])
		})
	case controller.TabIndex:
		return operationCmd(controller.OpIndex, true, func() controller.Outcome {
			return c.Index(ctx, v[FieldPath])
		})
	}
	return nil
}
