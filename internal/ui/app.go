package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quickhelp/internal/controller"
	"quickhelp/internal/render"
)

// placeholders shown in a results area that has never been rendered to.
var placeholders = map[controller.Tab]string{
	controller.TabSearch:  "Type a query and press enter to search your documentation.",
	controller.TabAsk:     "Ask a question and press enter for an answer with sources.",
	controller.TabCluster: "Loading saved clusters...",
	controller.TabIndex:   "Enter a document path and press enter to index it.",
}

// AppModel is the root model: header counters, tab bar, the active tab's
// form, its results, and the help footer.
type AppModel struct {
	Controller *controller.Controller
	State      *controller.ViewState
	KeyHandler *KeyHandler
	Panels     map[controller.Tab]*FormPanel
	Results    *ResultsView
	Overlay    *LoadingOverlay
	Logger     *zap.Logger

	ctx      context.Context
	snap     controller.Snapshot
	width    int
	height   int
	inflight int // user operations dispatched and not yet done
}

// Options configure NewAppModel.
type Options struct {
	Panels PanelOptions
	Logger *zap.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. The controller must write to state.
func NewAppModel(ctx context.Context, ctrl *controller.Controller, state *controller.ViewState, opts Options) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+left", func() tea.Msg { return CycleTabMsg{Delta: -1} }, "switch tab")
	reg.BindWithDesc("ctrl+right", func() tea.Msg { return CycleTabMsg{Delta: 1} }, "switch tab")
	for i, tab := range controller.Tabs() {
		reg.BindWithDesc(fmt.Sprintf("f%d", i+1), func() tea.Msg { return SwitchTabMsg{Tab: tab} }, "go to tab")
	}
	reg.BindWithDesc("ctrl+r", func() tea.Msg { return ReloadStatsMsg{} }, "reload stats")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("esc", tea.Quit, "quit")

	m := &AppModel{
		Controller: ctrl,
		State:      state,
		KeyHandler: NewKeyHandler(reg),
		Panels:     NewPanels(opts.Panels),
		Results:    NewResultsView(),
		Overlay:    NewLoadingOverlay(),
		Logger:     logger,
		ctx:        ctx,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.refresh()
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctx context.Context, m *AppModel) error {
	p := tea.NewProgram(m.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadStatsCmd(a.ctx, a.Controller),
		a.activePanel().Init(),
	}
	if a.snap.Tab == controller.TabCluster {
		cmds = append(cmds, loadClustersCmd(a.ctx, a.Controller))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.refresh()
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		switch msg.String() {
		case "pgup", "pgdown":
			a.Results.Update(msg)
			return a, nil
		}
		_, cmd := a.activePanel().Update(msg)
		return a, cmd
	case SubmitMsg:
		return a, tea.Batch(a.handleSubmit(msg), a.Overlay.Start())
	case SwitchTabMsg:
		return a, a.switchTab(msg.Tab)
	case CycleTabMsg:
		next := a.snap.Tab.Next()
		if msg.Delta < 0 {
			next = a.snap.Tab.Prev()
		}
		return a, a.switchTab(next)
	case ReloadStatsMsg:
		return a, loadStatsCmd(a.ctx, a.Controller)
	case OperationDoneMsg:
		if msg.User && a.inflight > 0 {
			a.inflight--
		}
		a.Logger.Debug("operation done",
			zap.String("operation", string(msg.Op)),
			zap.String("outcome", string(msg.Outcome)),
		)
		a.refresh()
		return a, nil
	case spinner.TickMsg:
		a.refresh()
		return a, a.Overlay.Tick(msg, a.snap.Loading || a.inflight > 0)
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	sep := separatorStyle.Render(strings.Repeat("─", a.width))
	header := appTitleStyle.Render("QuickHelp") + "  " +
		render.Terminal{Width: a.width}.Counters(a.snap.Counters, a.snap.HasCounters)
	top := strings.Join([]string{header, a.renderTabs(), sep, a.activePanel().View(), sep}, "\n")
	footer := sep + "\n" + RenderKeybindHelp(a.KeyHandler.Registry, a.width)

	h := remainingHeight(a.height, top, footer)
	a.Results.SetSize(a.width, h)
	body := a.Results.View()
	if a.snap.Loading {
		body = a.Overlay.Render(a.width, h)
	}
	return top + "\n" + body + "\n" + footer
}

// handleSubmit dispatches a form submission to the controller.
func (a *AppModel) handleSubmit(msg SubmitMsg) tea.Cmd {
	cmd := submitCmd(a.ctx, a.Controller, msg)
	if cmd == nil {
		return nil
	}
	a.inflight++
	a.Logger.Debug("submit", zap.Stringer("tab", msg.Tab))
	return cmd
}

// switchTab activates tab. Entering the cluster tab loads saved clusters.
func (a *AppModel) switchTab(tab controller.Tab) tea.Cmd {
	a.Controller.SetTab(tab)
	a.refresh()
	if tab == controller.TabCluster {
		return loadClustersCmd(a.ctx, a.Controller)
	}
	return nil
}

// refresh re-reads the view state and re-renders the active results.
func (a *AppModel) refresh() {
	a.snap = a.State.Snapshot()
	content := render.Terminal{Width: a.width}.Render(a.snap.Content(controller.TargetFor(a.snap.Tab)))
	if content == "" {
		content = render.Styles.Empty.Render(placeholders[a.snap.Tab])
	}
	a.Results.SetContent(content)
}

func (a *AppModel) activePanel() *FormPanel {
	if p, ok := a.Panels[a.snap.Tab]; ok {
		return p
	}
	return a.Panels[controller.TabSearch]
}

func (a *AppModel) renderTabs() string {
	parts := make([]string, 0, len(controller.Tabs()))
	for i, tab := range controller.Tabs() {
		label := fmt.Sprintf("F%d %s", i+1, tab.Title())
		if tab == a.snap.Tab {
			parts = append(parts, render.Styles.TabActive.Render(label))
		} else {
			parts = append(parts, render.Styles.Tab.Render(label))
		}
	}
	return strings.Join(parts, "")
}
