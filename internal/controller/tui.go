package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "ztar.dev/pkg/ztar/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	changeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// TUI implements UI for terminals. Sources are shown in a scrollable
// viewport; everything else is printed like SimpleUI with colored statuses.
type TUI struct {
	*SimpleUI
	programOptions []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		programOptions: []tea.ProgramOption{
			tea.WithOutput(cmd.OutOrStdout()),
			tea.WithAltScreen(),
		},
	}
}

// DisplayResults prints the summary table with colored statuses.
func (t *TUI) DisplayResults(ctx context.Context, results []m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.printf("\n%s", renderResultTable(results, styledStatus))

	return nil
}

func styledStatus(status m.Status) string {
	switch status {
	case m.Decompiled, m.Unchanged:
		return okStyle.Render(status.String())
	case m.Changed:
		return changeStyle.Render(status.String())
	case m.Failed:
		return failStyle.Render(status.String())
	}

	return status.String()
}

// DisplaySource opens the source in a viewport until the user quits.
func (t *TUI) DisplaySource(ctx context.Context, info m.MapInfo, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)

	program := tea.NewProgram(newSourceModel(info, source), options...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("source viewer: %w", err)
	}

	return nil
}

// sourceModel is the Bubble Tea model of the source viewer.
type sourceModel struct {
	title    string
	source   string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newSourceModel(info m.MapInfo, source string) sourceModel {
	return sourceModel{
		title:  fmt.Sprintf("%s/%s @ %s", info.Area, info.Name, info.Main),
		source: source,
	}
}

func (sm sourceModel) Init() tea.Cmd {
	return nil
}

func (sm sourceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			sm.quitting = true
			return sm, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(sm.headerView()) - lipgloss.Height(sm.footerView())
		if height < 1 {
			height = 1
		}

		if !sm.ready {
			sm.viewport = viewport.New(msg.Width, height)
			sm.viewport.SetContent(sm.source)
			sm.ready = true
		} else {
			sm.viewport.Width = msg.Width
			sm.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	sm.viewport, cmd = sm.viewport.Update(msg)

	return sm, cmd
}

func (sm sourceModel) View() string {
	if sm.quitting {
		return ""
	}

	if !sm.ready {
		return "loading..."
	}

	return sm.headerView() + "\n" + sm.viewport.View() + "\n" + sm.footerView()
}

func (sm sourceModel) headerView() string {
	return titleStyle.Render(sm.title)
}

func (sm sourceModel) footerView() string {
	lines := strings.Count(sm.source, "\n")
	percent := 100.0

	if sm.ready {
		percent = sm.viewport.ScrollPercent() * 100
	}

	return footerStyle.Render(fmt.Sprintf("%d lines  %3.f%%  q quit  j/k scroll", lines, percent))
}
