package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tstackhq/tstack-kit/internal/plan"
)

// ReviewResult holds the outcome of a plan review session
type ReviewResult struct {
	Approved bool
	Reason   string
}

// reviewKeyMap defines the keyboard shortcuts for the review session
type reviewKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Back    key.Binding
	Approve key.Binding
	Reject  key.Binding
	Quit    key.Binding
}

var reviewKeys = reviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "right", "l"),
		key.WithHelp("enter", "view details"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "left", "h"),
		key.WithHelp("esc", "back"),
	),
	Approve: key.NewBinding(
		key.WithKeys("a", "A"),
		key.WithHelp("a", "approve"),
	),
	Reject: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "reject"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// reviewModel is the BubbleTea model for plan review
type reviewModel struct {
	plan             *plan.GenerationPlan
	cursor           int
	selectedArtifact int
	viewMode         string // "list" or "detail"
	rejectionInput   string
	editingReason    bool
	result           *ReviewResult
	width            int
	height           int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true).
				PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2).
			MarginTop(1)

	approveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// Init initializes the model
func (m reviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editingReason {
			switch msg.String() {
			case "enter":
				m.editingReason = false
				m.result = &ReviewResult{
					Approved: false,
					Reason:   m.rejectionInput,
				}
				return m, tea.Quit
			case "esc":
				m.editingReason = false
				m.rejectionInput = ""
				return m, nil
			case "backspace":
				if len(m.rejectionInput) > 0 {
					m.rejectionInput = m.rejectionInput[:len(m.rejectionInput)-1]
				}
				return m, nil
			default:
				if len(msg.String()) == 1 {
					m.rejectionInput += msg.String()
				}
				return m, nil
			}
		}

		switch {
		case key.Matches(msg, reviewKeys.Quit):
			if m.result == nil {
				m.result = &ReviewResult{
					Approved: false,
					Reason:   "Review cancelled",
				}
			}
			return m, tea.Quit

		case key.Matches(msg, reviewKeys.Up):
			if m.viewMode == "list" && m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, reviewKeys.Down):
			if m.viewMode == "list" && m.cursor < len(m.plan.Artifacts)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, reviewKeys.Select):
			if m.viewMode == "list" {
				m.selectedArtifact = m.cursor
				m.viewMode = "detail"
			}
			return m, nil

		case key.Matches(msg, reviewKeys.Back):
			if m.viewMode == "detail" {
				m.viewMode = "list"
			}
			return m, nil

		case key.Matches(msg, reviewKeys.Approve):
			m.result = &ReviewResult{Approved: true}
			return m, tea.Quit

		case key.Matches(msg, reviewKeys.Reject):
			m.editingReason = true
			return m, nil
		}
	}

	return m, nil
}

// View renders the current state
func (m reviewModel) View() string {
	if m.result != nil {
		if m.result.Approved {
			return approveStyle.Render("\n✓ Plan Approved\n\n")
		}
		reason := m.result.Reason
		if reason == "" {
			reason = "No reason provided"
		}
		return rejectStyle.Render(fmt.Sprintf("\n✗ Plan Rejected\n  Reason: %s\n\n", reason))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("📋 Plan Review — " + m.plan.Entity))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("Auth: %s | Artifacts: %d", m.plan.Auth, len(m.plan.Artifacts))))
	b.WriteString("\n\n")

	if m.viewMode == "list" {
		for i, artifact := range m.plan.Artifacts {
			style := itemStyle
			cursor := "  "
			if i == m.cursor {
				style = selectedItemStyle
				cursor = "→ "
			}

			line := fmt.Sprintf("%s[%d] %-12s %s",
				cursor,
				i+1,
				artifact.Kind,
				artifact.Target,
			)
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	} else {
		artifact := m.plan.Artifacts[m.selectedArtifact]
		b.WriteString(headerStyle.Render(fmt.Sprintf("Artifact %d of %d", m.selectedArtifact+1, len(m.plan.Artifacts))))
		b.WriteString("\n\n")

		details := []struct {
			key   string
			value string
		}{
			{"Kind", artifact.Kind.String()},
			{"Target", artifact.Target},
			{"Entity", artifact.Binding.Names.UpperCamel},
			{"Table", artifact.Binding.Names.TableName},
			{"Hooks", fmt.Sprintf("%d", len(artifact.Binding.Hooks))},
			{"Dependencies", fmt.Sprintf("%d artifacts", len(artifact.DependsOn))},
		}

		for _, detail := range details {
			b.WriteString("  ")
			b.WriteString(detailKeyStyle.Render(fmt.Sprintf("%-15s:", detail.key)))
			b.WriteString(" ")
			b.WriteString(detailValueStyle.Render(detail.value))
			b.WriteString("\n")
		}

		if len(artifact.DependsOn) > 0 {
			b.WriteString("\n  ")
			b.WriteString(detailKeyStyle.Render("Depends On:"))
			b.WriteString("\n")
			for _, dep := range artifact.DependsOn {
				b.WriteString(fmt.Sprintf("    • %s\n", dep))
			}
		}
	}

	b.WriteString("\n")

	if m.editingReason {
		b.WriteString(rejectStyle.Render("✗ Rejection Reason:"))
		b.WriteString("\n  ")
		b.WriteString(m.rejectionInput)
		b.WriteString("_")
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter: submit | esc: cancel"))
	} else {
		if m.viewMode == "list" {
			b.WriteString(helpStyle.Render("↑/↓: navigate | enter: view details | a: approve | r: reject | q: quit"))
		} else {
			b.WriteString(helpStyle.Render("h/esc: back to list | a: approve | r: reject | q: quit"))
		}
	}

	return b.String()
}

// RunPlanReview launches an interactive TUI for reviewing a generation plan
func RunPlanReview(p *plan.GenerationPlan) (*ReviewResult, error) {
	if len(p.Artifacts) == 0 {
		// Nothing to review
		return &ReviewResult{Approved: true}, nil
	}

	model := reviewModel{
		plan:     p,
		cursor:   0,
		viewMode: "list",
	}

	program := tea.NewProgram(model)
	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running plan review UI: %w", err)
	}

	m, ok := finalModel.(reviewModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type: %T", finalModel)
	}

	if m.result != nil {
		return m.result, nil
	}

	return &ReviewResult{
		Approved: false,
		Reason:   "Unknown error",
	}, nil
}
