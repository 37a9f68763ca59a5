package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mathify/internal/quiz"
)

// Review layout constants
const (
	reviewChrome   = 9 // Rows used by title, summary, borders and help
	reviewMinTable = 3
)

// ReviewKeyMap defines the key bindings for the answer review.
type ReviewKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultReviewKeyMap returns default key bindings.
func DefaultReviewKeyMap() ReviewKeyMap {
	return ReviewKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "v"),
			key.WithHelp("esc", "back to results"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReviewModel lists every question of a finished run.
// It is embedded in Model rather than run as its own program.
type ReviewModel struct {
	records  []quiz.Record
	summary  quiz.Summary
	table    table.Model
	help     help.Model
	keys     ReviewKeyMap
	width    int
	height   int
	closed   bool
	quitting bool
}

// NewReviewModel creates a review of the given run.
func NewReviewModel(records []quiz.Record, summary quiz.Summary, width, height int) ReviewModel {
	h := help.New()
	h.Width = width

	m := ReviewModel{
		records: records,
		summary: summary,
		keys:    DefaultReviewKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the table sized to the current window.
func (m *ReviewModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: 14},
		{Title: "Yours", Width: 9},
		{Title: "Answer", Width: 9},
		{Title: "Result", Width: 8},
		{Title: "Time", Width: 6},
		{Title: "Pts", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(reviewMinTable, m.height-reviewChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the run history.
func (m *ReviewModel) updateTableRows() {
	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = reviewRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// reviewRow formats one history record.
func reviewRow(r quiz.Record) table.Row {
	given := r.Input
	result := "wrong"
	switch {
	case r.Outcome.TimedOut:
		given = "-"
		result = "time up"
	case r.Outcome.Correct:
		result = "correct"
	}

	return table.Row{
		strconv.Itoa(r.Index),
		r.Question.Text(),
		given,
		strconv.Itoa(r.Question.Answer),
		result,
		fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
		strconv.Itoa(r.Outcome.Points),
	}
}

// Update handles messages for the review.
func (m ReviewModel) Update(msg tea.Msg) (ReviewModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the review.
func (m ReviewModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("ANSWER REVIEW - "+m.summary.Difficulty.Title()), m.width))
	b.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	line := fmt.Sprintf("%d/%d correct  •  %d pts  •  %.1f%%",
		m.summary.Correct, m.summary.Total, m.summary.Score, m.summary.Percentage)
	b.WriteString(centerText(summaryStyle.Render(line), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ReviewModel) renderTableContent() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No questions answered.")
	}
	return m.table.View()
}

// Closed returns true once the player went back to the results.
func (m ReviewModel) Closed() bool {
	return m.closed
}

// IsQuitting returns true if the player wants to quit entirely.
func (m ReviewModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads a single line to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers every line of a multi-line block as one unit.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
