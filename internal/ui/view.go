package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const cellWidth = 6

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Width(cellWidth)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth)

	cursorStyle = cellStyle.
			Reverse(true)

	todayStyle = cellStyle.
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	invalidStyle = cellStyle.
			Foreground(lipgloss.Color("#6C757D"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", m.names.Month(m.nav.Month()), m.nav.Year())))
	b.WriteString("\n")

	if m.dialog != nil {
		b.WriteString(m.renderDialog())
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	if m.dialog == nil {
		b.WriteString(dimStyle.Render(renderHelp(m.cfg.Keys)))
	}
	return b.String()
}

func (m Model) renderGrid() string {
	var b strings.Builder
	for wd := 0; wd < 7; wd++ {
		b.WriteString(headerStyle.Render(m.names.ShortWeekday(wd)))
	}
	b.WriteString("\n")

	for row := 1; row <= m.layout.Weeks; row++ {
		for col := 0; col < 7; col++ {
			cell, ok := m.layout.CellAt(row, col)
			if !ok {
				b.WriteString(cellStyle.Render(""))
				continue
			}
			b.WriteString(m.renderCell(cell.Day))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderCell shows the day number followed by a marker when it has events.
func (m Model) renderCell(day int) string {
	label := fmt.Sprintf("%2d", day)
	key := m.keyFor(day)
	n, err := m.store.Count(key)
	if err != nil {
		m.log.Warn("count events failed", zap.Stringer("date", key), zap.Error(err))
	} else if n > 0 {
		label += "•"
	}

	switch {
	case day == m.day:
		return cursorStyle.Render(label)
	case !m.layout.Valid(day):
		return invalidStyle.Render(label)
	case m.nav.IsToday(day):
		return todayStyle.Render(label)
	default:
		return cellStyle.Render(label)
	}
}

func (m Model) renderDialog() string {
	d := m.dialog
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(d.title()))
	b.WriteString("\n\nEvents:\n")
	if len(d.events) == 0 {
		b.WriteString(dimStyle.Render("(none)"))
		b.WriteString("\n")
	}
	for i, e := range d.events {
		cursor := " "
		if i == d.cursor {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, e))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("[%s] Add  [%s] Delete Selected  [%s] Close",
		m.cfg.Keys.Add, m.cfg.Keys.Delete, m.cfg.Keys.Close)))
	return dialogStyle.Render(b.String())
}
