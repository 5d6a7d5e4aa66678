package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"monthcal/internal/storage"
)

// dialogState is the open day dialog. events is the snapshot loaded on open;
// every add and delete is written to the store and to the snapshot at once,
// so closing never has anything to discard.
type dialogState struct {
	key    storage.DateKey
	events []string
	cursor int
}

func (d dialogState) title() string {
	return "Events of " + d.key.String()
}

func (d dialogState) selected() (string, bool) {
	if len(d.events) == 0 {
		return "", false
	}
	return d.events[clampCursor(d.cursor, len(d.events))], true
}

func (m Model) openDialog() (tea.Model, tea.Cmd) {
	key := m.selectedKey()
	events, err := m.store.List(key)
	if err != nil {
		m.status = fmt.Sprintf("load failed: %v", err)
		return m, nil
	}
	m.dialog = &dialogState{key: key, events: events}
	m.mode = modeDialog
	m.input.SetValue("")
	cmd := m.input.Focus()
	m.status = fmt.Sprintf("%s adds • %s deletes selected • ↑/↓ select • %s closes",
		m.cfg.Keys.Add, m.cfg.Keys.Delete, m.cfg.Keys.Close)
	m.log.Debug("dialog opened", zap.Stringer("date", key), zap.Int("events", len(events)))
	return m, cmd
}

func (m Model) updateDialog(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case m.cfg.Keys.Close, "esc":
		m.log.Debug("dialog closed", zap.Stringer("date", m.dialog.key))
		m.status = "Closed " + m.dialog.title()
		m.dialog = nil
		m.mode = modeGrid
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	case m.cfg.Keys.Add:
		return m.addEvent()
	case m.cfg.Keys.Delete:
		return m.deleteSelected()
	case "up", "down":
		d := *m.dialog
		if key == "up" {
			d.cursor = clampCursor(d.cursor-1, len(d.events))
		} else {
			d.cursor = clampCursor(d.cursor+1, len(d.events))
		}
		m.dialog = &d
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) addEvent() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	d := *m.dialog
	if err := m.store.Add(d.key, text); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	d.events = append(append([]string(nil), d.events...), text)
	d.cursor = len(d.events) - 1
	m.dialog = &d
	m.input.SetValue("")
	m.status = fmt.Sprintf("Added event to %s", d.key)
	m.log.Debug("event added", zap.Stringer("date", d.key), zap.Int("events", len(d.events)))
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	d := *m.dialog
	text, ok := d.selected()
	if !ok {
		return m, nil
	}
	if err := m.store.Remove(d.key, text); err != nil {
		m.status = fmt.Sprintf("delete failed: %v", err)
		return m, nil
	}
	// The store drops the first equal event, so the snapshot does the same.
	idx := 0
	for i, e := range d.events {
		if e == text {
			idx = i
			break
		}
	}
	events := make([]string, 0, len(d.events)-1)
	events = append(events, d.events[:idx]...)
	d.events = append(events, d.events[idx+1:]...)
	d.cursor = clampCursor(d.cursor, len(d.events))
	m.dialog = &d
	m.status = fmt.Sprintf("Deleted %q", text)
	m.log.Debug("event removed", zap.Stringer("date", d.key), zap.Int("events", len(d.events)))
	return m, nil
}
