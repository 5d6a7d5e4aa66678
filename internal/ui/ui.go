package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"monthcal/internal/calendar"
	"monthcal/internal/config"
	"monthcal/internal/storage"
)

type mode int

const (
	modeGrid mode = iota
	modeDialog
)

type Model struct {
	store  storage.Store
	cfg    config.Config
	log    *zap.Logger
	nav    calendar.Navigator
	names  calendar.Names
	layout calendar.Layout
	day    int
	mode   mode
	input  textinput.Model
	dialog *dialogState
	status string
	width  int
}

func Run(store storage.Store, cfg config.Config, logger *zap.Logger) error {
	m := NewModel(store, cfg, logger, time.Now())
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// NewModel builds the calendar on the month containing now. Month and
// weekday names are resolved here once.
func NewModel(store storage.Store, cfg config.Config, logger *zap.Logger, now time.Time) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "New event"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:  store,
		cfg:    cfg,
		log:    logger,
		nav:    *calendar.NewNavigator(now, cfg.Legacy31Days),
		names:  calendar.ResolveNames(cfg.Locale),
		day:    now.Day(),
		mode:   modeGrid,
		input:  ti,
		status: fmt.Sprintf("Press %s to open a day, %s/%s to change month.", cfg.Keys.Open, cfg.Keys.PrevMonth, cfg.Keys.NextMonth),
	}
	m.rebuild()
	m.log.Info("calendar started",
		zap.String("locale", m.names.Tag.String()),
		zap.String("store", cfg.Store),
		zap.Bool("legacy_31_days", cfg.Legacy31Days))
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == modeDialog && m.dialog != nil {
			return m.updateDialog(msg.String(), msg)
		}
		return m.updateGrid(msg.String())
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = clamp(msg.Width-10, 10, 60)
	}
	return m, nil
}

func (m Model) updateGrid(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		m.log.Info("calendar closed")
		return m, tea.Quit
	case m.cfg.Keys.Left, "left":
		m.moveDay(-1)
	case m.cfg.Keys.Right, "right":
		m.moveDay(1)
	case m.cfg.Keys.Up, "up":
		m.moveDay(-7)
	case m.cfg.Keys.Down, "down":
		m.moveDay(7)
	case m.cfg.Keys.NextMonth:
		m.navigate(m.nav.NextMonth)
	case m.cfg.Keys.PrevMonth:
		m.navigate(m.nav.PrevMonth)
	case m.cfg.Keys.NextYear:
		m.navigate(m.nav.NextYear)
	case m.cfg.Keys.PrevYear:
		m.navigate(m.nav.PrevYear)
	case m.cfg.Keys.Today:
		m.nav.Today()
		m.rebuild()
		if today, ok := m.todayInView(); ok {
			m.day = today
		}
		m.status = "Today"
	case m.cfg.Keys.Open:
		return m.openDialog()
	}
	return m, nil
}

// moveDay shifts the cursor by delta days; moves that leave the grid are ignored.
func (m *Model) moveDay(delta int) {
	next := m.day + delta
	if next < 1 || next > m.layout.Days {
		return
	}
	m.day = next
}

func (m *Model) navigate(step func() bool) {
	if !step() {
		m.status = "No more years in range"
		return
	}
	m.rebuild()
	m.status = fmt.Sprintf("%s %d", m.names.Month(m.nav.Month()), m.nav.Year())
}

// rebuild replaces the whole layout for the selected month.
func (m *Model) rebuild() {
	m.layout = m.nav.Layout()
	m.day = clamp(m.day, 1, m.layout.Days)
	m.log.Debug("layout computed",
		zap.Int("year", m.layout.Year),
		zap.Int("month", int(m.layout.Month)),
		zap.Int("offset", m.layout.Offset),
		zap.Int("weeks", m.layout.Weeks))
}

func (m Model) todayInView() (int, bool) {
	for d := 1; d <= m.layout.Days; d++ {
		if m.nav.IsToday(d) {
			return d, true
		}
	}
	return 0, false
}

func (m Model) selectedKey() storage.DateKey {
	return m.keyFor(m.day)
}

func (m Model) keyFor(day int) storage.DateKey {
	return storage.NewDateKey(m.nav.Year(), m.nav.Month(), day)
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s/%s/%s move • %s open day • %s/%s month • %s/%s year • %s today • %s quit",
		k.Left, k.Down, k.Up, k.Right, k.Open, k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.Today, k.Quit)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	return clamp(cur, 0, n-1)
}
