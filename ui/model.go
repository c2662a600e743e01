package ui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"devicecard/sysinfo"
)

const (
	footerHeight = 2

	statusGathering = "Gathering device info..."
	statusCopied    = "Copied to clipboard!"
	statusCopyFail  = "Failed to copy to clipboard"
	helpText        = "↑/↓ scroll • c copy • q quit"
)

// recordMsg carries the aggregated record back to the event loop.
type recordMsg struct {
	record sysinfo.Record
}

// Model is the interactive device info screen. It starts the aggregation
// once when mounted and re-renders from the Store when the record lands.
type Model struct {
	ctx      context.Context
	log      zerolog.Logger
	agg      *sysinfo.Aggregator
	store    *sysinfo.Store
	theme    Theme
	opts     CardOptions
	viewport viewport.Model
	ready    bool
	status   string

	copyText func(string) error
}

// NewModel creates the screen. The store must be fresh; it is closed when
// the screen quits so a record arriving afterwards is dropped.
func NewModel(ctx context.Context, log zerolog.Logger, agg *sysinfo.Aggregator, store *sysinfo.Store, theme Theme, opts CardOptions) *Model {
	return &Model{
		ctx:      ctx,
		log:      log,
		agg:      agg,
		store:    store,
		theme:    theme,
		opts:     opts,
		status:   statusGathering,
		copyText: clipboard.WriteAll,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.collect
}

func (m *Model) collect() tea.Msg {
	return recordMsg{record: m.agg.Collect(m.ctx)}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordMsg:
		return m.handleRecord(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	return m, cmd
}

func (m *Model) handleRecord(msg recordMsg) (tea.Model, tea.Cmd) {
	if !m.store.Commit(msg.record) {
		m.log.Debug().Str("mount_id", m.store.ID()).Msg("late device record dropped")
		return m, nil
	}

	m.status = ""
	m.refresh()

	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	height := max(msg.Height-footerHeight, 1)

	if !m.ready {
		m.viewport = viewport.New(msg.Width, height)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}

	m.refresh()

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m.quit()
	case "c":
		if err := m.copyText(RenderPlain(m.store.Snapshot())); err != nil {
			m.log.Warn().Err(err).Msg("clipboard write failed")
			m.status = statusCopyFail
		} else {
			m.status = statusCopied
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	return m, cmd
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.store.Close()
	return m, tea.Quit
}

func (m *Model) refresh() {
	if m.ready {
		m.viewport.SetContent(m.card())
	}
}

func (m *Model) card() string {
	return RenderCard(m.store.Snapshot(), m.theme, m.opts)
}

func (m *Model) View() string {
	body := m.card()
	if m.ready {
		body = m.viewport.View()
	}

	footer := m.theme.Help.Render(helpText)
	if m.status != "" {
		footer = m.theme.Help.Render(m.status + "  " + helpText)
	}

	return body + "\n" + footer
}
