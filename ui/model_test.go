package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devicecard/sysinfo"
)

func newTestModel(t *testing.T) (*Model, *sysinfo.Store) {
	t.Helper()

	authority, err := sysinfo.NewPolicyAuthority(sysinfo.PolicyGranted, nil, nil)
	require.NoError(t, err)

	agg := sysinfo.NewAggregator(zerolog.Nop(), sysinfo.Providers{
		Permissions: authority,
		Location:    &sysinfo.FixedLocator{Coordinate: sysinfo.Coordinate{Latitude: 48.8584, Longitude: 2.2945}},
	})

	store := sysinfo.NewStore()
	return NewModel(context.Background(), zerolog.Nop(), agg, store, NewTheme(SchemeDark), DefaultCardOptions()), store
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelShowsPlaceholdersBeforeRecord(t *testing.T) {
	m, store := newTestModel(t)

	view := ansiRegex.ReplaceAllString(m.View(), "")

	assert.Contains(t, view, statusGathering)
	assert.Contains(t, view, sysinfo.Placeholder)
	assert.False(t, store.Committed())
}

func TestModelCommitsRecordOnce(t *testing.T) {
	m, store := newTestModel(t)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, recordMsg{}, msg)

	_, _ = m.Update(msg)

	require.True(t, store.Committed())
	view := ansiRegex.ReplaceAllString(m.View(), "")
	assert.Contains(t, view, "48.858400, 2.294500")
	assert.NotContains(t, view, statusGathering)

	_, _ = m.Update(recordMsg{record: sysinfo.Record{}})
	assert.Equal(t, "48.858400, 2.294500", sysinfo.FormatCoordinate(store.Snapshot().Coordinate))
}

func TestModelQuitClosesStore(t *testing.T) {
	for _, key := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, store := newTestModel(t)

		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, store.Closed())

		_, _ = m.Update(recordMsg{record: sysinfo.Record{OSName: strPtr("Linux")}})
		assert.False(t, store.Committed(), "late record must be dropped")
	}
}

func TestModelCopy(t *testing.T) {
	m, _ := newTestModel(t)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	_, _ = m.Update(keyMsg("c"))
	assert.Contains(t, copied, "Location: Not available")
	assert.Contains(t, m.View(), statusCopied)

	m.copyText = func(string) error { return errors.New("no clipboard") }
	_, _ = m.Update(keyMsg("c"))
	assert.Contains(t, m.View(), statusCopyFail)
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.True(t, m.ready)
	assert.Equal(t, 8, m.viewport.Height)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 1})
	assert.Equal(t, 60, m.viewport.Width)
	assert.Equal(t, 1, m.viewport.Height)
}
