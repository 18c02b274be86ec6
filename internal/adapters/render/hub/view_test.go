package hub

import (
	"testing"

	"github.com/adupuis1/CouchSuite/internal/application"
	"github.com/adupuis1/CouchSuite/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refreshResult(c domain.Catalog, fromCache bool) application.CatalogResult {
	return application.CatalogResult{Catalog: c, FromCache: fromCache, Offline: fromCache}
}

func testModel(entries []domain.Entry) model {
	return model{
		styles:   newStyles(),
		entries:  entries,
		username: "kay",
		host:     "192.168.5.12",
	}
}

func TestRenderViewShowsTilesAndPlayabilityMarkers(t *testing.T) {
	m := testModel([]domain.Entry{
		{ID: "celeste", DisplayName: "Celeste", Enabled: true, Owned: true, Installed: true},
		{ID: "hades", DisplayName: "Hades", Enabled: true, Owned: true},
		{ID: "doom", DisplayName: "Doom", Enabled: true},
	})

	output := renderView(m)
	assert.Contains(t, output, "CouchSuite")
	assert.Contains(t, output, "signed in as kay")
	assert.Contains(t, output, "host 192.168.5.12")
	assert.Contains(t, output, "3 games")
	assert.Contains(t, output, "> ")
	assert.Contains(t, output, "Celeste")
	assert.Contains(t, output, "Hades")
	assert.Contains(t, output, "(not installed)")
	assert.Contains(t, output, "(not in library)")
	assert.NotContains(t, output, "[offline]")
}

func TestRenderViewShowsOfflineBadge(t *testing.T) {
	m := testModel([]domain.Entry{
		{ID: "celeste", DisplayName: "Celeste", Enabled: true, Owned: true, Installed: true},
	})
	m.offline = true
	m.status = "showing last known catalog"

	output := renderView(m)
	assert.Contains(t, output, "[offline]")
	assert.Contains(t, output, "showing last known catalog")
}

func TestRenderViewEmptyCatalog(t *testing.T) {
	m := testModel(nil)
	m.username = ""

	output := renderView(m)
	assert.Contains(t, output, "not signed in")
	assert.Contains(t, output, "No games yet. Press r to refresh.")
}

func TestUpdateKeyMovesCursorWithinBounds(t *testing.T) {
	m := testModel([]domain.Entry{
		{ID: "celeste", DisplayName: "Celeste", Enabled: true, Owned: true, Installed: true},
		{ID: "hades", DisplayName: "Hades", Enabled: true, Owned: true, Installed: true},
	})

	next, _ := m.updateKey(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	assert.Equal(t, 0, m.cursor)

	next, _ = m.updateKey(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.updateKey(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Equal(t, 1, m.cursor)
}

func TestUpdateKeyEnterOnLockedTileExplainsInstead(t *testing.T) {
	m := testModel([]domain.Entry{
		{ID: "hades", DisplayName: "Hades", Enabled: true, Owned: true},
	})

	next, cmd := m.updateKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	require.Nil(t, cmd, "a locked tile must not start a launch")
	assert.False(t, m.busy)
	assert.Contains(t, m.status, "not playable")
	assert.Contains(t, m.status, "not installed")
}

func TestRefreshDoneClampsCursor(t *testing.T) {
	m := testModel([]domain.Entry{
		{ID: "celeste", DisplayName: "Celeste", Enabled: true, Owned: true, Installed: true},
		{ID: "hades", DisplayName: "Hades", Enabled: true, Owned: true, Installed: true},
	})
	m.cursor = 1
	m.busy = true

	shrunk := domain.NewCatalog([]domain.Entry{
		{ID: "celeste", DisplayName: "Celeste", Enabled: true, Owned: true, Installed: true},
	})
	next, _ := m.Update(refreshDoneMsg{result: refreshResult(shrunk, false)})
	m = next.(model)

	assert.False(t, m.busy)
	assert.Equal(t, 0, m.cursor)
	require.Len(t, m.entries, 1)
}

func TestRefreshDoneFromCacheSetsStatus(t *testing.T) {
	m := testModel(nil)
	m.busy = true

	cached := domain.NewCatalog([]domain.Entry{
		{ID: "celeste", DisplayName: "Celeste", Enabled: true, Owned: true, Installed: true},
	})
	next, _ := m.Update(refreshDoneMsg{result: refreshResult(cached, true)})
	m = next.(model)

	assert.True(t, m.offline)
	assert.Equal(t, "showing last known catalog", m.status)
}
