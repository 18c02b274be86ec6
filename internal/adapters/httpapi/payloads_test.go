package httpapi

import (
	"testing"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntriesAcceptsBareArray(t *testing.T) {
	entries, err := parseEntries([]byte(`[{"id":"celeste","name":"Celeste","moonlight_name":"Celeste (Steam)","sort_order":5}]`))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryID("celeste"), entries[0].ID)
	assert.Equal(t, "Celeste (Steam)", entries[0].LaunchTarget)
	assert.Equal(t, 5, entries[0].SortOrder)
	assert.True(t, entries[0].Enabled, "enabled defaults to true")
}

func TestParseEntriesAcceptsDataWrapper(t *testing.T) {
	entries, err := parseEntries([]byte(`{"data":[{"id":"hades"}]}`))
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "hades", entries[0].DisplayName, "name falls back to id")
	assert.Equal(t, "hades", entries[0].LaunchTarget, "target falls back to name")
}

func TestParseEntriesSortOrderFallsBackToChartRank(t *testing.T) {
	entries, err := parseEntries([]byte(`[{"id":"a","chart_rank":7},{"id":"b"}]`))
	require.NoError(t, err)

	assert.Equal(t, 7, entries[0].SortOrder)
	assert.Equal(t, 7, entries[0].ChartRank)
	assert.Equal(t, 100, entries[1].SortOrder, "absent order defaults to 100")
}

func TestParseEntriesRejectsMissingID(t *testing.T) {
	_, err := parseEntries([]byte(`[{"name":"nameless"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestParseEntriesRejectsUnknownShape(t *testing.T) {
	_, err := parseEntries([]byte(`"just a string"`))
	require.Error(t, err)

	_, err = parseEntries([]byte(`{"items":[]}`))
	require.Error(t, err)
}

func TestParsePresenceAcceptsBothCasings(t *testing.T) {
	hasUsers, err := parsePresence([]byte(`{"has_users": true}`))
	require.NoError(t, err)
	assert.True(t, hasUsers)

	hasUsers, err = parsePresence([]byte(`{"hasUsers": true}`))
	require.NoError(t, err)
	assert.True(t, hasUsers)

	hasUsers, err = parsePresence([]byte(`{}`))
	require.NoError(t, err)
	assert.False(t, hasUsers)
}

func TestParseProfileRequiresUserID(t *testing.T) {
	_, err := parseProfile([]byte(`{"username":"sam"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing user id")
}

func TestParseProfileAcceptsCamelCaseUserID(t *testing.T) {
	profile, err := parseProfile([]byte(`{"userId": 3, "username": "sam"}`))
	require.NoError(t, err)
	assert.Equal(t, 3, profile.UserID)
}

func TestParsePlaySessionDefaultsToProvisioning(t *testing.T) {
	session, err := parsePlaySession([]byte(`{"id": 7}`))
	require.NoError(t, err)

	assert.Equal(t, 7, session.ID)
	assert.Equal(t, domain.PlaySessionProvisioning, session.Status)
	assert.Empty(t, session.StreamURL)
}

func TestParsePlaySessionPassesUnknownStatusThrough(t *testing.T) {
	session, err := parsePlaySession([]byte(`{"id": 7, "status": "queued"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.PlaySessionStatus("queued"), session.Status)
}
