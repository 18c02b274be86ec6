package application

import (
	"context"
	"errors"
	"testing"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRejectsBlankUsernameWithoutNetwork(t *testing.T) {
	f := newFixture(t)

	_, err := f.coord.Login(context.Background(), "   ", "hunter2")
	require.ErrorIs(t, err, domain.ErrValidation)
	f.api.AssertNotCalled(t, "Login")
}

func TestLoginRejectsBlankPasswordWithoutNetwork(t *testing.T) {
	f := newFixture(t)

	_, err := f.coord.Login(context.Background(), "kay", "")
	require.ErrorIs(t, err, domain.ErrValidation)
	f.api.AssertNotCalled(t, "Login")
}

func TestLoginSuccessRecordsSessionAndPersists(t *testing.T) {
	f := newFixture(t)
	profile := domain.UserProfile{
		UserID:   7,
		Username: "kay",
		Token:    "tok-abc",
		Orgs:     []domain.OrgSummary{{ID: 3, Role: "admin"}},
	}

	f.api.EXPECT().Login(mockAnyContext(), "kay", "hunter2").Return(profile, nil)
	f.store.EXPECT().Save(mockAnyContext(), domain.LauncherConfig{
		Username: "kay",
		UserID:   7,
		OrgID:    3,
		Token:    "tok-abc",
	}).Return(nil)
	f.api.EXPECT().SetAuthToken("tok-abc").Return()
	f.api.EXPECT().FetchCharts(mockAnyContext()).Return(nil, errors.New("charts unreachable"))
	f.cache.EXPECT().Read(mockAnyContext()).Return(nil, domain.ErrCacheMiss)

	got, err := f.coord.Login(context.Background(), "kay", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	state := f.coord.State()
	assert.Equal(t, PhaseReady, state.Phase)
	assert.False(t, state.Offline)
	assert.True(t, state.HasKnownUser)
	assert.Equal(t, "kay", state.Username)
}

func TestLoginRefreshesCatalogForNewSession(t *testing.T) {
	f := newFixture(t)
	profile := domain.UserProfile{
		UserID:   7,
		Username: "kay",
		Token:    "tok-abc",
		Orgs:     []domain.OrgSummary{{ID: 3, Role: "member"}},
	}
	payload := []byte(`[{"id":"celeste"}]`)
	entries := []domain.Entry{
		{ID: "celeste", DisplayName: "Celeste", LaunchTarget: "Celeste", Enabled: true, GameID: 11},
	}
	library := []domain.LibraryRecord{{Slug: "celeste", GameID: 11, InstallReady: true}}

	f.api.EXPECT().Login(mockAnyContext(), "kay", "hunter2").Return(profile, nil)
	f.store.EXPECT().Save(mockAnyContext(), domain.LauncherConfig{
		Username: "kay",
		UserID:   7,
		OrgID:    3,
		Token:    "tok-abc",
	}).Return(nil)
	f.api.EXPECT().SetAuthToken("tok-abc").Return()
	f.api.EXPECT().FetchCharts(mockAnyContext()).Return(payload, nil)
	f.api.EXPECT().ParseEntries(payload).Return(entries, nil)
	f.api.EXPECT().FetchLibrary(mockAnyContext(), 7, 3).Return(library, nil)
	f.cache.EXPECT().Save(mockAnyContext(), payload).Return(nil)

	_, err := f.coord.Login(context.Background(), "kay", "hunter2")
	require.NoError(t, err)

	// Entering Ready through a sign-in populates the catalog without a
	// separate refresh call.
	got := f.coord.Catalog().Entries()
	require.Len(t, got, 1)
	assert.True(t, got[0].Playable())
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	authErr := errors.New("status 401: invalid credentials")

	f.api.EXPECT().Login(mockAnyContext(), "kay", "wrong").Return(domain.UserProfile{}, authErr)

	_, err := f.coord.Login(context.Background(), "kay", "wrong")
	require.ErrorIs(t, err, authErr)

	state := f.coord.State()
	assert.Equal(t, PhaseBooting, state.Phase)
	assert.False(t, state.HasKnownUser)
}

func TestRegisterSuccessSignsIn(t *testing.T) {
	f := newFixture(t)
	profile := domain.UserProfile{
		UserID:   9,
		Username: "mika",
		Token:    "tok-new",
		Orgs:     []domain.OrgSummary{{ID: 3, Role: "member"}},
	}

	f.api.EXPECT().Register(mockAnyContext(), "mika", "hunter2").Return(profile, nil)
	f.store.EXPECT().Save(mockAnyContext(), domain.LauncherConfig{
		Username: "mika",
		UserID:   9,
		OrgID:    3,
		Token:    "tok-new",
	}).Return(nil)
	f.api.EXPECT().SetAuthToken("tok-new").Return()
	f.api.EXPECT().FetchCharts(mockAnyContext()).Return(nil, errors.New("charts unreachable"))
	f.cache.EXPECT().Read(mockAnyContext()).Return(nil, domain.ErrCacheMiss)

	got, err := f.coord.Register(context.Background(), "mika", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
	assert.Equal(t, PhaseReady, f.coord.State().Phase)
}

func TestLogoutClearsIdentityButKeepsHost(t *testing.T) {
	f := newFixture(t)
	f.coord.mu.Lock()
	f.coord.cfg = domain.LauncherConfig{
		Host:     "10.0.0.9",
		Username: "kay",
		UserID:   7,
		OrgID:    3,
		Token:    "tok-abc",
	}
	f.coord.profile = &domain.UserProfile{UserID: 7, Username: "kay"}
	f.coord.phase = PhaseReady
	f.coord.mu.Unlock()

	f.store.EXPECT().Save(mockAnyContext(), domain.LauncherConfig{Host: "10.0.0.9"}).Return(nil)
	f.api.EXPECT().SetAuthToken("").Return()

	require.NoError(t, f.coord.Logout(context.Background()))

	state := f.coord.State()
	assert.Equal(t, PhaseAwaitingAccount, state.Phase)
	assert.False(t, state.HasKnownUser)
	assert.Equal(t, "10.0.0.9", state.Host)
}

func TestAccountsExist(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().UserPresence(mockAnyContext()).Return(true, nil)

	hasUsers, err := f.coord.AccountsExist(context.Background())
	require.NoError(t, err)
	assert.True(t, hasUsers)
}

func TestMarkInstalledRequiresSignedInUser(t *testing.T) {
	f := newFixture(t)

	err := f.coord.MarkInstalled(context.Background(), "celeste", true)
	require.ErrorIs(t, err, domain.ErrNoUser)
	f.api.AssertNotCalled(t, "UpdateInstalled")
}

func TestMarkInstalledUpdatesService(t *testing.T) {
	f := newFixture(t)
	f.coord.mu.Lock()
	f.coord.profile = &domain.UserProfile{UserID: 7, Username: "kay"}
	f.coord.mu.Unlock()

	f.api.EXPECT().UpdateInstalled(mockAnyContext(), 7, domain.EntryID("celeste"), true).Return(nil)

	require.NoError(t, f.coord.MarkInstalled(context.Background(), "celeste", true))
}

func TestPushSettingsUploadsBlobForSignedInUser(t *testing.T) {
	f := newFixture(t)
	f.coord.mu.Lock()
	f.coord.profile = &domain.UserProfile{UserID: 7, Username: "kay"}
	f.coord.mu.Unlock()

	settings := map[string]any{"resolution": "1080p", "bitrate": 20000}
	f.api.EXPECT().UpdateSettings(mockAnyContext(), 7, settings).Return(nil)

	require.NoError(t, f.coord.PushSettings(context.Background(), settings))
}

func TestPushSettingsRequiresSignedInUser(t *testing.T) {
	f := newFixture(t)

	err := f.coord.PushSettings(context.Background(), map[string]any{"bitrate": 20000})
	require.ErrorIs(t, err, domain.ErrNoUser)
}
