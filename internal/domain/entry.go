package domain

// EntryID is the catalog-wide stable key of a launchable entry. The service
// uses the game slug as the id.
type EntryID string

type Entry struct {
	ID          EntryID
	DisplayName string
	// LaunchTarget is the platform identifier handed to the process
	// launcher (the Moonlight app name in the reference deployment).
	LaunchTarget string
	Enabled      bool
	SortOrder    int
	Owned        bool
	Installed    bool
	// GameID correlates with the service-side game identity. Zero means the
	// service never assigned one; such entries launch without a play session.
	GameID int

	ChartRank   int
	ChartDate   string
	Description string
	CoverURL    string
	SteamAppID  int
}

// Playable reports whether the entry can be streamed right now.
func (e Entry) Playable() bool {
	return e.Enabled && e.Owned && e.Installed
}

func (e Entry) HasGameID() bool {
	return e.GameID > 0
}

// WithOwnership returns a copy with updated entitlement bits. Entries are
// value objects; cached and live lists must never alias each other.
func (e Entry) WithOwnership(owned, installed bool) Entry {
	e.Owned = owned
	e.Installed = installed
	return e
}
