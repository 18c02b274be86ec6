package domain

type OrgSummary struct {
	ID   int
	Slug string
	Name string
	Role string
}

// UserProfile is the identity returned by a successful login or
// registration. It lives in memory for the process lifetime; selected fields
// are persisted through LauncherConfig so a later start can skip login.
type UserProfile struct {
	UserID   int
	Username string
	Apps     []Entry
	Settings map[string]any
	Orgs     []OrgSummary
	Token    string
}

// PrimaryOrgID returns the first org's id, or zero when the user has none.
func (p UserProfile) PrimaryOrgID() int {
	if len(p.Orgs) == 0 {
		return 0
	}
	return p.Orgs[0].ID
}

type PlaySessionStatus string

const (
	PlaySessionProvisioning PlaySessionStatus = "provisioning"
	PlaySessionReady        PlaySessionStatus = "ready"
	PlaySessionEnded        PlaySessionStatus = "ended"
)

// PlaySession is a server-allocated record for one streamed play attempt.
// Unknown statuses pass through opaquely; the record is never persisted.
type PlaySession struct {
	ID        int
	Status    PlaySessionStatus
	StreamURL string
}

// LaunchRequest is handed to the process launcher. StreamURL is empty when
// no play session was allocated.
type LaunchRequest struct {
	Host      string
	Target    string
	StreamURL string
}

// LaunchReceipt reports what the launcher actually spawned.
type LaunchReceipt struct {
	Stub    bool
	Command string
}
