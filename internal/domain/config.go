package domain

// LauncherConfig is the locally persisted launcher state. It is loaded once
// at startup and written back after every mutation (login, logout, launch).
type LauncherConfig struct {
	Host     string
	Username string
	UserID   int
	OrgID    int
	Token    string
}

// HasKnownUser reports whether a prior session is usable for auto sign-in.
func (c LauncherConfig) HasKnownUser() bool {
	return c.UserID > 0 && c.Username != ""
}

// WithoutIdentity returns a copy with the recorded identity cleared. The
// host survives a logout.
func (c LauncherConfig) WithoutIdentity() LauncherConfig {
	c.Username = ""
	c.UserID = 0
	c.OrgID = 0
	c.Token = ""
	return c
}
