package application

import (
	"context"
	"fmt"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// LaunchResult reports a completed launch.
type LaunchResult struct {
	Entry   domain.Entry
	Session *domain.PlaySession
	Receipt domain.LaunchReceipt
	Host    string
}

// Launch turns a tile selection into a platform spawn. Side effects run in
// strict order: optional play-session create, process spawn, best-effort
// config persist. A session-create failure aborts before the spawn; a spawn
// failure does not end an already-created session (the error names the
// session left running). No step is retried here; retries live in the
// HTTP layer under the session-create call.
func (c *Coordinator) Launch(ctx context.Context, id domain.EntryID) (LaunchResult, error) {
	var result LaunchResult
	err := c.worker.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = c.launch(ctx, id)
		return err
	})
	return result, err
}

func (c *Coordinator) launch(ctx context.Context, id domain.EntryID) (LaunchResult, error) {
	c.mu.Lock()
	entry, ok := c.catalog.Get(id)
	host := c.hostLocked()
	var userID, orgID int
	if c.profile != nil {
		userID = c.profile.UserID
		orgID = c.profile.PrimaryOrgID()
	}
	c.mu.Unlock()

	if !ok {
		return LaunchResult{}, fmt.Errorf("%q: %w", id, domain.ErrEntryNotFound)
	}
	if !entry.Playable() {
		return LaunchResult{}, fmt.Errorf("%q: %w", entry.DisplayName, domain.ErrNotPlayable)
	}

	var session *domain.PlaySession
	if userID > 0 && orgID > 0 && entry.HasGameID() {
		allocated, err := c.api.StartPlaySession(ctx, orgID, userID, entry.GameID)
		if err != nil {
			return LaunchResult{}, fmt.Errorf("%w: %w", domain.ErrSessionAllocation, err)
		}
		session = &allocated
	}

	req := domain.LaunchRequest{Host: host, Target: entry.LaunchTarget}
	if session != nil {
		req.StreamURL = session.StreamURL
	}

	receipt, err := c.launcher.Launch(ctx, req)
	if err != nil {
		if session != nil {
			return LaunchResult{}, fmt.Errorf("%w (play session %d left running): %w", domain.ErrLaunchFailed, session.ID, err)
		}
		return LaunchResult{}, fmt.Errorf("%w: %w", domain.ErrLaunchFailed, err)
	}

	c.mu.Lock()
	c.cfg.Host = host
	if c.profile != nil {
		c.cfg.UserID = c.profile.UserID
		c.cfg.Username = c.profile.Username
	}
	c.saveConfigLocked(ctx)
	c.mu.Unlock()

	return LaunchResult{Entry: entry, Session: session, Receipt: receipt, Host: host}, nil
}
