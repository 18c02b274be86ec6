package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// Login validates credentials locally, then authenticates against the
// service. Validation failures never reach the network; a success records
// the session, persists the identity, and forces Ready(online).
func (c *Coordinator) Login(ctx context.Context, username, password string) (domain.UserProfile, error) {
	if err := validateCredentials(username, password); err != nil {
		return domain.UserProfile{}, err
	}

	var profile domain.UserProfile
	err := c.worker.Do(ctx, func(ctx context.Context) error {
		var err error
		profile, err = c.api.Login(ctx, username, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		c.recordProfile(ctx, profile)
		return c.refreshAfterSignIn(ctx)
	})
	return profile, err
}

// Register creates an account and signs it in, with the same local
// validation and state transitions as Login.
func (c *Coordinator) Register(ctx context.Context, username, password string) (domain.UserProfile, error) {
	if err := validateCredentials(username, password); err != nil {
		return domain.UserProfile{}, err
	}

	var profile domain.UserProfile
	err := c.worker.Do(ctx, func(ctx context.Context) error {
		var err error
		profile, err = c.api.Register(ctx, username, password)
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}
		c.recordProfile(ctx, profile)
		return c.refreshAfterSignIn(ctx)
	})
	return profile, err
}

// Logout drops the recorded identity locally. There is no server-side
// session to end; the host setting survives.
func (c *Coordinator) Logout(ctx context.Context) error {
	return c.worker.Do(ctx, func(ctx context.Context) error {
		c.mu.Lock()
		c.profile = nil
		c.cfg = c.cfg.WithoutIdentity()
		c.phase = PhaseAwaitingAccount
		err := c.configStore.Save(ctx, c.cfg)
		c.mu.Unlock()

		c.api.SetAuthToken("")
		if err != nil {
			return fmt.Errorf("save launcher state: %w", err)
		}
		return nil
	})
}

// AccountsExist probes the service for any registered account.
func (c *Coordinator) AccountsExist(ctx context.Context) (bool, error) {
	var hasUsers bool
	err := c.worker.Do(ctx, func(ctx context.Context) error {
		var err error
		hasUsers, err = c.api.UserPresence(ctx)
		return err
	})
	return hasUsers, err
}

// MarkInstalled flips the install flag for an entry on the service.
func (c *Coordinator) MarkInstalled(ctx context.Context, id domain.EntryID, installed bool) error {
	return c.worker.Do(ctx, func(ctx context.Context) error {
		userID := c.currentUserID()
		if userID == 0 {
			return domain.ErrNoUser
		}
		if err := c.api.UpdateInstalled(ctx, userID, id, installed); err != nil {
			return fmt.Errorf("update install flag: %w", err)
		}
		return nil
	})
}

// PushSettings uploads an arbitrary settings blob for the signed-in user.
func (c *Coordinator) PushSettings(ctx context.Context, settings map[string]any) error {
	return c.worker.Do(ctx, func(ctx context.Context) error {
		userID := c.currentUserID()
		if userID == 0 {
			return domain.ErrNoUser
		}
		if err := c.api.UpdateSettings(ctx, userID, settings); err != nil {
			return fmt.Errorf("update settings: %w", err)
		}
		return nil
	})
}

// refreshAfterSignIn runs the catalog refresh a sign-in owes the Ready
// state. A failed refresh leaves the previous catalog visible and does not
// undo the sign-in.
func (c *Coordinator) refreshAfterSignIn(ctx context.Context) error {
	if _, err := c.refresh(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

func (c *Coordinator) currentUserID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.profile != nil {
		return c.profile.UserID
	}
	if c.cfg.HasKnownUser() {
		return c.cfg.UserID
	}
	return 0
}

func (c *Coordinator) recordProfile(ctx context.Context, profile domain.UserProfile) {
	c.mu.Lock()
	p := profile
	c.profile = &p
	c.phase = PhaseReady
	c.offline = false
	c.cfg.Username = profile.Username
	c.cfg.UserID = profile.UserID
	c.cfg.OrgID = profile.PrimaryOrgID()
	c.cfg.Token = profile.Token
	c.saveConfigLocked(ctx)
	c.mu.Unlock()

	c.api.SetAuthToken(profile.Token)
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	return nil
}
