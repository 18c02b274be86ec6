// Package application holds the launch coordinator: the state machine
// between the presentation layer and the catalog/account service.
package application

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/adupuis1/CouchSuite/internal/ports"
)

type Phase string

const (
	PhaseBooting         Phase = "booting"
	PhaseAwaitingAccount Phase = "awaiting_account"
	PhaseReady           Phase = "ready"
)

// Coordinator owns the boot → account-resolution → catalog-ready lifecycle.
// All I/O goes through a single background worker; visible state is guarded
// by mu and refresh results by a monotonically increasing token.
type Coordinator struct {
	api         ports.CatalogService
	cache       ports.CatalogCache
	configStore ports.ConfigStore
	launcher    ports.ProcessLauncher
	probe       ports.ControllerProbe
	clock       ports.Clock
	worker      *worker

	defaultHost string

	mu         sync.Mutex
	phase      Phase
	offline    bool
	cfg        domain.LauncherConfig
	profile    *domain.UserProfile
	catalog    domain.Catalog
	appliedSeq uint64

	refreshSeq atomic.Uint64
}

type Deps struct {
	API         ports.CatalogService
	Cache       ports.CatalogCache
	ConfigStore ports.ConfigStore
	Launcher    ports.ProcessLauncher
	Probe       ports.ControllerProbe
	Clock       ports.Clock
	// DefaultHost is used until the persisted config carries a host.
	DefaultHost string
}

func NewCoordinator(deps Deps) *Coordinator {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Coordinator{
		api:         deps.API,
		cache:       deps.Cache,
		configStore: deps.ConfigStore,
		launcher:    deps.Launcher,
		probe:       deps.Probe,
		clock:       clock,
		worker:      newWorker(),
		defaultHost: deps.DefaultHost,
		phase:       PhaseBooting,
	}
}

func (c *Coordinator) Close() {
	c.worker.Close()
}

// State is a snapshot of the visible coordinator state.
type State struct {
	Phase        Phase
	Offline      bool
	HasKnownUser bool
	Username     string
	Host         string
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Phase:        c.phase,
		Offline:      c.offline,
		HasKnownUser: c.cfg.HasKnownUser(),
		Username:     c.cfg.Username,
		Host:         c.hostLocked(),
	}
}

// Catalog returns the most recently applied catalog.
func (c *Coordinator) Catalog() domain.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog
}

// BootResult reports what startup found.
type BootResult struct {
	Phase            Phase
	HasKnownUser     bool
	ServiceReachable bool
	AccountsExist    bool
	Controller       domain.ControllerInfo
	// Catalog is set when boot auto-advanced to Ready and ran the initial
	// refresh.
	Catalog *CatalogResult
}

// Boot loads the persisted config and probes the service concurrently. A
// probe failure is an offline assumption, never a hard error. When a prior
// session is usable the machine advances straight to Ready and runs the
// initial catalog refresh.
func (c *Coordinator) Boot(ctx context.Context) (BootResult, error) {
	var result BootResult
	err := c.worker.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = c.boot(ctx)
		return err
	})
	return result, err
}

func (c *Coordinator) boot(ctx context.Context) (BootResult, error) {
	cfg, err := c.configStore.Load(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return BootResult{}, ctx.Err()
		}
		cfg = domain.LauncherConfig{}
	}

	// The persisted host drives every service call from the first probe
	// on, not just the stream target.
	if cfg.Host != "" {
		c.api.SetBaseURL(cfg.Host)
	}
	if cfg.Token != "" {
		c.api.SetAuthToken(cfg.Token)
	}

	type probeOutcome struct {
		hasUsers  bool
		reachable bool
	}

	probeCh := make(chan probeOutcome, 1)
	controllerCh := make(chan domain.ControllerInfo, 1)

	go func() {
		hasUsers, err := c.api.UserPresence(ctx)
		probeCh <- probeOutcome{hasUsers: hasUsers, reachable: err == nil}
	}()
	go func() {
		if c.probe == nil {
			controllerCh <- domain.ControllerInfo{}
			return
		}
		controllerCh <- c.probe.Detect(ctx)
	}()

	probed := <-probeCh
	controller := <-controllerCh
	if ctx.Err() != nil {
		return BootResult{}, ctx.Err()
	}

	c.mu.Lock()
	c.cfg = cfg
	c.offline = !probed.reachable
	c.phase = PhaseAwaitingAccount
	if cfg.HasKnownUser() {
		c.phase = PhaseReady
		c.profile = profileFromConfig(cfg)
	}
	phase := c.phase
	c.mu.Unlock()

	result := BootResult{
		Phase:            phase,
		HasKnownUser:     cfg.HasKnownUser(),
		ServiceReachable: probed.reachable,
		AccountsExist:    probed.hasUsers,
		Controller:       controller,
	}

	if phase == PhaseReady {
		refreshed, err := c.refresh(ctx)
		if err == nil {
			result.Catalog = &refreshed
		} else if ctx.Err() != nil {
			return BootResult{}, ctx.Err()
		}
		// A failed initial refresh leaves the hub empty with a retry
		// action; boot itself still succeeds.
	}

	return result, nil
}

// profileFromConfig synthesizes the in-memory session for a resumed
// identity, so launch and library merge work without a fresh login.
func profileFromConfig(cfg domain.LauncherConfig) *domain.UserProfile {
	profile := &domain.UserProfile{
		UserID:   cfg.UserID,
		Username: cfg.Username,
		Token:    cfg.Token,
	}
	if cfg.OrgID > 0 {
		profile.Orgs = []domain.OrgSummary{{ID: cfg.OrgID, Role: "member"}}
	}
	return profile
}

func (c *Coordinator) hostLocked() string {
	if c.cfg.Host != "" {
		return c.cfg.Host
	}
	return c.defaultHost
}

// saveConfigLocked persists the current config. Best effort: a failed write
// never fails the operation that mutated the config.
func (c *Coordinator) saveConfigLocked(ctx context.Context) {
	_ = c.configStore.Save(ctx, c.cfg)
}
