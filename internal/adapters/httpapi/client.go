package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/adupuis1/CouchSuite/internal/ports"
)

const (
	// DefaultBaseURL matches the reference living-room deployment.
	DefaultBaseURL = "http://192.168.5.12:8080"

	defaultRequestTimeout = 6 * time.Second
	presenceTimeout       = 4 * time.Second
	defaultMaxAttempts    = 3
)

// Client implements ports.CatalogService over plain JSON HTTP.
type Client struct {
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	MaxAttempts    int
	Clock          ports.Clock

	mu      sync.RWMutex
	baseURL string
	token   string
}

var _ ports.CatalogService = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// SetBaseURL retargets the client, e.g. after the user edits the host.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = baseURL
}

// SetAuthToken installs the bearer token sent with subsequent requests.
// An empty token removes the header.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) FetchCharts(ctx context.Context) ([]byte, error) {
	return c.send(ctx, http.MethodGet, "/charts/top10", nil)
}

func (c *Client) ParseEntries(payload []byte) ([]domain.Entry, error) {
	return parseEntries(payload)
}

func (c *Client) FetchLibrary(ctx context.Context, userID, orgID int) ([]domain.LibraryRecord, error) {
	path := fmt.Sprintf("/users/%d/library?org_id=%d", userID, orgID)
	body, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return parseLibrary(body)
}

func (c *Client) UserPresence(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, presenceTimeout)
	defer cancel()

	body, err := c.send(ctx, http.MethodGet, "/users/exists", nil)
	if err != nil {
		return false, err
	}
	return parsePresence(body)
}

func (c *Client) Login(ctx context.Context, username, password string) (domain.UserProfile, error) {
	return c.sendUserRequest(ctx, "/auth/login", username, password)
}

func (c *Client) Register(ctx context.Context, username, password string) (domain.UserProfile, error) {
	return c.sendUserRequest(ctx, "/users", username, password)
}

func (c *Client) sendUserRequest(ctx context.Context, path, username, password string) (domain.UserProfile, error) {
	body, err := c.send(ctx, http.MethodPost, path, map[string]any{
		"username": username,
		"password": password,
	})
	if err != nil {
		return domain.UserProfile{}, err
	}
	return parseProfile(body)
}

func (c *Client) UpdateInstalled(ctx context.Context, userID int, id domain.EntryID, installed bool) error {
	path := fmt.Sprintf("/users/%d/apps/%s", userID, url.PathEscape(string(id)))
	_, err := c.send(ctx, http.MethodPut, path, map[string]any{"installed": installed})
	return err
}

func (c *Client) UpdateSettings(ctx context.Context, userID int, settings map[string]any) error {
	path := fmt.Sprintf("/users/%d/settings", userID)
	_, err := c.send(ctx, http.MethodPut, path, map[string]any{"settings": settings})
	return err
}

func (c *Client) StartPlaySession(ctx context.Context, orgID, userID, gameID int) (domain.PlaySession, error) {
	body, err := c.send(ctx, http.MethodPost, "/sessions", map[string]any{
		"org_id":  orgID,
		"user_id": userID,
		"game_id": gameID,
	})
	if err != nil {
		return domain.PlaySession{}, err
	}
	return parsePlaySession(body)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) clock() ports.Clock {
	if c.Clock != nil {
		return c.Clock
	}
	return ports.SystemClock{}
}

func (c *Client) requestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return defaultRequestTimeout
}

func (c *Client) maxAttempts() int {
	if c.MaxAttempts > 0 {
		return c.MaxAttempts
	}
	return defaultMaxAttempts
}

func (c *Client) resolveBase() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.baseURL != "" {
		return c.baseURL
	}
	return DefaultBaseURL
}

func (c *Client) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}
