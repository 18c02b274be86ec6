package ports

import (
	"context"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// CatalogService is the remote catalog/account API. FetchCharts returns the
// raw payload so the caller can persist it verbatim; ParseEntries is pure
// and also decodes previously cached payloads.
type CatalogService interface {
	FetchCharts(ctx context.Context) ([]byte, error)
	ParseEntries(payload []byte) ([]domain.Entry, error)
	FetchLibrary(ctx context.Context, userID, orgID int) ([]domain.LibraryRecord, error)
	UserPresence(ctx context.Context) (bool, error)
	Login(ctx context.Context, username, password string) (domain.UserProfile, error)
	Register(ctx context.Context, username, password string) (domain.UserProfile, error)
	UpdateInstalled(ctx context.Context, userID int, id domain.EntryID, installed bool) error
	UpdateSettings(ctx context.Context, userID int, settings map[string]any) error
	StartPlaySession(ctx context.Context, orgID, userID, gameID int) (domain.PlaySession, error)
	SetAuthToken(token string)
	// SetBaseURL retargets subsequent service calls. The persisted host
	// takes precedence over the wiring default once the config is loaded.
	SetBaseURL(baseURL string)
}
