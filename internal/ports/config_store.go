package ports

import (
	"context"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// ConfigStore persists LauncherConfig. Load returns a zero config, not an
// error, when the file is absent or corrupt.
type ConfigStore interface {
	Load(ctx context.Context) (domain.LauncherConfig, error)
	Save(ctx context.Context, cfg domain.LauncherConfig) error
}
