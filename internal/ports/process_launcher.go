package ports

import (
	"context"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// ProcessLauncher spawns the platform streaming client. Exactly one spawn
// is attempted per call.
type ProcessLauncher interface {
	Launch(ctx context.Context, req domain.LaunchRequest) (domain.LaunchReceipt, error)
}
