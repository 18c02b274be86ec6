package ports

import (
	"context"

	"github.com/adupuis1/CouchSuite/internal/domain"
)

// ControllerProbe checks for a connected game controller. Probe failures
// are reported as disconnected, never as errors.
type ControllerProbe interface {
	Detect(ctx context.Context) domain.ControllerInfo
}
