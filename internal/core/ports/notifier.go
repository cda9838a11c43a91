package ports

import (
	"context"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
)

// Notification is a user-facing event record persisted for later display.
type Notification struct {
	UserID  kernel.UUID
	Title   string
	Message string
}

// Notifier is the outbound port for creating notification records with the
// persistence collaborator. Failures are non-critical: callers log and
// continue rather than failing the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}
