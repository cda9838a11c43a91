package ports

import (
	"context"

	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
// Identities originate with the external auth collaborator; accounts are
// provisioned here from verified token claims on first sight.
type UserRepository interface {
	// Add persists a newly provisioned user account.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetAll retrieves all known users. Dispatcher/admin view.
	GetAll(ctx context.Context) ([]*user.User, error)

	// Update persists profile changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error
}
