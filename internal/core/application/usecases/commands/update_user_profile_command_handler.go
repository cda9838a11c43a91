package commands

import (
	"context"
	"errors"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

var ErrUserNotFound = errors.New("user not found")

// UpdateUserProfileCommandHandler handles owner-editable profile changes.
type UpdateUserProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserProfileCommandHandler creates a handler for profile updates.
// Requires a UserUoWFactory for transactional persistence.
func NewUpdateUserProfileCommandHandler(uowFactory UserUoWFactory) UpdateUserProfileCommandHandler {
	return UpdateUserProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
// Loads the user, applies the profile change and persists it.
// Returns ErrUserNotFound for an unknown user id.
func (h UpdateUserProfileCommandHandler) Handle(ctx context.Context, cmd UpdateUserProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	account, err := userRepo.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	if err = account.UpdateProfile(cmd.Name(), cmd.Phone()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
