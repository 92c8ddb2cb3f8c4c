// Package identity resolves authenticated callers into their current
// account state. Token claims only prove who the caller was when the token
// was issued; the resolver re-checks the account on every request so that
// deleted users lose access immediately.
package identity

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// Resolver turns a token subject into a live UserIdentity.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver creates a Resolver backed by the given user repository.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// ResolveCurrentUser loads the account behind userID and returns its
// identity snapshot. A zero userID means the request carried no valid
// token; a missing account means the token outlived the user.
func (r *Resolver) ResolveCurrentUser(ctx context.Context, userID uint) (*models.UserIdentity, error) {
	if userID == 0 {
		return nil, models.NewUnauthenticatedError()
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewUserNotFoundError()
		}
		return nil, err
	}

	return &models.UserIdentity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
