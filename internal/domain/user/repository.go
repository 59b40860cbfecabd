package user

import "context"

type UserRepository interface {
	// GetByEmail returns the user row. Fails with ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (User, error)
}
