package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// ErrNoEmployeeProfile is returned when an authenticated account
	// carries no employee_id claim, so employee-scoped operations cannot
	// resolve who the caller is.
	ErrNoEmployeeProfile = errors.New("no employee profile linked to this account")
)
