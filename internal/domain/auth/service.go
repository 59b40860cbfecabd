package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues access/refresh tokens carrying
	// the employee_id and company_id claims the attendance handlers read.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
