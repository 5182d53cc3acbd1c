package auth

import "shop-service/internal/domain/user"

// SignupRequest carries the fields required to register a user.
type SignupRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	Token string
	User  user.PublicUser
}
