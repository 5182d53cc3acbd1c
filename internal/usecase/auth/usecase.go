package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shop-service/internal/domain/user"
	pkgerrors "shop-service/pkg/errors"
	"shop-service/pkg/security"
	"shop-service/pkg/token"
)

// Repository defines the user data access needed by the auth flows.
type Repository interface {
	Create(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// Usecase implements signup and login. Tokens are issued here; the
// guard that verifies them lives in the HTTP middleware.
type Usecase struct {
	repo     Repository
	tokens   *token.Manager
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new auth usecase.
func New(r Repository, tokens *token.Manager, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, tokens: tokens, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a human-readable error.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// Signup registers a new user and returns a signed token plus the
// public user fields. The email must be unique case-insensitively.
func (uc *Usecase) Signup(ctx context.Context, in SignupRequest) (*AuthResponse, error) {
	uc.log.Info("signup", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("signup validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		uc.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Cart:         []user.CartLine{},
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		uc.log.Warn("signup rejected", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	signed, err := uc.tokens.Issue(u.ID, u.Email, u.Name)
	if err != nil {
		uc.log.Error("failed to issue token", zap.Error(err))
		return nil, err
	}

	return &AuthResponse{Token: signed, User: u.Public()}, nil
}

// Login verifies credentials and returns a freshly signed token. The
// error message does not distinguish an unknown email from a wrong
// password.
func (uc *Usecase) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	uc.log.Info("login", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("login validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error("failed to look up user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if u == nil || !security.CheckPassword(u.PasswordHash, in.Password) {
		uc.log.Warn("invalid credentials", zap.String("email", in.Email))
		return nil, pkgerrors.NewUnauthorizedError("Invalid credentials")
	}

	signed, err := uc.tokens.Issue(u.ID, u.Email, u.Name)
	if err != nil {
		uc.log.Error("failed to issue token", zap.Error(err))
		return nil, err
	}

	return &AuthResponse{Token: signed, User: u.Public()}, nil
}
