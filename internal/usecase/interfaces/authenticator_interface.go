package interfaces

//go:generate mockgen -source=authenticator_interface.go -destination=mocks/mock_authenticator_interface.go -package=mock_interfaces

import (
	"context"
	"errors"

	"noirlabs_billing/internal/domain/entities"
)

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrAuthNotConfigured = errors.New("auth provider not configured")
)

// IAuthenticator turns a bearer token into an identity. Implementations make
// at most one call to the auth provider and never retry.
type IAuthenticator interface {
	Authenticate(ctx context.Context, token string) (entities.Identity, error)
}

// AuthError is a rejected token. Reason is the provider's message and is
// safe to show to the caller.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return "unauthenticated: " + e.Reason }

func (e *AuthError) Is(target error) bool { return target == ErrUnauthenticated }
