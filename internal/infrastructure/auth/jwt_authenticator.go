package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
)

// JWTAuthenticator verifies Supabase access tokens locally with the
// project's HS256 secret. No network call is made.
type JWTAuthenticator struct {
	secret []byte
	parser *jwt.Parser
}

var _ interfaces.IAuthenticator = (*JWTAuthenticator)(nil)

func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}
}

type supabaseClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, token string) (entities.Identity, error) {
	if len(a.secret) == 0 {
		return entities.Identity{}, interfaces.ErrAuthNotConfigured
	}
	if strings.TrimSpace(token) == "" {
		return entities.Identity{}, &interfaces.AuthError{Reason: "empty bearer token"}
	}

	var claims supabaseClaims
	_, err := a.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		reason := "invalid JWT"
		if errors.Is(err, jwt.ErrTokenExpired) {
			reason = "token is expired"
		}
		return entities.Identity{}, &interfaces.AuthError{Reason: reason}
	}
	if claims.Subject == "" {
		return entities.Identity{}, &interfaces.AuthError{Reason: "no user"}
	}
	return entities.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
