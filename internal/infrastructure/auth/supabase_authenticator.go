package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/metrics"
	"noirlabs_billing/internal/usecase/interfaces"
)

const userPath = "/auth/v1/user"

// SupabaseAuthenticator asks Supabase Auth who owns a token.
type SupabaseAuthenticator struct {
	baseURL string
	anonKey string
	client  *http.Client
	logger  *zap.Logger
}

var _ interfaces.IAuthenticator = (*SupabaseAuthenticator)(nil)

func NewSupabaseAuthenticator(baseURL, anonKey string, client *http.Client, logger *zap.Logger) *SupabaseAuthenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupabaseAuthenticator{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		client:  client,
		logger:  logger.Named("auth.supabase"),
	}
}

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Authenticate makes exactly one call. Every failure other than missing
// configuration, transport errors included, is an *AuthError.
func (a *SupabaseAuthenticator) Authenticate(ctx context.Context, token string) (entities.Identity, error) {
	if a.baseURL == "" || a.anonKey == "" {
		return entities.Identity{}, interfaces.ErrAuthNotConfigured
	}
	if strings.TrimSpace(token) == "" {
		return entities.Identity{}, &interfaces.AuthError{Reason: "empty bearer token"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+userPath, nil)
	if err != nil {
		return entities.Identity{}, &interfaces.AuthError{Reason: err.Error()}
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		metrics.ObserveDownstream("supabase", start, err)
		a.logger.Warn("user lookup failed", zap.Error(err))
		return entities.Identity{}, &interfaces.AuthError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		metrics.ObserveDownstream("supabase", start, err)
		return entities.Identity{}, &interfaces.AuthError{Reason: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		authErr := &interfaces.AuthError{Reason: providerMessage(body, resp.StatusCode)}
		metrics.ObserveDownstream("supabase", start, authErr)
		return entities.Identity{}, authErr
	}
	metrics.ObserveDownstream("supabase", start, nil)

	var user supabaseUser
	if err := json.Unmarshal(body, &user); err != nil || user.ID == "" {
		return entities.Identity{}, &interfaces.AuthError{Reason: "no user"}
	}
	return entities.Identity{UserID: user.ID, Email: user.Email}, nil
}

// providerMessage picks the human readable part of a Supabase error body.
func providerMessage(body []byte, status int) string {
	var e struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil {
		for _, m := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
			if m != "" {
				return m
			}
		}
	}
	return http.StatusText(status)
}
