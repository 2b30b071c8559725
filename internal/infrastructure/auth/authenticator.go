package auth

import (
	"net/http"

	"go.uber.org/zap"

	"noirlabs_billing/internal/config"
	"noirlabs_billing/internal/usecase/interfaces"
)

// New picks the authenticator for AUTH_MODE. Missing settings are not an
// error here; the authenticator reports them on each call.
func New(cfg config.AuthConfig, client *http.Client, logger *zap.Logger) interfaces.IAuthenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Mode == config.AuthModeJWT {
		if cfg.JWTSecret == "" {
			logger.Error("SUPABASE_JWT_SECRET missing, authenticated routes will fail")
		}
		return NewJWTAuthenticator(cfg.JWTSecret)
	}
	if cfg.URL() == "" || cfg.AnonKey() == "" {
		logger.Error("supabase url or anon key missing, authenticated routes will fail")
	}
	return NewSupabaseAuthenticator(cfg.URL(), cfg.AnonKey(), client, logger)
}
