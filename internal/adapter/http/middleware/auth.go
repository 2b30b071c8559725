package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase"
	"noirlabs_billing/internal/usecase/interfaces"
	"noirlabs_billing/pkg"
)

const identityKey = "identity"

var (
	ErrMissingAuthorization = pkg.NewDomainErrorSimple("MISSING_AUTHORIZATION", "Missing Authorization header", http.StatusUnauthorized)
	errUnauthorized         = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	errAuthNotConfigured    = pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Server configuration error: Supabase credentials missing", http.StatusInternalServerError)
	errForbidden            = pkg.NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
)

// BearerToken strips the "Bearer" scheme (any case) from an Authorization
// header value. A bare scheme yields an empty token; a value without the
// scheme is returned trimmed.
func BearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	if strings.EqualFold(fields[0], "bearer") {
		return strings.Join(fields[1:], " ")
	}
	return strings.TrimSpace(header)
}

// AuthAppError maps authenticator failures onto the response envelope.
func AuthAppError(err error) *pkg.AppError {
	var authErr *interfaces.AuthError
	switch {
	case errors.Is(err, interfaces.ErrAuthNotConfigured):
		return pkg.NewDomainError(errAuthNotConfigured.Code, errAuthNotConfigured.Message, err, errAuthNotConfigured.HTTPStatus)
	case errors.As(err, &authErr):
		return errUnauthorized.WithDetails(authErr.Reason)
	case errors.Is(err, interfaces.ErrUnauthenticated):
		return errUnauthorized
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// RequireUser authenticates the bearer token and stores the identity for
// the handlers behind it.
func RequireUser(auth interfaces.IAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" {
			c.AbortWithStatusJSON(ErrMissingAuthorization.HTTPStatus, ErrMissingAuthorization.ToHTTPError())
			return
		}
		if auth == nil {
			appErr := AuthAppError(interfaces.ErrAuthNotConfigured)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		token := BearerToken(header)
		if token == "" {
			c.AbortWithStatusJSON(ErrMissingAuthorization.HTTPStatus, ErrMissingAuthorization.ToHTTPError())
			return
		}
		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := AuthAppError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAdmin must run after RequireUser. An empty admin list locks the
// group for everyone.
func RequireAdmin(adminEmails []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if !usecase.IsAdmin(identity, adminEmails) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func SetIdentity(c *gin.Context, identity entities.Identity) { c.Set(identityKey, identity) }

func IdentityFromContext(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok
}
