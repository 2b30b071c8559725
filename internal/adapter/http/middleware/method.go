package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/pkg"
)

var errMethodNotAllowed = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method Not Allowed", http.StatusMethodNotAllowed)

// MethodGate rejects every method not in allowed with 405. Mount it on a
// route registered with Any.
func MethodGate(allowed ...string) gin.HandlerFunc {
	allow := strings.Join(allowed, ", ")
	return func(c *gin.Context) {
		for _, m := range allowed {
			if c.Request.Method == m {
				c.Next()
				return
			}
		}
		c.Header("Allow", allow)
		c.AbortWithStatusJSON(errMethodNotAllowed.HTTPStatus, errMethodNotAllowed.ToHTTPError())
	}
}
