package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"noirlabs_billing/internal/adapter/http/handlers"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/usecase/interfaces"
)

const (
	PathAPI           = "/api"
	PathCreateInvoice = "/create-invoice"
	PathInvoices      = "/invoices"
	PathSubscriptions = "/subscriptions"
	PathWaitlist      = "/waitlist"
	PathEmails        = "/emails"
	PathProfiles      = "/profiles"
	PathSystemLogs    = "/system-logs"
	PathAdmin         = "/admin"
)

// The invoice route authenticates inside the use case, after the body has
// been validated, so it does not sit behind RequireUser.
func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler, auth interfaces.IAuthenticator) {
	rg.Any(PathCreateInvoice, middleware.MethodGate(http.MethodPost), h.CreateInvoice)
	rg.GET(PathInvoices, middleware.RequireUser(auth), h.ListInvoices)
}

func addSubscriptionRoutes(rg *gin.RouterGroup, h *handlers.SubscriptionHandler, auth interfaces.IAuthenticator) {
	subscriptions := rg.Group(PathSubscriptions, middleware.RequireUser(auth))
	{
		subscriptions.POST("/activate", h.Activate)
		subscriptions.GET("/me", h.GetMine)
	}
}

func addWaitlistRoutes(rg *gin.RouterGroup, h *handlers.WaitlistHandler) {
	waitlist := rg.Group(PathWaitlist)
	{
		waitlist.POST("", h.Join)
		waitlist.GET("/count", h.Count)
	}
}

func addEmailRoutes(rg *gin.RouterGroup, h *handlers.EmailHandler, auth interfaces.IAuthenticator) {
	emails := rg.Group(PathEmails, middleware.RequireUser(auth))
	{
		emails.POST("/welcome", h.SendWelcome)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, h *handlers.ProfileHandler, auth interfaces.IAuthenticator) {
	profiles := rg.Group(PathProfiles, middleware.RequireUser(auth))
	{
		profiles.GET("/me", h.GetMine)
		profiles.PUT("/me", h.Update)
		profiles.PUT("/me/active-product", h.SelectProduct)
	}
}

func addSystemLogRoutes(rg *gin.RouterGroup, h *handlers.SystemLogHandler, auth interfaces.IAuthenticator) {
	logs := rg.Group(PathSystemLogs, middleware.RequireUser(auth))
	{
		logs.POST("/login", h.RecordLogin)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler, auth interfaces.IAuthenticator, adminEmails []string) {
	admin := rg.Group(PathAdmin, middleware.RequireUser(auth), middleware.RequireAdmin(adminEmails))
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/waitlist", h.Waitlist)
		admin.GET("/logs", h.Logs)
	}
}
