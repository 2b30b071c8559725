package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "noirlabs_billing/docs"
	"noirlabs_billing/internal/adapter/http/handlers"
	"noirlabs_billing/internal/adapter/http/middleware"
	"noirlabs_billing/internal/adapter/persistence/repository"
	"noirlabs_billing/internal/config"
	"noirlabs_billing/internal/infrastructure/auth"
	"noirlabs_billing/internal/infrastructure/database"
	"noirlabs_billing/internal/infrastructure/email"
	"noirlabs_billing/internal/infrastructure/httpx"
	"noirlabs_billing/internal/infrastructure/payments"
	"noirlabs_billing/internal/usecase"
	"noirlabs_billing/internal/usecase/interfaces"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases the router exposes.
type Dependencies struct {
	Auth         interfaces.IAuthenticator
	Invoice      usecase.IInvoiceUseCase
	Subscription usecase.ISubscriptionUseCase
	Waitlist     usecase.IWaitlistUseCase
	Email        usecase.IEmailUseCase
	Profile      usecase.IProfileUseCase
	SystemLog    usecase.ISystemLogUseCase
	Admin        usecase.IAdminUseCase
	AdminEmails  []string
	Logger       *zap.Logger
}

// Run wires the service from cfg and serves until SIGINT or SIGTERM.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("configuration loaded",
		zap.String("auth_mode", cfg.Auth.Mode),
		zap.Bool("xendit_configured", cfg.Xendit.SecretKey != ""),
		zap.Bool("xendit_mock", cfg.Xendit.MockEnabled()),
		zap.Bool("supabase_configured", cfg.Auth.URL() != "" && cfg.Auth.AnonKey() != ""),
		zap.Bool("email_configured", cfg.Email.Key() != ""),
		zap.Int("admins", len(cfg.AdminEmails)),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start the application: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func buildDependencies(ctx context.Context, cfg config.Config, logger *zap.Logger) (Dependencies, error) {
	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return Dependencies{}, fmt.Errorf("create dynamodb client: %w", err)
	}
	client := httpx.NewClient(cfg.HTTPClientTimeout)

	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices)
	subscriptionRepo := repository.NewSubscriptionDynamoRepository(ddb, cfg.Tables.Subscriptions)
	waitlistRepo := repository.NewWaitlistDynamoRepository(ddb, cfg.Tables.Waitlist)
	profileRepo := repository.NewProfileDynamoRepository(ddb, cfg.Tables.Profiles)
	systemLogRepo := repository.NewSystemLogDynamoRepository(ddb, cfg.Tables.SystemLogs)

	authenticator := auth.New(cfg.Auth, client, logger)
	gateway := payments.NewXenditGateway(cfg.Xendit, client, logger)
	sender := email.NewUnosendClient(cfg.Email, client, logger)

	emailUseCase := usecase.NewEmailUseCase(sender, logger)
	systemLogUseCase := usecase.NewSystemLogUseCase(systemLogRepo, logger)
	return Dependencies{
		Auth:         authenticator,
		Invoice:      usecase.NewInvoiceUseCase(authenticator, gateway, invoiceRepo, cfg.DefaultOrigin, logger),
		Subscription: usecase.NewSubscriptionUseCase(subscriptionRepo, logger),
		Waitlist:     usecase.NewWaitlistUseCase(waitlistRepo, emailUseCase, logger),
		Email:        emailUseCase,
		Profile:      usecase.NewProfileUseCase(profileRepo, systemLogUseCase, logger),
		SystemLog:    systemLogUseCase,
		Admin:        usecase.NewAdminUseCase(profileRepo, waitlistRepo, systemLogUseCase, logger),
		AdminEmails:  cfg.AdminEmails,
		Logger:       logger,
	}, nil
}

// NewRouter builds the gin engine. It has no side effects, so tests can
// drive it directly.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, deps.Logger)

	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, deps)
	return router
}

func getRoutes(router *gin.Engine, deps Dependencies) {
	invoiceHandler := handlers.NewInvoiceHandler(deps.Invoice, deps.Logger)
	subscriptionHandler := handlers.NewSubscriptionHandler(deps.Subscription)
	waitlistHandler := handlers.NewWaitlistHandler(deps.Waitlist)
	emailHandler := handlers.NewEmailHandler(deps.Email)
	profileHandler := handlers.NewProfileHandler(deps.Profile)
	systemLogHandler := handlers.NewSystemLogHandler(deps.SystemLog)
	adminHandler := handlers.NewAdminHandler(deps.Admin)

	api := router.Group(PathAPI)
	addInvoiceRoutes(api, invoiceHandler, deps.Auth)
	addSubscriptionRoutes(api, subscriptionHandler, deps.Auth)
	addWaitlistRoutes(api, waitlistHandler)
	addEmailRoutes(api, emailHandler, deps.Auth)
	addProfileRoutes(api, profileHandler, deps.Auth)
	addSystemLogRoutes(api, systemLogHandler, deps.Auth)
	addAdminRoutes(api, adminHandler, deps.Auth, deps.AdminEmails)
}

// CORS goes first so preflight short-circuits every route, unknown ones
// included.
func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.Recovery(logger))
}
