package usecase

//go:generate mockgen -source=invoice_usecase.go -destination=../adapter/http/handlers/mocks/mock_invoice_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/metrics"
	"noirlabs_billing/internal/usecase/interfaces"
)

var (
	ErrMissingAuthorization = errors.New("missing authorization header")
	ErrPayerEmailMismatch   = errors.New("payer email does not match authenticated user")
)

// IInvoiceUseCase opens hosted checkouts for authenticated users.
type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, cmd CreateInvoiceCommand) (json.RawMessage, error)
	ListByUser(ctx context.Context, identity entities.Identity) ([]entities.InvoiceRecord, error)
}

// CreateInvoiceCommand is everything the handler extracted from the request.
// Token is the bearer token with the "Bearer " prefix removed.
type CreateInvoiceCommand struct {
	Token   string
	Origin  string
	Request entities.InvoiceRequest
}

type InvoiceUseCase struct {
	auth          interfaces.IAuthenticator
	gateway       interfaces.IPaymentGateway
	repo          interfaces.IInvoiceRepository
	validate      *validator.Validate
	defaultOrigin string
	logger        *zap.Logger
	now           func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

// NewInvoiceUseCase wires the pipeline. repo may be nil, in which case
// accepted invoices are not recorded.
func NewInvoiceUseCase(auth interfaces.IAuthenticator, gateway interfaces.IPaymentGateway, repo interfaces.IInvoiceRepository, defaultOrigin string, logger *zap.Logger) *InvoiceUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceUseCase{
		auth:          auth,
		gateway:       gateway,
		repo:          repo,
		validate:      newValidator(),
		defaultOrigin: defaultOrigin,
		logger:        logger.Named("invoice.usecase"),
		now:           time.Now,
	}
}

// CreateInvoice validates, authenticates, authorizes and then forwards the
// invoice to the gateway. The gateway is never called unless every earlier
// step passed. On success the provider body is returned untouched.
func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, cmd CreateInvoiceCommand) (json.RawMessage, error) {
	log := u.logger.With(zap.String("external_id", cmd.Request.ExternalID))

	if strings.TrimSpace(cmd.Token) == "" {
		metrics.InvoiceRequest(metrics.OutcomeUnauthenticated)
		return nil, ErrMissingAuthorization
	}
	if err := validateStruct(u.validate, cmd.Request); err != nil {
		log.Info("invalid invoice request", zap.Error(err))
		metrics.InvoiceRequest(metrics.OutcomeInvalid)
		return nil, err
	}
	if u.auth == nil {
		log.Error("authenticator not configured")
		metrics.InvoiceRequest(metrics.OutcomeMisconfigured)
		return nil, interfaces.ErrAuthNotConfigured
	}

	identity, err := u.auth.Authenticate(ctx, cmd.Token)
	if err != nil {
		if errors.Is(err, interfaces.ErrUnauthenticated) {
			log.Info("token rejected", zap.Error(err))
			metrics.InvoiceRequest(metrics.OutcomeUnauthenticated)
		} else {
			log.Error("authentication failed", zap.Error(err))
			metrics.InvoiceRequest(metrics.OutcomeMisconfigured)
		}
		return nil, err
	}
	log = log.With(zap.String("user_id", identity.UserID))

	if !PayerMatchesIdentity(identity, cmd.Request.PayerEmail) {
		log.Warn("payer email mismatch")
		metrics.InvoiceRequest(metrics.OutcomeForbidden)
		return nil, ErrPayerEmailMismatch
	}
	if u.gateway == nil {
		log.Error("payment gateway not configured")
		metrics.InvoiceRequest(metrics.OutcomeMisconfigured)
		return nil, interfaces.ErrPaymentGatewayNotConfigured
	}

	payload := BuildInvoicePayload(cmd.Request, cmd.Origin, u.defaultOrigin)
	raw, err := u.gateway.CreateInvoice(ctx, payload)
	if err != nil {
		if errors.Is(err, interfaces.ErrPaymentGatewayNotConfigured) {
			log.Error("payment gateway not configured")
			metrics.InvoiceRequest(metrics.OutcomeMisconfigured)
			return nil, err
		}
		var gwErr *interfaces.GatewayError
		if errors.As(err, &gwErr) {
			log.Error("gateway rejected invoice", zap.Int("status", gwErr.Status), zap.Any("details", gwErr.Details))
		} else {
			log.Error("gateway call failed", zap.Error(err))
		}
		metrics.InvoiceRequest(metrics.OutcomeGatewayError)
		return nil, err
	}

	// The invoice exists at the provider now; recording it must outlive a
	// caller that already hung up.
	u.record(context.WithoutCancel(ctx), log, identity, payload, raw)
	log.Info("invoice created")
	metrics.InvoiceRequest(metrics.OutcomeCreated)
	return raw, nil
}

type createdInvoice struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	InvoiceURL string `json:"invoice_url"`
	ExpiryDate string `json:"expiry_date"`
}

// record is best-effort: a ledger failure is logged and never surfaces.
func (u *InvoiceUseCase) record(ctx context.Context, log *zap.Logger, identity entities.Identity, payload entities.InvoicePayload, raw json.RawMessage) {
	if u.repo == nil {
		return
	}

	var created createdInvoice
	if err := json.Unmarshal(raw, &created); err != nil || created.ID == "" {
		log.Warn("provider response has no invoice id, not recorded")
		return
	}
	status := entities.InvoiceStatus(created.Status)
	if status == "" {
		status = entities.InvoiceStatusPending
	}

	rec := entities.InvoiceRecord{
		ID:               created.ID,
		ExternalID:       payload.ExternalID,
		UserID:           identity.UserID,
		PayerEmail:       payload.PayerEmail,
		Amount:           payload.Amount,
		Currency:         payload.Currency,
		Description:      payload.Description,
		Status:           status,
		InvoiceURL:       created.InvoiceURL,
		ExpiryDate:       created.ExpiryDate,
		CreatedAt:        u.now().UTC(),
		ProviderResponse: raw,
	}
	if _, err := u.repo.Create(ctx, rec); err != nil {
		log.Error("failed recording invoice", zap.String("invoice_id", created.ID), zap.Error(err))
	}
}

// ListByUser returns the caller's recorded invoices, newest first.
func (u *InvoiceUseCase) ListByUser(ctx context.Context, identity entities.Identity) ([]entities.InvoiceRecord, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return nil, interfaces.ErrUnauthenticated
	}
	if u.repo == nil {
		return nil, errors.New("invoice repository not configured")
	}

	items, err := u.repo.ListByUserID(ctx, identity.UserID)
	if err != nil {
		u.logger.Error("failed listing invoices", zap.String("user_id", identity.UserID), zap.Error(err))
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}
