package usecase

//go:generate mockgen -source=email_usecase.go -destination=../adapter/http/handlers/mocks/mock_email_usecase.go -package=mocks

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/metrics"
	"noirlabs_billing/internal/usecase/interfaces"
)

type IEmailUseCase interface {
	SendWelcome(ctx context.Context, identity entities.Identity, name string) (json.RawMessage, error)
	SendWaitlistConfirmation(ctx context.Context, email string) (json.RawMessage, error)
}

type EmailUseCase struct {
	sender interfaces.IEmailSender
	logger *zap.Logger
}

var _ IEmailUseCase = (*EmailUseCase)(nil)

func NewEmailUseCase(sender interfaces.IEmailSender, logger *zap.Logger) *EmailUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailUseCase{sender: sender, logger: logger.Named("email.usecase")}
}

// SendWelcome mails the welcome template to the authenticated user. An empty
// name renders as "Agent".
func (u *EmailUseCase) SendWelcome(ctx context.Context, identity entities.Identity, name string) (json.RawMessage, error) {
	if strings.TrimSpace(identity.Email) == "" {
		return nil, interfaces.ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultWelcomeName
	}
	html, err := renderTemplate(TemplateWelcome, welcomeData{Name: name})
	if err != nil {
		return nil, err
	}
	return u.send(ctx, TemplateWelcome, entities.EmailMessage{To: identity.Email, Subject: welcomeSubject, HTML: html})
}

func (u *EmailUseCase) SendWaitlistConfirmation(ctx context.Context, email string) (json.RawMessage, error) {
	html, err := renderTemplate(TemplateWaitlist, waitlistData{Email: email})
	if err != nil {
		return nil, err
	}
	return u.send(ctx, TemplateWaitlist, entities.EmailMessage{To: email, Subject: waitlistSubject, HTML: html})
}

func (u *EmailUseCase) send(ctx context.Context, template string, msg entities.EmailMessage) (json.RawMessage, error) {
	if u.sender == nil {
		metrics.EmailSent(template, interfaces.ErrEmailNotConfigured)
		return nil, interfaces.ErrEmailNotConfigured
	}
	data, err := u.sender.Send(ctx, msg)
	metrics.EmailSent(template, err)
	if err != nil {
		u.logger.Error("email not sent", zap.String("template", template), zap.Error(err))
		return nil, err
	}
	u.logger.Info("email sent", zap.String("template", template))
	return data, nil
}
