package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
	mock_interfaces "noirlabs_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEmailUseCase_SendWelcome(t *testing.T) {
	t.Run("sender not configured", func(t *testing.T) {
		uc := NewEmailUseCase(nil, nil)
		if _, err := uc.SendWelcome(context.Background(), alice, ""); !errors.Is(err, interfaces.ErrEmailNotConfigured) {
			t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
		}
	})

	t.Run("default name and escaping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewEmailUseCase(sender, nil)

		var bodies []string
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg entities.EmailMessage) (json.RawMessage, error) {
			if msg.To != alice.Email || msg.Subject != welcomeSubject || msg.From != "" {
				t.Fatalf("unexpected message %+v", msg)
			}
			bodies = append(bodies, msg.HTML)
			return json.RawMessage(`{"id":"em"}`), nil
		}).Times(2)

		if _, err := uc.SendWelcome(context.Background(), alice, "  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.SendWelcome(context.Background(), alice, "<b>Eve</b>"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(bodies[0], "Welcome back, Agent.") {
			t.Fatalf("expected default name in %q", bodies[0])
		}
		if strings.Contains(bodies[1], "<b>Eve</b>") || !strings.Contains(bodies[1], "&lt;b&gt;Eve&lt;/b&gt;") {
			t.Fatalf("expected escaped name")
		}
	})

	t.Run("provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewEmailUseCase(sender, nil)

		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, &interfaces.EmailError{Status: 401, Details: "invalid key"})

		_, err := uc.SendWelcome(context.Background(), alice, "Ann")
		var emailErr *interfaces.EmailError
		if !errors.As(err, &emailErr) || emailErr.Status != 401 {
			t.Fatalf("expected EmailError, got %v", err)
		}
	})
}
