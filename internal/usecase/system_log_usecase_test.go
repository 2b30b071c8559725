package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase/interfaces"
	mock_interfaces "noirlabs_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var logTime = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

func newTestSystemLogs(repo interfaces.ISystemLogRepository) *SystemLogUseCase {
	uc := NewSystemLogUseCase(repo, nil)
	uc.now = func() time.Time { return logTime }
	uc.newID = func() string { return "log-1" }
	return uc
}

func TestSystemLogUseCase_RecordLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISystemLogRepository(ctrl)
	uc := newTestSystemLogs(repo)

	want := entities.SystemLog{ID: "log-1", Type: entities.SystemLogAuth, Message: "RELAY_ESTABLISHED: alice@example.com logged in.", CreatedAt: logTime}
	repo.EXPECT().Create(gomock.Any(), want).Return(nil)

	got, err := uc.RecordLogin(context.Background(), alice)
	if err != nil || got != want {
		t.Fatalf("unexpected result %+v, %v", got, err)
	}

	if _, err := uc.RecordLogin(context.Background(), entities.Identity{UserID: "u-1"}); !errors.Is(err, interfaces.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestSystemLogUseCase_RecordProductAccess(t *testing.T) {
	cases := []struct {
		product string
		message string
	}{
		{entities.ProductNoirAI, "NEURAL_LINK: alice@example.com accessing NOIR AI."},
		{entities.ProductNoirCode, "SYNTH_INIT: alice@example.com generating code."},
		{"Noir Vision", ""},
	}
	for _, tc := range cases {
		t.Run(tc.product, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockISystemLogRepository(ctrl)
			uc := newTestSystemLogs(repo)

			if tc.message != "" {
				repo.EXPECT().Create(gomock.Any(), entities.SystemLog{ID: "log-1", Type: entities.SystemLogUsage, Message: tc.message, CreatedAt: logTime}).Return(nil)
			}
			if err := uc.RecordProductAccess(context.Background(), alice, tc.product); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSystemLogUseCase_Recent(t *testing.T) {
	for _, tc := range []struct{ asked, sent int }{{0, DefaultRecentLogs}, {-3, DefaultRecentLogs}, {20, 20}, {500, MaxRecentLogs}} {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockISystemLogRepository(ctrl)
		uc := newTestSystemLogs(repo)

		repo.EXPECT().Recent(gomock.Any(), tc.sent).Return(nil, nil)
		if _, err := uc.Recent(context.Background(), tc.asked); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ctrl.Finish()
	}
}
