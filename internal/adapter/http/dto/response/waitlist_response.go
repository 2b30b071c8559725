package response

import (
	"encoding/json"
	"time"

	"noirlabs_billing/internal/domain/entities"
)

type WaitlistEntryResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	EmailSent bool      `json:"email_sent"`
}

func FromWaitlistEntry(e entities.WaitlistEntry, emailSent bool) WaitlistEntryResponse {
	return WaitlistEntryResponse{ID: e.ID, Email: e.Email, CreatedAt: e.CreatedAt, EmailSent: emailSent}
}

type WaitlistCountResponse struct {
	Count int64 `json:"count"`
}

type EmailSentResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
