package response

import (
	"time"

	"noirlabs_billing/internal/domain/entities"
)

type SubscriptionResponse struct {
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Tier       string    `json:"tier"`
	ValidUntil time.Time `json:"valid_until"`
	IsPro      bool      `json:"is_pro"`
}

// FromSubscription evaluates IsPro at now.
func FromSubscription(s entities.Subscription, now time.Time) SubscriptionResponse {
	return SubscriptionResponse{
		UserID:     s.UserID,
		Status:     string(s.Status),
		Tier:       s.Tier,
		ValidUntil: s.ValidUntil,
		IsPro:      s.IsPro(now),
	}
}
