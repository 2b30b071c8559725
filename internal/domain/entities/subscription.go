package entities

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
)

// SubscriptionTierResearcher is the only paid plan on sale.
const SubscriptionTierResearcher = "researcher"

// Subscription is the per-user plan row, keyed by user_id.
type Subscription struct {
	UserID     string             `json:"user_id"`
	Status     SubscriptionStatus `json:"status"`
	Tier       string             `json:"tier"`
	ValidUntil time.Time          `json:"valid_until"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// IsPro reports whether the plan is active and not yet expired at now.
func (s Subscription) IsPro(now time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.ValidUntil.After(now)
}
