package response

import (
	"time"

	"noirlabs_billing/internal/domain/entities"
)

type PreferencesResponse struct {
	HallucinationMode bool   `json:"hallucination_mode"`
	QuantumProcessing bool   `json:"quantum_processing"`
	Theme             string `json:"theme"`
}

type ProfileResponse struct {
	UserID        string              `json:"user_id"`
	Email         string              `json:"email"`
	Username      string              `json:"username"`
	Preferences   PreferencesResponse `json:"preferences"`
	ActiveProduct string              `json:"active_product,omitempty"`
	UpdatedAt     *time.Time          `json:"updated_at,omitempty"`
}

// FromProfile adds the caller's email, which lives with the auth provider
// rather than on the profile row. A never-saved profile has no updated_at.
func FromProfile(p entities.Profile, email string) ProfileResponse {
	res := ProfileResponse{
		UserID:   p.UserID,
		Email:    email,
		Username: p.Username,
		Preferences: PreferencesResponse{
			HallucinationMode: p.Preferences.HallucinationMode,
			QuantumProcessing: p.Preferences.QuantumProcessing,
			Theme:             p.Preferences.Theme,
		},
		ActiveProduct: p.ActiveProduct,
	}
	if !p.UpdatedAt.IsZero() {
		updatedAt := p.UpdatedAt
		res.UpdatedAt = &updatedAt
	}
	return res
}
