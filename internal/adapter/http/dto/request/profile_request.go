package request

import (
	"noirlabs_billing/internal/domain/entities"
	"noirlabs_billing/internal/usecase"
)

type PreferencesRequest struct {
	HallucinationMode bool   `json:"hallucination_mode" example:"true"`
	QuantumProcessing bool   `json:"quantum_processing" example:"false"`
	Theme             string `json:"theme" example:"light"`
}

// UpdateProfileRequest is the body of PUT /api/profiles/me. It replaces every
// setting at once.
type UpdateProfileRequest struct {
	Username    string             `json:"username" example:"ann"`
	Preferences PreferencesRequest `json:"preferences"`
}

func (r UpdateProfileRequest) ToCommand() usecase.ProfileUpdate {
	return usecase.ProfileUpdate{
		Username: r.Username,
		Preferences: entities.ProfilePreferences{
			HallucinationMode: r.Preferences.HallucinationMode,
			QuantumProcessing: r.Preferences.QuantumProcessing,
			Theme:             r.Preferences.Theme,
		},
	}
}

type SelectProductRequest struct {
	Product string `json:"product" example:"Noir AI"`
}
