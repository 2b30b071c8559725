package entities

import "time"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Products a researcher can open from the lab.
const (
	ProductNoirAI   = "Noir AI"
	ProductNoirCode = "Noir Code"
)

type ProfilePreferences struct {
	HallucinationMode bool   `json:"hallucination_mode"`
	QuantumProcessing bool   `json:"quantum_processing"`
	Theme             string `json:"theme"`
}

// DefaultPreferences is what a user sees before saving any setting.
func DefaultPreferences() ProfilePreferences {
	return ProfilePreferences{HallucinationMode: true, QuantumProcessing: false, Theme: ThemeLight}
}

// Profile is the per-user settings row, keyed by user_id.
type Profile struct {
	UserID        string             `json:"user_id"`
	Username      string             `json:"username"`
	Preferences   ProfilePreferences `json:"preferences"`
	ActiveProduct string             `json:"active_product,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
