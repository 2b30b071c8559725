package entities

// Identity is the caller as reported by the auth provider. Only an
// authenticator produces it; handlers never build one from request input.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
