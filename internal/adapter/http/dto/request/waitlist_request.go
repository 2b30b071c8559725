package request

type JoinWaitlistRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

type WelcomeEmailRequest struct {
	Name string `json:"name,omitempty" example:"Alice"`
}
