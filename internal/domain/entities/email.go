package entities

// EmailMessage is a rendered transactional email. An empty From means the
// sender configured for the process.
type EmailMessage struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
