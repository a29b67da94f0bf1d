package model

// EmailMessage is a single outbound email. It is built per request and never persisted.
type EmailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
