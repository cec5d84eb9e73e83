package models

// TicketStatusOpen is the only status a support ticket can have. Tickets
// are never mutated after creation.
const TicketStatusOpen = "Open"

// TicketForm is the raw support ticket submission.
type TicketForm struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Email       string `json:"email"`
}

// SupportTicket is a validated, submitted support ticket.
type SupportTicket struct {
	ID          int64  `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}
