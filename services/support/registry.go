package support

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"bookit/models"
)

// ValidationError is a locally recoverable input failure. Handlers surface
// its message to the user directly; it is never propagated further.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ticketTimeFormat mirrors the locale-style creation stamp shown in the UI.
const ticketTimeFormat = "1/2/2006, 3:04:05 PM"

// SupportService manages each user's submitted support tickets.
type SupportService interface {
	// List returns the user's tickets, newest first.
	List(userID string) []models.SupportTicket
	// Submit validates the form and prepends a new Open ticket.
	Submit(userID string, form models.TicketForm) (*models.SupportTicket, error)
}

// InMemoryTicketRegistry is the append-only in-memory ticket store.
type InMemoryTicketRegistry struct {
	mu     sync.Mutex
	byUser map[string][]models.SupportTicket

	// now is swappable for tests.
	now func() time.Time
}

// NewInMemoryTicketRegistry creates an empty ticket registry.
func NewInMemoryTicketRegistry() *InMemoryTicketRegistry {
	return &InMemoryTicketRegistry{
		byUser: make(map[string][]models.SupportTicket),
		now:    time.Now,
	}
}

// List returns the user's tickets, newest first.
func (r *InMemoryTicketRegistry) List(userID string) []models.SupportTicket {
	r.mu.Lock()
	defer r.mu.Unlock()

	tickets := r.byUser[userID]
	out := make([]models.SupportTicket, len(tickets))
	copy(out, tickets)
	return out
}

// Submit validates the submission and, on success, prepends a new ticket
// with status Open and a creation-time-derived id. Tickets are never
// mutated or removed afterwards.
func (r *InMemoryTicketRegistry) Submit(userID string, form models.TicketForm) (*models.SupportTicket, error) {
	if strings.TrimSpace(form.Subject) == "" ||
		strings.TrimSpace(form.Description) == "" ||
		strings.TrimSpace(form.Email) == "" {
		return nil, ValidationError{Message: "Please fill all fields."}
	}
	if !emailPattern.MatchString(form.Email) {
		return nil, ValidationError{Message: "Please enter a valid email address."}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	ticket := models.SupportTicket{
		ID:          now.UnixMilli(),
		Subject:     form.Subject,
		Description: form.Description,
		Email:       form.Email,
		Status:      models.TicketStatusOpen,
		CreatedAt:   now.Format(ticketTimeFormat),
	}

	r.byUser[userID] = append([]models.SupportTicket{ticket}, r.byUser[userID]...)
	return &ticket, nil
}
