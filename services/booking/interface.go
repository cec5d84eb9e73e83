package booking

import (
	"time"

	"bookit/models"
)

// BookingService manages each user's booking collection. All state is held
// in memory; nothing is persisted.
type BookingService interface {
	// List returns the user's bookings in their stable underlying order.
	List(userID string) []models.Booking
	// Confirm sets the matching booking's status to Confirmed. No-op if the
	// id is not found. Idempotent.
	Confirm(userID string, id int)
	// Cancel sets the matching booking's status to Cancelled. No-op if the
	// id is not found. Idempotent.
	Cancel(userID string, id int)
	// Partition splits the bookings into upcoming and past relative to now.
	// A booking dated exactly now is upcoming. Ordering is preserved from
	// the underlying collection; the result is recomputed on every call.
	Partition(userID string, now time.Time) (upcoming, past []models.Booking)
	// RenderPrintableReport produces a static HTML document with one table
	// of upcoming and one of past bookings. Pure function of current state.
	RenderPrintableReport(userID string, now time.Time) (string, error)
}

// Actions describes which booking actions a client may offer for a status:
// non-terminal statuses allow both, Confirmed allows cancel only, and
// Cancelled leaves the cancel action disabled.
type Actions struct {
	CanConfirm bool `json:"canConfirm"`
	CanCancel  bool `json:"canCancel"`
}

// ActionsFor returns the action policy for a booking status.
func ActionsFor(status string) Actions {
	switch status {
	case models.BookingConfirmed:
		return Actions{CanCancel: true}
	case models.BookingCancelled:
		return Actions{}
	default:
		return Actions{CanConfirm: true, CanCancel: true}
	}
}
