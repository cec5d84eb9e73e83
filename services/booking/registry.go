package booking

import (
	"sync"
	"time"

	"bookit/models"
)

// InMemoryBookingRegistry holds each user's bookings in memory. Bookings
// survive for the lifetime of the process only.
type InMemoryBookingRegistry struct {
	mu     sync.RWMutex
	byUser map[string][]models.Booking
}

// NewInMemoryBookingRegistry creates an empty registry.
func NewInMemoryBookingRegistry() *InMemoryBookingRegistry {
	return &InMemoryBookingRegistry{
		byUser: make(map[string][]models.Booking),
	}
}

// seedBookings is the fixed sample data a user starts with.
func seedBookings() []models.Booking {
	return []models.Booking{
		{
			ID: 1,
			Person: models.BookingPerson{
				Name:  "Alice Johnson",
				Email: "alice@example.com",
				Phone: "123-456-7890",
			},
			Service: "Haircut",
			Date:    time.Date(2025, time.June, 1, 14, 0, 0, 0, time.Local),
			Status:  models.BookingPending,
		},
		{
			ID: 2,
			Person: models.BookingPerson{
				Name:  "Bob Smith",
				Email: "bob@example.com",
				Phone: "987-654-3210",
			},
			Service: "Dental Checkup",
			Date:    time.Date(2025, time.April, 10, 10, 0, 0, 0, time.Local),
			Status:  models.BookingConfirmed,
		},
		{
			ID: 3,
			Person: models.BookingPerson{
				Name:  "Carol Lee",
				Email: "carol@example.com",
				Phone: "555-222-1111",
			},
			Service: "Massage Therapy",
			Date:    time.Date(2025, time.March, 20, 16, 30, 0, 0, time.Local),
			Status:  models.BookingCancelled,
		},
	}
}

// bookingsLocked returns the user's slice, seeding it on first access.
// Callers must hold mu.
func (r *InMemoryBookingRegistry) bookingsLocked(userID string) []models.Booking {
	if _, ok := r.byUser[userID]; !ok {
		r.byUser[userID] = seedBookings()
	}
	return r.byUser[userID]
}

// List returns a copy of the user's bookings in stable order.
func (r *InMemoryBookingRegistry) List(userID string) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := r.bookingsLocked(userID)
	out := make([]models.Booking, len(bookings))
	copy(out, bookings)
	return out
}

// Confirm sets the matching booking's status to Confirmed.
func (r *InMemoryBookingRegistry) Confirm(userID string, id int) {
	r.setStatus(userID, id, models.BookingConfirmed)
}

// Cancel sets the matching booking's status to Cancelled.
func (r *InMemoryBookingRegistry) Cancel(userID string, id int) {
	r.setStatus(userID, id, models.BookingCancelled)
}

// setStatus is a direct setter: any status may replace any other, and an
// unknown id is a silent no-op.
func (r *InMemoryBookingRegistry) setStatus(userID string, id int, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := r.bookingsLocked(userID)
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			return
		}
	}
}

// Partition splits bookings into upcoming and past relative to now.
func (r *InMemoryBookingRegistry) Partition(userID string, now time.Time) (upcoming, past []models.Booking) {
	upcoming = []models.Booking{}
	past = []models.Booking{}
	for _, b := range r.List(userID) {
		if b.Upcoming(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}
	return upcoming, past
}
