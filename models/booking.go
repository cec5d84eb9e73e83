package models

import "time"

// Booking statuses. Confirm and Cancel are direct setters with no
// transition guard, so any status may follow any other.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// BookingPerson holds the contact details of the person who booked.
type BookingPerson struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking represents a single booking record.
type Booking struct {
	ID      int           `json:"id"`
	Person  BookingPerson `json:"person"`
	Service string        `json:"service"`
	Date    time.Time     `json:"date"`
	Status  string        `json:"status"`
}

// Upcoming reports whether the booking is at or after the given instant.
// Bookings dated exactly now count as upcoming.
func (b Booking) Upcoming(now time.Time) bool {
	return !b.Date.Before(now)
}
