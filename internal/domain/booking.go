package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a user's claim on one seat number of one schedule. A booking is
// created confirmed and the only transition is confirmed -> cancelled.
// Cancelled bookings are kept forever.
type Booking struct {
	ID           string        `json:"id"`
	ScheduleID   string        `json:"schedule_id"`
	UserID       string        `json:"user_id"`
	SeatNumber   int           `json:"seat_number"`
	Status       BookingStatus `json:"status"`
	BookedAt     time.Time     `json:"booked_at"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`
	ReminderSent bool          `json:"reminder_sent"`
}
