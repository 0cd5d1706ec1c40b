package domain

import "time"

type BookingEventType string

const (
	EventBookingCreated        BookingEventType = "booking.created"
	EventBookingCancelled      BookingEventType = "booking.cancelled"
	EventBookingCheckInChanged BookingEventType = "booking.checkin_changed"
	EventRideCancelled         BookingEventType = "ride.cancelled"
	EventRideCompleted         BookingEventType = "ride.completed"
)

// BookingEvent is published after a ride's ledger changed.
type BookingEvent struct {
	Type          BookingEventType `json:"type"`
	RideID        string           `json:"ride_id"`
	BookingID     string           `json:"booking_id,omitempty"`
	UserID        string           `json:"user_id,omitempty"`
	CheckInStatus CheckInStatus    `json:"check_in_status,omitempty"`
	BookedSeats   int              `json:"booked_seats"`
	Seats         int              `json:"seats"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

func NewRideEvent(t BookingEventType, r *Ride, now time.Time) BookingEvent {
	return BookingEvent{
		Type:        t,
		RideID:      r.ID,
		BookedSeats: r.BookedSeats,
		Seats:       r.Seats,
		OccurredAt:  now,
	}
}

func NewBookingEvent(t BookingEventType, r *Ride, b Booking, now time.Time) BookingEvent {
	e := NewRideEvent(t, r, now)
	e.BookingID = b.ID
	e.UserID = b.UserID
	e.CheckInStatus = b.CheckInStatus
	return e
}
