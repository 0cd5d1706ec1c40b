package domain

import (
	"fmt"
	"slices"
	"time"
)

type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCancelled RideStatus = "cancelled"
	RideStatusCompleted RideStatus = "completed"
)

func ParseRideStatus(s string) (RideStatus, error) {
	switch st := RideStatus(s); st {
	case RideStatusActive, RideStatusCancelled, RideStatusCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown ride status %q", ErrValidation, s)
	}
}

// Ride is a scheduled trip with a fixed number of seats. Bookings are kept
// in booking order and BookedSeats always equals len(Bookings).
type Ride struct {
	ID                   string     `json:"id"`
	CategoryID           string     `json:"category_id"`
	AgencyID             string     `json:"agency_id"`
	From                 string     `json:"from"`
	To                   string     `json:"to"`
	DepartureTime        time.Time  `json:"departure_time"`
	EstimatedArrivalTime time.Time  `json:"estimated_arrival_time"`
	Seats                int        `json:"seats"`
	BookedSeats          int        `json:"booked_seats"`
	Price                float64    `json:"price"`
	Status               RideStatus `json:"status"`
	Bookings             []Booking  `json:"bookings"`
	Version              int64      `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type CreateRideInput struct {
	CategoryID    string
	AgencyID      string
	From          string
	To            string
	DepartureTime time.Time
	Seats         int
	Price         float64
}

// RideFilter narrows ride listings. Zero fields are ignored; Date matches
// the UTC calendar day of the departure.
type RideFilter struct {
	From          string
	To            string
	Status        RideStatus
	Date          time.Time
	ArrivalBefore time.Time
}

func (r *Ride) SeatCount() int {
	return len(r.Bookings)
}

func (r *Ride) AvailableSeats() int {
	if free := r.Seats - r.SeatCount(); free > 0 {
		return free
	}
	return 0
}

func (r *Ride) FindBooking(bookingID string) (*Booking, bool) {
	for i := range r.Bookings {
		if r.Bookings[i].ID == bookingID {
			return &r.Bookings[i], true
		}
	}
	return nil, false
}

// AddBooking admits a booking onto the ride. Callers must hold the ride's
// serialization scope (see ports.RideRepo.Update).
func (r *Ride) AddBooking(b Booking) error {
	if r.Status != RideStatusActive {
		return ErrRideNotActive
	}
	if _, ok := r.FindBooking(b.ID); ok {
		return ErrDuplicateBooking
	}
	if r.SeatCount() >= r.Seats {
		return ErrCapacityExceeded
	}

	r.Bookings = append(r.Bookings, b)
	r.BookedSeats = r.SeatCount()
	return nil
}

// SetCheckInStatus moves a booking along pending -> checked-in -> completed.
// Setting the current status again is a no-op.
func (r *Ride) SetCheckInStatus(bookingID string, status CheckInStatus) (*Booking, error) {
	b, ok := r.FindBooking(bookingID)
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.CheckInStatus == status {
		return b, nil
	}
	if !b.CheckInStatus.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.CheckInStatus, status)
	}

	b.CheckInStatus = status
	return b, nil
}

// CancelBooking removes a pending booking and frees its seat.
func (r *Ride) CancelBooking(bookingID string) (Booking, error) {
	idx := slices.IndexFunc(r.Bookings, func(b Booking) bool { return b.ID == bookingID })
	if idx < 0 {
		return Booking{}, ErrBookingNotFound
	}

	removed := r.Bookings[idx]
	if removed.CheckInStatus != CheckInPending {
		return Booking{}, ErrBookingNotPending
	}

	r.Bookings = slices.Delete(r.Bookings, idx, idx+1)
	r.BookedSeats = r.SeatCount()
	return removed, nil
}

func (r *Ride) Cancel(now time.Time) error {
	if r.Status != RideStatusActive {
		return ErrRideNotActive
	}
	r.Status = RideStatusCancelled
	r.UpdatedAt = now
	return nil
}

// Complete closes an active ride. Riders already checked in finish their trip;
// pending bookings stay pending as no-shows.
func (r *Ride) Complete(now time.Time) error {
	if r.Status != RideStatusActive {
		return ErrRideNotActive
	}
	for i := range r.Bookings {
		if r.Bookings[i].CheckInStatus == CheckInCheckedIn {
			r.Bookings[i].CheckInStatus = CheckInCompleted
		}
	}
	r.Status = RideStatusCompleted
	r.UpdatedAt = now
	return nil
}

// Clone returns a copy whose bookings slice is not shared with r.
func (r *Ride) Clone() *Ride {
	c := *r
	c.Bookings = slices.Clone(r.Bookings)
	return &c
}

func (r *Ride) BookingsOf(userID string) []Booking {
	var res []Booking
	for _, b := range r.Bookings {
		if b.UserID == userID {
			res = append(res, b)
		}
	}
	return res
}
