package domain

import (
	"fmt"
	"time"
)

type CheckInStatus string

const (
	CheckInPending   CheckInStatus = "pending"
	CheckInCheckedIn CheckInStatus = "checked-in"
	CheckInCompleted CheckInStatus = "completed"
)

var checkInTransitions = map[CheckInStatus]CheckInStatus{
	CheckInPending:   CheckInCheckedIn,
	CheckInCheckedIn: CheckInCompleted,
}

func ParseCheckInStatus(s string) (CheckInStatus, error) {
	switch st := CheckInStatus(s); st {
	case CheckInPending, CheckInCheckedIn, CheckInCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown check-in status %q", ErrValidation, s)
	}
}

// CanTransitionTo reports whether a booking may move from s to next.
// Only forward steps are allowed and completed is terminal.
func (s CheckInStatus) CanTransitionTo(next CheckInStatus) bool {
	return checkInTransitions[s] == next
}

// Booking is one rider's seat on a ride.
type Booking struct {
	ID            string        `json:"booking_id"`
	UserID        string        `json:"user_id"`
	CheckInStatus CheckInStatus `json:"check_in_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

func NewBooking(id, userID string, now time.Time) Booking {
	return Booking{
		ID:            id,
		UserID:        userID,
		CheckInStatus: CheckInPending,
		CreatedAt:     now,
	}
}

// RiderBooking is a booking seen from the rider's side, joined with its ride.
type RiderBooking struct {
	Booking       Booking    `json:"booking"`
	RideID        string     `json:"ride_id"`
	From          string     `json:"from"`
	To            string     `json:"to"`
	DepartureTime time.Time  `json:"departure_time"`
	RideStatus    RideStatus `json:"ride_status"`
}

// BookingDiff is the change set between two snapshots of a ride's bookings.
type BookingDiff struct {
	Added   []Booking
	Changed []Booking
	Removed []Booking
}

func (d BookingDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Changed) == 0 && len(d.Removed) == 0
}

// DiffBookings compares bookings by id. Changed holds entries whose
// check-in status differs, in the order of after.
func DiffBookings(before, after []Booking) BookingDiff {
	var diff BookingDiff

	prev := make(map[string]Booking, len(before))
	for _, b := range before {
		prev[b.ID] = b
	}

	seen := make(map[string]struct{}, len(after))
	for _, b := range after {
		seen[b.ID] = struct{}{}
		old, ok := prev[b.ID]
		switch {
		case !ok:
			diff.Added = append(diff.Added, b)
		case old.CheckInStatus != b.CheckInStatus:
			diff.Changed = append(diff.Changed, b)
		}
	}

	for _, b := range before {
		if _, ok := seen[b.ID]; !ok {
			diff.Removed = append(diff.Removed, b)
		}
	}

	return diff
}
