package domain

import "errors"

var (
	ErrRideNotFound     = errors.New("ride not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCategoryNotFound = errors.New("category not found")
)

var (
	ErrCapacityExceeded  = errors.New("ride has no available seats")
	ErrDuplicateBooking  = errors.New("booking id already present on ride")
	ErrInvalidTransition = errors.New("invalid check-in status transition")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrRideNotActive     = errors.New("ride is not active")
	ErrRideHasBookings   = errors.New("ride has bookings")
	ErrConcurrentUpdate  = errors.New("ride was modified concurrently")
)

var (
	ErrUsernameTaken  = errors.New("username is already taken")
	ErrCategoryExists = errors.New("category already exists")
)

var (
	ErrValidation = errors.New("validation error")
)
