package ports

import "github.com/CynthiaM111/weshare-sub002/internal/domain"

type BookingMetrics interface {
	ObserveBooking(outcome string)
	ObserveCheckIn(status domain.CheckInStatus)
	ObserveOccupancy(ride *domain.Ride)
	ForgetRide(rideID string)
}
