package dto

import (
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AverageTime string `json:"average_time"`
	CreatedAt   string `json:"created_at"`
}

type BookingResponse struct {
	BookingID     string `json:"booking_id"`
	UserID        string `json:"user_id"`
	CheckInStatus string `json:"check_in_status"`
	CreatedAt     string `json:"created_at"`
}

type RideResponse struct {
	ID                   string            `json:"id"`
	CategoryID           string            `json:"category_id"`
	AgencyID             string            `json:"agency_id,omitempty"`
	From                 string            `json:"from"`
	To                   string            `json:"to"`
	DepartureTime        string            `json:"departure_time"`
	EstimatedArrivalTime string            `json:"estimated_arrival_time"`
	Seats                int               `json:"seats"`
	BookedSeats          int               `json:"booked_seats"`
	AvailableSeats       int               `json:"available_seats"`
	Price                float64           `json:"price"`
	Status               string            `json:"status"`
	Bookings             []BookingResponse `json:"bookings"`
}

type RouteGroupResponse struct {
	From        string         `json:"from"`
	To          string         `json:"to"`
	DateKey     string         `json:"date_key"`
	DisplayDate string         `json:"display_date"`
	Rides       []RideResponse `json:"rides"`
}

type RiderBookingResponse struct {
	BookingResponse
	RideID        string `json:"ride_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departure_time"`
	RideStatus    string `json:"ride_status"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		AverageTime: c.AverageTime.String(),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:     b.ID,
		UserID:        b.UserID,
		CheckInStatus: string(b.CheckInStatus),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToRideResponse(r *domain.Ride) RideResponse {
	bookings := make([]BookingResponse, 0, len(r.Bookings))
	for _, b := range r.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return RideResponse{
		ID:                   r.ID,
		CategoryID:           r.CategoryID,
		AgencyID:             r.AgencyID,
		From:                 r.From,
		To:                   r.To,
		DepartureTime:        r.DepartureTime.Format(time.RFC3339),
		EstimatedArrivalTime: r.EstimatedArrivalTime.Format(time.RFC3339),
		Seats:                r.Seats,
		BookedSeats:          r.BookedSeats,
		AvailableSeats:       r.AvailableSeats(),
		Price:                r.Price,
		Status:               string(r.Status),
		Bookings:             bookings,
	}
}

func ToRideResponses(rides []*domain.Ride) []RideResponse {
	res := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		res = append(res, ToRideResponse(r))
	}
	return res
}

func ToRouteGroupResponse(g domain.RouteGroup) RouteGroupResponse {
	return RouteGroupResponse{
		From:        g.From,
		To:          g.To,
		DateKey:     g.DateKey,
		DisplayDate: g.DisplayDate,
		Rides:       ToRideResponses(g.Rides),
	}
}

func ToRiderBookingResponse(b domain.RiderBooking) RiderBookingResponse {
	return RiderBookingResponse{
		BookingResponse: ToBookingResponse(&b.Booking),
		RideID:          b.RideID,
		From:            b.From,
		To:              b.To,
		DepartureTime:   b.DepartureTime.Format(time.RFC3339),
		RideStatus:      string(b.RideStatus),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
