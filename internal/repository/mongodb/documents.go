package mongodb

import (
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

type bookingDoc struct {
	ID            string    `bson:"bookingId"`
	UserID        string    `bson:"userId"`
	CheckInStatus string    `bson:"checkInStatus"`
	CreatedAt     time.Time `bson:"createdAt"`
}

type rideDoc struct {
	ID                   string       `bson:"_id"`
	CategoryID           string       `bson:"categoryId"`
	AgencyID             string       `bson:"agencyId"`
	From                 string       `bson:"from"`
	To                   string       `bson:"to"`
	DepartureTime        time.Time    `bson:"departureTime"`
	EstimatedArrivalTime time.Time    `bson:"estimatedArrivalTime"`
	Seats                int          `bson:"seats"`
	BookedSeats          int          `bson:"bookedSeats"`
	Price                float64      `bson:"price"`
	Status               string       `bson:"status"`
	Bookings             []bookingDoc `bson:"bookings"`
	Version              int64        `bson:"version"`
	CreatedAt            time.Time    `bson:"createdAt"`
	UpdatedAt            time.Time    `bson:"updatedAt"`
}

type userDoc struct {
	ID             string    `bson:"_id"`
	Username       string    `bson:"username"`
	Phone          string    `bson:"phone"`
	TelegramChatID *int64    `bson:"telegramChatId,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
}

type categoryDoc struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	AverageTimeSec int64     `bson:"averageTimeSec"`
	CreatedAt      time.Time `bson:"createdAt"`
}

func toRideDoc(r *domain.Ride) rideDoc {
	bookings := make([]bookingDoc, 0, len(r.Bookings))
	for _, b := range r.Bookings {
		bookings = append(bookings, bookingDoc{
			ID:            b.ID,
			UserID:        b.UserID,
			CheckInStatus: string(b.CheckInStatus),
			CreatedAt:     b.CreatedAt,
		})
	}

	return rideDoc{
		ID:                   r.ID,
		CategoryID:           r.CategoryID,
		AgencyID:             r.AgencyID,
		From:                 r.From,
		To:                   r.To,
		DepartureTime:        r.DepartureTime,
		EstimatedArrivalTime: r.EstimatedArrivalTime,
		Seats:                r.Seats,
		BookedSeats:          len(bookings),
		Price:                r.Price,
		Status:               string(r.Status),
		Bookings:             bookings,
		Version:              r.Version,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func (d rideDoc) toDomain() *domain.Ride {
	bookings := make([]domain.Booking, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, domain.Booking{
			ID:            b.ID,
			UserID:        b.UserID,
			CheckInStatus: domain.CheckInStatus(b.CheckInStatus),
			CreatedAt:     b.CreatedAt.UTC(),
		})
	}

	return &domain.Ride{
		ID:                   d.ID,
		CategoryID:           d.CategoryID,
		AgencyID:             d.AgencyID,
		From:                 d.From,
		To:                   d.To,
		DepartureTime:        d.DepartureTime.UTC(),
		EstimatedArrivalTime: d.EstimatedArrivalTime.UTC(),
		Seats:                d.Seats,
		BookedSeats:          d.BookedSeats,
		Price:                d.Price,
		Status:               domain.RideStatus(d.Status),
		Bookings:             bookings,
		Version:              d.Version,
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		ID:             u.ID,
		Username:       u.Username,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID,
		Username:       d.Username,
		Phone:          d.Phone,
		TelegramChatID: d.TelegramChatID,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

func toCategoryDoc(c *domain.Category) categoryDoc {
	return categoryDoc{
		ID:             c.ID,
		Name:           c.Name,
		AverageTimeSec: int64(c.AverageTime / time.Second),
		CreatedAt:      c.CreatedAt,
	}
}

func (d categoryDoc) toDomain() *domain.Category {
	return &domain.Category{
		ID:          d.ID,
		Name:        d.Name,
		AverageTime: time.Duration(d.AverageTimeSec) * time.Second,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}
