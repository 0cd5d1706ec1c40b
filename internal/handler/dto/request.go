package dto

type CreateCategoryRequest struct {
	Name               string `json:"name"                 binding:"required"`
	AverageTimeMinutes int    `json:"average_time_minutes" binding:"required,gt=0"`
}

type CreateRideRequest struct {
	CategoryID    string  `json:"category_id"    binding:"required,uuid"`
	AgencyID      string  `json:"agency_id"`
	From          string  `json:"from"           binding:"required"`
	To            string  `json:"to"             binding:"required"`
	DepartureTime string  `json:"departure_time" binding:"required"`
	Seats         int     `json:"seats"          binding:"required,gt=0"`
	Price         float64 `json:"price"          binding:"gte=0"`
}

// ListRidesQuery holds the optional ride listing filters; date is YYYY-MM-DD.
type ListRidesQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Status string `form:"status"`
	Date   string `form:"date"`
}

type BookRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type SetCheckInStatusRequest struct {
	CheckInStatus string `json:"check_in_status" binding:"required"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
