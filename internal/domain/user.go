package domain

import "time"

// User is a rider who books seats on rides.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Phone          string    `json:"phone"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username       string
	Phone          string
	TelegramChatID *int64
}
