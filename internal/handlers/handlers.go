package handlers

import (
	"gorm.io/gorm"

	"github.com/shi-vam7902/Quick-poll-backend/internal/polls"
)

// Handler combines all handler types
type Handler struct {
	Auth *AuthHandler
	User *UserHandler
	Poll *PollHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB) *Handler {
	pollService := polls.NewService(polls.NewGormStore(db))

	return &Handler{
		Auth: NewAuthHandler(db),
		User: NewUserHandler(db),
		Poll: NewPollHandler(pollService),
	}
}
