package models

import (
	"time"

	"github.com/lib/pq"
)

// Poll is the persistent poll record. Vote counts are NOT part of it;
// they live in the in-memory tally and reset on restart.
type Poll struct {
	ID       int            `gorm:"primaryKey" json:"-"`
	PollID   string         `gorm:"uniqueIndex;not null" json:"pollId"`
	Question string         `gorm:"not null" json:"question"`
	Options  pq.StringArray `gorm:"type:text[];not null" json:"options"`
	Active   bool           `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// UpdatePollRequest carries a partial update; nil fields are left untouched.
type UpdatePollRequest struct {
	Question *string  `json:"question"`
	Options  []string `json:"options"`
	Active   *bool    `json:"active"`
}

type VoteRequest struct {
	PollID string `json:"pollId"`
	Option string `json:"option"`
}
