package polls

import "errors"

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrPollInactive  = errors.New("poll is not active")
	ErrInvalidOption = errors.New("invalid option")
	ErrInvalidPoll   = errors.New("question and at least 2 distinct options required")
)
