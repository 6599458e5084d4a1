package domain

import "errors"

var (
	ErrInvalidReminderType = errors.New("invalid reminder type")
	ErrInvalidDueTime      = errors.New("invalid due time: expected HH:MM")
	ErrSettingsNotFound    = errors.New("messaging settings not found")
	ErrTaskNotFound        = errors.New("personal task not found")
	ErrRunNotFound         = errors.New("reminder run not found")
)
