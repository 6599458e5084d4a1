package repository

import "errors"

var (
	ErrInvalidRunData      = errors.New("invalid run record data")
	ErrInvalidReminderType = errors.New("reminder type has no marker column")
	ErrInvalidTaskData     = errors.New("invalid personal task data")
)
