package alert

import "errors"

var (
	ErrAlertNotFound = errors.New("alert not found")
	ErrInvalidType   = errors.New("invalid alert type")
	ErrInvalidSymbol = errors.New("invalid alert symbol")
	ErrInvalidParams = errors.New("invalid alert params")
	ErrInvalidSnooze = errors.New("snooze must be between 1 and 1440 minutes")
	ErrNothingToDo   = errors.New("update has no changes")
)
