package http

import (
	"net/http"

	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/pkg/errors"
	"cryptobuzz-srv/pkg/response"
)

var (
	errWrongBody     = errors.NewHTTPError(120001, "Wrong body", http.StatusBadRequest)
	errWrongQuery    = errors.NewHTTPError(120002, "Wrong query", http.StatusBadRequest)
	errAlertNotFound = errors.NewHTTPError(120003, "Alert not found", http.StatusNotFound)
	errInvalidType   = errors.NewHTTPError(120004, "Invalid alert type", http.StatusBadRequest)
	errInvalidSymbol = errors.NewHTTPError(120005, "Invalid alert symbol", http.StatusBadRequest)
	errInvalidParams = errors.NewHTTPError(120006, "Invalid alert params", http.StatusBadRequest)
	errInvalidSnooze = errors.NewHTTPError(120007, "Snooze must be between 1 and 1440 minutes", http.StatusBadRequest)
	errNothingToDo   = errors.NewHTTPError(120008, "Nothing to update", http.StatusBadRequest)
)

var errMap = response.ErrorMapping{
	alert.ErrAlertNotFound: errAlertNotFound,
	alert.ErrInvalidType:   errInvalidType,
	alert.ErrInvalidSymbol: errInvalidSymbol,
	alert.ErrInvalidParams: errInvalidParams,
	alert.ErrInvalidSnooze: errInvalidSnooze,
	alert.ErrNothingToDo:   errNothingToDo,
}
