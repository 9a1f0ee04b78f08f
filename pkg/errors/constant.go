package errors

const (
	// ValidationCode is the error_code returned for request validation failures.
	ValidationCode = 400
	// InternalCode is the error_code returned for unmapped failures.
	InternalCode = 500
)

const (
	MessageUnauthorized = "Unauthorized"
	MessageForbidden    = "Forbidden"
	MessageInternal     = "Something went wrong"
)
