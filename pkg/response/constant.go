package response

const (
	DefaultStackTraceDepth = 32
	MessageSuccess         = "Success"
	ValidationErrorCode    = 400
	ValidationErrorMsg     = "Validation error"
	DateFormat             = "2006-01-02"
	DateTimeFormat         = "2006-01-02 15:04:05"
	DiscordMaxMessageLen   = 1900
	reportBanner           = "============== CRYPTOBUZZ SERVICE ERROR =============="
	reportDivider          = "------------------------------------------------------"
)
