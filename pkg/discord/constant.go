package discord

import "time"

const (
	webhookPrefix      = "https://discord.com/api/webhooks/"
	webhookURLTemplate = "%s%s/%s"

	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorRed    = 15158332
	ColorOrange = 15105570

	ColorInfo    = ColorBlue
	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorError   = ColorRed

	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "CryptoBuzz"
	UserAgent       = "CryptoBuzz-Bot/1.0"
	ReportBugTitle  = "CryptoBuzz Service Error Report"
)
