package response

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"cryptobuzz-srv/pkg/discord"
	"cryptobuzz-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

var reportLogger atomic.Value

func init() {
	SetLogger(log.NewNop())
}

// SetLogger sets the logger used for failures of the asynchronous bug reports.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNop()
	}
	reportLogger.Store(loggerBox{l})
}

type loggerBox struct{ log.Logger }

func logger() log.Logger {
	return reportLogger.Load().(loggerBox).Logger
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}

	go func() {
		ctx := context.Background()
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(ctx, msg); err != nil {
				logger().Errorf(ctx, "pkg.response.sendDiscordMessageAsync.ReportBug: %v", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string

	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	if c == nil || c.Request == nil {
		return fmt.Sprintf("%s\nError   : %s\n", reportBanner, errString)
	}

	var bodyBytes []byte
	if c.Request.Body != nil {
		b, err := io.ReadAll(c.Request.Body)
		if err == nil {
			bodyBytes = b
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
	}

	var sb strings.Builder
	sb.WriteString(reportBanner + "\n")
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.Path)
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	sb.WriteString(reportDivider + "\n")

	if params := c.Request.URL.Query().Encode(); params != "" {
		fmt.Fprintf(&sb, "Params  : %s\n", params)
	}

	if len(bodyBytes) > 0 {
		sb.WriteString("Body    :\n")
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, bodyBytes, "    ", "  "); err == nil {
			sb.WriteString(pretty.String() + "\n")
		} else {
			sb.WriteString("    " + string(bodyBytes) + "\n")
		}
		sb.WriteString(reportDivider + "\n")
	}

	fmt.Fprintf(&sb, "Error   : %s\n", errString)

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}

	sb.WriteString(strings.Repeat("=", len(reportBanner)) + "\n")
	return sb.String()
}
