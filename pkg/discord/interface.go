package discord

import (
	"context"
	"fmt"
	"strings"

	"cryptobuzz-srv/pkg/log"
)

type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	SendInfo(ctx context.Context, title, description string) error
	ReportBug(ctx context.Context, message string) error
	SendPriceAlert(ctx context.Context, alert PriceAlert) error
	Close() error
}

func parseWebhookURL(webhookURL string) (id, token string, err error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if !strings.HasPrefix(webhookURL, webhookPrefix) {
		return "", "", errInvalidWebhookURL
	}
	parts := strings.SplitN(strings.TrimPrefix(webhookURL, webhookPrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: want .../webhooks/{id}/{token}", errInvalidWebhookURL)
	}
	return parts[0], parts[1], nil
}

// New builds a Discord webhook client from a full webhook URL.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	return newImpl(l, webhookPrefix, id, token, DefaultConfig())
}
