package discord

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// SendEmbed sends a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := &Embed{
		Title:       truncate(options.Title, MaxTitleLen),
		Description: truncate(options.Description, MaxDescriptionLen),
		URL:         options.URL,
		Color:       colorForType(options.Type),
		Fields:      options.Fields,
		Footer:      options.Footer,
	}
	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.UTC().Format(time.RFC3339)
	}
	if err := d.validateEmbedLength(embed); err != nil {
		return err
	}

	payload := &WebhookPayload{
		Embeds:    []Embed{*embed},
		Username:  options.Username,
		AvatarURL: options.AvatarURL,
	}
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}
	if payload.AvatarURL == "" {
		payload.AvatarURL = d.config.DefaultAvatarURL
	}
	return d.sendWithRetry(ctx, payload)
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), MaxFieldValueLen)})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

// ReportBug posts an internal error report as a code block.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       ReportBugTitle,
		Description: fmt.Sprintf("```%s```", truncate(message, MaxDescriptionLen-6)),
		Timestamp:   time.Now(),
	})
}

// SendPriceAlert posts a fired alert, with the latest headline for the symbol when known.
func (d *discordImpl) SendPriceAlert(ctx context.Context, alert PriceAlert) error {
	fields := []EmbedField{
		{Name: "Symbol", Value: alert.Symbol, Inline: true},
		{Name: "Price", Value: "$" + formatPrice(alert.Price), Inline: true},
		{Name: "Type", Value: alert.AlertType, Inline: true},
	}
	if alert.Condition != "" {
		fields = append(fields, EmbedField{Name: "Condition", Value: truncate(alert.Condition, MaxFieldValueLen)})
	}
	if alert.Headline != "" {
		fields = append(fields, EmbedField{Name: "Latest news", Value: truncate(alert.Headline, MaxFieldValueLen)})
	}

	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       fmt.Sprintf("%s alert triggered", alert.Symbol),
		Description: fmt.Sprintf("Alert `%s` fired at $%s", alert.AlertID, formatPrice(alert.Price)),
		URL:         alert.NewsURL,
		Fields:      fields,
		Footer:      &EmbedFooter{Text: "CryptoBuzz alerts"},
		Timestamp:   alert.FiredAt,
	})
}

// formatPrice keeps sub-dollar prices readable.
func formatPrice(p float64) string {
	switch {
	case p >= 1000:
		return strconv.FormatFloat(p, 'f', 2, 64)
	case p >= 1:
		return strconv.FormatFloat(p, 'f', 4, 64)
	default:
		return strconv.FormatFloat(p, 'f', 8, 64)
	}
}
