package usecase

import (
	"context"

	"cryptobuzz-srv/internal/stream"

	"github.com/goccy/go-json"
)

// handleClientMessage applies one subscribe/unsubscribe frame. Malformed frames are logged and ignored.
func (uc *implUseCase) handleClientMessage(c *Connection, raw []byte) {
	ctx := context.Background()

	var msg stream.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		uc.l.Warnf(ctx, "internal.stream.usecase.handleClientMessage: connection %s sent malformed message: %v", c.id, err)
		return
	}

	input := stream.SubscribeInput{ConnectionID: c.id, Symbols: msg.Symbols}
	var err error
	switch msg.Type {
	case stream.ClientSubscribe:
		err = uc.Subscribe(ctx, input)
	case stream.ClientUnsubscribe:
		err = uc.Unsubscribe(ctx, input)
	default:
		uc.l.Warnf(ctx, "internal.stream.usecase.handleClientMessage: connection %s sent unknown type %q", c.id, msg.Type)
		return
	}
	if err != nil {
		uc.l.Warnf(ctx, "internal.stream.usecase.handleClientMessage: %s: %v", msg.Type, err)
	}
}
