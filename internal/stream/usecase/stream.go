package usecase

import (
	"context"
	"fmt"
	"slices"

	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/internal/price"
	"cryptobuzz-srv/internal/stream"
	postgresPkg "cryptobuzz-srv/pkg/postgre"

	"github.com/goccy/go-json"
)

func (uc *implUseCase) Register(ctx context.Context, input stream.ConnectionInput) error {
	if input.Conn == nil {
		return stream.ErrInvalidMessage
	}

	select {
	case <-uc.hub.done:
		return stream.ErrHubClosed
	default:
	}

	c := newConnection(postgresPkg.NewUUID(), input.UserID, uc.hub, input.Conn, connConfig{
		pongWait:       uc.cfg.PongWait,
		pingPeriod:     uc.cfg.PingInterval,
		writeWait:      uc.cfg.WriteWait,
		maxMessageSize: uc.cfg.MaxMessageSize,
	}, uc.l)
	c.onMessage = uc.handleClientMessage

	select {
	case uc.hub.register <- c:
	case <-uc.hub.done:
		return stream.ErrHubClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	c.Start()
	return nil
}

func (uc *implUseCase) Subscribe(ctx context.Context, input stream.SubscribeInput) error {
	c, ok := uc.hub.get(input.ConnectionID)
	if !ok {
		return stream.ErrConnectionNotFound
	}

	symbols := price.NormalizeSymbols(input.Symbols)
	c.addInterest(symbols)
	for _, s := range symbols {
		uc.AddWatchedSymbol(ctx, s)
	}
	return nil
}

// Unsubscribe only narrows the connection's interest. The watched set never shrinks.
func (uc *implUseCase) Unsubscribe(ctx context.Context, input stream.SubscribeInput) error {
	c, ok := uc.hub.get(input.ConnectionID)
	if !ok {
		return stream.ErrConnectionNotFound
	}
	c.removeInterest(price.NormalizeSymbols(input.Symbols))
	return nil
}

func (uc *implUseCase) AddWatchedSymbol(ctx context.Context, symbol string) {
	s, ok := price.NormalizeSymbol(symbol)
	if !ok {
		uc.l.Debugf(ctx, "internal.stream.usecase.AddWatchedSymbol: ignoring %q", symbol)
		return
	}
	uc.watchedMu.Lock()
	uc.watched[s] = struct{}{}
	uc.watchedMu.Unlock()
}

func (uc *implUseCase) WatchedSymbols(ctx context.Context) []string {
	uc.watchedMu.RLock()
	out := make([]string, 0, len(uc.watched))
	for s := range uc.watched {
		out = append(out, s)
	}
	uc.watchedMu.RUnlock()
	slices.Sort(out)
	return out
}

func (uc *implUseCase) Broadcast(ctx context.Context, event stream.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "internal.stream.usecase.Broadcast.Marshal: %v", err)
		return err
	}
	n := uc.hub.broadcast(data)
	metrics.StreamBroadcasts.WithLabelValues(string(event.Type)).Inc()
	uc.l.Debugf(ctx, "internal.stream.usecase.Broadcast: %s delivered to %d connections", event.Type, n)
	return nil
}

func (uc *implUseCase) BroadcastAlert(ctx context.Context, input stream.AlertTriggeredInput) error {
	event := stream.Event{
		Type: stream.EventAlertTriggered,
		Data: stream.AlertTriggered{
			AlertID: input.AlertID,
			Symbol:  input.Symbol,
			Price:   input.Price,
			Type:    input.Type,
		},
	}

	if uc.relay != nil {
		data, err := json.Marshal(event)
		if err != nil {
			uc.l.Errorf(ctx, "internal.stream.usecase.BroadcastAlert.Marshal: %v", err)
			return err
		}
		err = uc.relay.Publish(ctx, data)
		if err == nil {
			return nil
		}
		uc.l.Warnf(ctx, "internal.stream.usecase.BroadcastAlert.relay.Publish: broadcasting locally: %v", err)
	}

	return uc.Broadcast(ctx, event)
}

func (uc *implUseCase) RelayEvent(ctx context.Context, raw []byte) error {
	var head struct {
		Type stream.EventType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return fmt.Errorf("%w: %v", stream.ErrInvalidMessage, err)
	}
	switch head.Type {
	case stream.EventPriceUpdate, stream.EventAlertTriggered:
	default:
		return fmt.Errorf("%w: unknown event type %q", stream.ErrInvalidMessage, head.Type)
	}

	uc.hub.broadcast(raw)
	metrics.StreamBroadcasts.WithLabelValues(string(head.Type)).Inc()
	return nil
}

// PublishPrices fetches the watched set and broadcasts one price_update sorted by symbol.
func (uc *implUseCase) PublishPrices(ctx context.Context) error {
	symbols := uc.WatchedSymbols(ctx)
	if len(symbols) == 0 {
		return nil
	}

	o, err := uc.prices.GetPrices(ctx, price.GetPricesInput{Symbols: symbols})
	if err != nil {
		uc.l.Errorf(ctx, "internal.stream.usecase.PublishPrices.GetPrices: %v", err)
		return err
	}
	if len(o.Prices) == 0 {
		uc.l.Warnf(ctx, "internal.stream.usecase.PublishPrices: no prices for %d watched symbols", len(symbols))
		return nil
	}

	ts := uc.clock().UnixMilli()
	updates := make([]stream.PriceUpdate, 0, len(o.Prices))
	for sym, snap := range o.Prices {
		updates = append(updates, stream.PriceUpdate{Symbol: sym, Price: snap.Price, Timestamp: ts})
	}
	slices.SortFunc(updates, func(a, b stream.PriceUpdate) int {
		switch {
		case a.Symbol < b.Symbol:
			return -1
		case a.Symbol > b.Symbol:
			return 1
		}
		return 0
	})

	return uc.Broadcast(ctx, stream.Event{Type: stream.EventPriceUpdate, Data: updates})
}

func (uc *implUseCase) GetStats(ctx context.Context) stream.HubStats {
	active, users, sent, dropped := uc.hub.stats()

	uc.watchedMu.RLock()
	watched := len(uc.watched)
	uc.watchedMu.RUnlock()

	return stream.HubStats{
		ActiveConnections: active,
		TotalUniqueUsers:  users,
		WatchedSymbols:    watched,
		MessagesSent:      sent,
		MessagesDropped:   dropped,
	}
}
