package stream

import (
	"io"
	"time"

	"cryptobuzz-srv/internal/model"
)

// --- Events (server to client) ---

type EventType string

const (
	EventPriceUpdate    EventType = "price_update"
	EventAlertTriggered EventType = "alert_triggered"
)

type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

type PriceUpdate struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"`
}

type AlertTriggered struct {
	AlertID string          `json:"alertId"`
	Symbol  string          `json:"symbol"`
	Price   float64         `json:"price"`
	Type    model.AlertType `json:"type"`
}

// --- Client messages ---

type ClientMessageType string

const (
	ClientSubscribe   ClientMessageType = "subscribe"
	ClientUnsubscribe ClientMessageType = "unsubscribe"
)

type ClientMessage struct {
	Type    ClientMessageType `json:"type"`
	Symbols []string          `json:"symbols"`
}

// --- UseCase inputs ---

// Socket is the subset of *websocket.Conn the stream needs.
type Socket interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	NextWriter(messageType int) (io.WriteCloser, error)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	SetReadLimit(limit int64)
	Close() error
}

type ConnectionInput struct {
	UserID string
	Conn   Socket
}

type SubscribeInput struct {
	ConnectionID string
	Symbols      []string
}

type AlertTriggeredInput struct {
	AlertID string
	Symbol  string
	Price   float64
	Type    model.AlertType
}

// --- UseCase outputs ---

type HubStats struct {
	ActiveConnections int   `json:"active_connections"`
	TotalUniqueUsers  int   `json:"total_unique_users"`
	WatchedSymbols    int   `json:"watched_symbols"`
	MessagesSent      int64 `json:"messages_sent"`
	MessagesDropped   int64 `json:"messages_dropped"`
}
