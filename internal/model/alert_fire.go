package model

import "time"

// AlertFire records one trigger. AlertID is a soft reference; the row outlives the alert.
type AlertFire struct {
	ID        string    `json:"id"`
	AlertID   string    `json:"alertId"`
	UserID    string    `json:"userId"`
	Symbol    string    `json:"symbol"`
	AlertType AlertType `json:"type"`
	Price     float64   `json:"price"`
	FiredAt   time.Time `json:"firedAt"`
}
