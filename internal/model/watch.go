package model

import "time"

type Watch struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Symbol    string    `json:"symbol"`
	CmcID     *int      `json:"cmcId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
