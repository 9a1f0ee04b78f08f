package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Scope returns the identity of the user.
func (u User) Scope() Scope {
	return Scope{UserID: u.ID, Email: u.Email}
}
