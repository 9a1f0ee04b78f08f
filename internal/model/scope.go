package model

// Scope is the caller identity threaded through every usecase and repository call.
type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// IsZero reports whether no identity was resolved.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}
