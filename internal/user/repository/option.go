package repository

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	Email string
}

// GetOneOptions contains options for getting a single user.
type GetOneOptions struct {
	Email string
}
