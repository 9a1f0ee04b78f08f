package postgres

import (
	"strings"
	"time"

	"cryptobuzz-srv/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

const usersTable = "users"

var userColumns = []string{"id", "email", "created_at"}

// The no-op update makes RETURNING yield the existing row on conflict.
var createQuery = `INSERT INTO users (` + strings.Join(userColumns, ", ") + `) VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING ` + strings.Join(userColumns, ", ")

type userRow struct {
	ID        string    `boil:"id"`
	Email     string    `boil:"email"`
	CreatedAt time.Time `boil:"created_at"`
}

func (u userRow) toModel() model.User {
	return model.User{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func (r *implRepository) buildGetOneQuery(email string) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(userColumns...),
		qm.From(usersTable),
		qm.Where("email = ?", strings.ToLower(email)),
	}
}
