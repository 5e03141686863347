package repository

import (
	"errors"

	"resort-booking/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Resort ResortRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Resort: NewResortRepository(db, log),
	}
}

// IsUniqueViolation reports whether err is a unique index violation.
// The store's indexes are the last line of defense for email/phone
// uniqueness when two registrations race.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// UniqueConstraint returns the name of the violated unique index, or ""
// when err is not a unique violation. Callers use it to tell an email
// conflict from a phone conflict.
func UniqueConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}
