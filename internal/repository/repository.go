// Package repository provides the persistence layer of the application.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db              *sqlx.DB
	customer        CustomerRepository
	connection      ConnectionRepository
	settings        SettingsRepository
	birthdayMessage BirthdayMessageRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:              db,
		customer:        NewCustomerRepository(db),
		connection:      NewConnectionRepository(db),
		settings:        NewSettingsRepository(db),
		birthdayMessage: NewBirthdayMessageRepository(db),
	}
}

func (r *repositoryImpl) Customer() CustomerRepository {
	return r.customer
}

func (r *repositoryImpl) Connection() ConnectionRepository {
	return r.connection
}

func (r *repositoryImpl) Settings() SettingsRepository {
	return r.settings
}

func (r *repositoryImpl) BirthdayMessage() BirthdayMessageRepository {
	return r.birthdayMessage
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
