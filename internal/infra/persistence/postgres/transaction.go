// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"coffeeshop/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories that share one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) CoffeeRepo() repository.CoffeeRepository { return NewCoffeeRepository(r.tx) }
func (r txRepositories) FlavorRepo() repository.FlavorRepository { return NewFlavorRepository(r.tx) }
func (r txRepositories) EventRepo() repository.EventRepository   { return NewEventRepository(r.tx) }

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise. A panic in
// fn rolls back before propagating. Errors returned by fn are passed
// through unchanged so callers can still match domain errors.
func (m *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Wrap(err, "transaction failed")
	}
}
