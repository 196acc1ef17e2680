package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{
			name:   "gorm duplicated key",
			err:    errors.Wrap(gorm.ErrDuplicatedKey, "insert flavor"),
			unique: true,
		},
		{
			name:   "raw unique violation",
			err:    errors.WithStack(&pgconn.PgError{Code: pgUniqueViolation}),
			unique: true,
		},
		{
			name:       "gorm foreign key",
			err:        gorm.ErrForeignKeyViolated,
			foreignKey: true,
		},
		{
			name:       "raw foreign key violation",
			err:        &pgconn.PgError{Code: pgForeignKeyViolation},
			foreignKey: true,
		},
		{
			name:    "raw not null violation",
			err:     &pgconn.PgError{Code: pgNotNullViolation},
			notNull: true,
		},
		{
			name:    "not null message",
			err:     errors.New(`null value in column "name" of relation "coffees" violates not-null constraint`),
			notNull: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection reset by peer"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
