package plan

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func planColumns() []string {
	return []string{"id", "name", "description", "price", "duration_days", "is_active", "created_at", "updated_at"}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	price := decimal.NewFromInt(1200)
	mock.ExpectQuery(`INSERT INTO plans.*`).
		WithArgs("Monthly", "30-day membership", price, 30).
		WillReturnRows(sqlmock.NewRows(planColumns()).
			AddRow(1, "Monthly", "30-day membership", "1200", 30, true, time.Now(), time.Now()))

	p, err := repo.Create(context.Background(), "Monthly", "30-day membership", price, 30)
	assert.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, 30, p.DurationDays)
	assert.True(t, price.Equal(p.Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT id, name, description, price, duration_days, is_active, created_at, updated_at\s+FROM plans\s+WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(planColumns()).
			AddRow(1, "Monthly", "", "1200", 30, true, time.Now(), time.Now()))

	p, err := repo.GetByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Monthly", p.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ActiveOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`SELECT .* FROM plans\s+WHERE is_active = TRUE.*`).
		WillReturnRows(sqlmock.NewRows(planColumns()).
			AddRow(1, "Monthly", "", "1200", 30, true, time.Now(), time.Now()).
			AddRow(2, "Quarterly", "", "3000", 90, true, time.Now(), time.Now()))

	plans, err := repo.List(context.Background(), false)
	assert.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Deactivate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectExec(`UPDATE plans\s+SET is_active = FALSE.*`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Deactivate(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
