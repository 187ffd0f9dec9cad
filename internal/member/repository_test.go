package member

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gymdesk/internal/billing"
)

func memberColumns() []string {
	return []string{"id", "gym_id", "name", "phone", "email", "created_at", "updated_at"}
}

func membershipColumns() []string {
	return []string{"id", "member_id", "plan_id", "renewal_type", "regular_fees", "pt_fees", "start_date", "end_date", "created_at"}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	mock.ExpectQuery(`INSERT INTO members.*`).
		WithArgs(1, "Asha Patil", "9876543210", "asha@example.com").
		WillReturnRows(sqlmock.NewRows(memberColumns()).
			AddRow(1, 1, "Asha Patil", "9876543210", "asha@example.com", time.Now(), time.Now()))

	m, err := repo.Create(context.Background(), 1, "Asha Patil", "9876543210", "asha@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, "Asha Patil", m.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateMembership_WithPTFees(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	start := time.Now()
	end := start.AddDate(0, 0, 30)
	regular := decimal.NewFromInt(1500)
	pt := decimal.NewFromInt(2000)

	mock.ExpectQuery(`INSERT INTO memberships.*`).
		WithArgs(1, 3, billing.RenewalNew, regular, &pt, start, end).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(50, 1, 3, "NEW", "1500", "2000", start, end, time.Now()))

	ms, err := repo.CreateMembership(context.Background(), 1, 3, billing.RenewalNew, regular, &pt, start, end)
	assert.NoError(t, err)
	assert.Equal(t, billing.RenewalNew, ms.RenewalType)
	assert.True(t, regular.Equal(ms.RegularFees))
	assert.NotNil(t, ms.PTFees)
	assert.True(t, pt.Equal(*ms.PTFees))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LatestMembership_NullPTFees(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	end := time.Now().AddDate(0, 0, 12)
	mock.ExpectQuery(`SELECT .* FROM memberships\s+WHERE member_id = \$1.*`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(50, 1, 3, "RENEWAL", "1500", nil, time.Now().AddDate(0, 0, -18), end, time.Now()))

	ms, err := repo.LatestMembership(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, billing.RenewalRenewed, ms.RenewalType)
	assert.Nil(t, ms.PTFees)
	assert.NotNil(t, ms.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LatestMemberships_GroupsByMember(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	dbx := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(dbx)

	end := time.Now().AddDate(0, 0, 15)
	mock.ExpectQuery(`SELECT DISTINCT ON \(ms\.member_id\).*FROM memberships ms.*`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(50, 1, 3, "NEW", "1500", nil, time.Now(), end, time.Now()).
			AddRow(52, 4, 2, "RENEWAL", "900", "1200", time.Now(), end, time.Now()))

	byMember, err := repo.LatestMemberships(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, byMember, 2)
	assert.Equal(t, 50, byMember[1].ID)
	assert.Equal(t, 52, byMember[4].ID)
	assert.Nil(t, byMember[2])
	assert.NoError(t, mock.ExpectationsWereMet())
}
