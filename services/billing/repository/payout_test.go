package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func testPayout() *models.Payout {
	return &models.Payout{
		ID:          uuid.New(),
		OrgID:       "org-123",
		GrossAmount: 1000000,
		FeeAmount:   50000,
		NetAmount:   950000,
		Currency:    "idr",
		Status:      models.PayoutStatusPending,
		Reference:   "settlement-2026-08",
		CreatedAt:   time.Now(),
	}
}

func TestCreatePayout_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBillingRepo(&models.Config{}, db, nil)

	payout := testPayout()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payouts")).
		WithArgs(
			payout.ID,
			payout.OrgID,
			payout.GrossAmount,
			payout.FeeAmount,
			payout.NetAmount,
			payout.Currency,
			payout.TransferID,
			payout.Status,
			payout.Reference,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreatePayout(context.Background(), payout)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePayout_DBError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBillingRepo(&models.Config{}, db, nil)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payouts")).
		WillReturnError(assert.AnError)

	err := repo.CreatePayout(context.Background(), testPayout())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create payout")
}

func TestMarkPayoutSettled_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBillingRepo(&models.Config{}, db, nil)

	id := uuid.New()
	settledAt := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payouts")).
		WithArgs(models.PayoutStatusSettled, "tr_123", settledAt, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkPayoutSettled(context.Background(), id, "tr_123", settledAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPayoutSettled_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBillingRepo(&models.Config{}, db, nil)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payouts")).
		WithArgs(models.PayoutStatusSettled, "tr_123", sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkPayoutSettled(context.Background(), id, "tr_123", time.Now())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMarkPayoutFailed_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBillingRepo(&models.Config{}, db, nil)

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE payouts")).
		WithArgs(models.PayoutStatusFailed, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkPayoutFailed(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListPayoutsByOrg(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBillingRepo(&models.Config{}, db, nil)

	first := uuid.New()
	second := uuid.New()
	now := time.Now()
	settled := now.Add(-time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "org_id", "gross_amount", "fee_amount", "net_amount",
		"currency", "transfer_id", "status", "reference", "created_at", "settled_at",
	}).
		AddRow(first, "org-123", 1000000, 50000, 950000, "idr", "tr_1", models.PayoutStatusSettled, "ref-1", now, settled).
		AddRow(second, "org-123", 200000, 10000, 190000, "idr", "", models.PayoutStatusPending, "ref-2", now.Add(-24*time.Hour), nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, org_id, gross_amount")).
		WithArgs("org-123").
		WillReturnRows(rows)

	payouts, err := repo.ListPayoutsByOrg(context.Background(), "org-123")
	require.NoError(t, err)
	require.Len(t, payouts, 2)

	assert.Equal(t, first, payouts[0].ID)
	assert.Equal(t, models.PayoutStatusSettled, payouts[0].Status)
	assert.NotNil(t, payouts[0].SettledAt)
	assert.Equal(t, int64(950000), payouts[0].NetAmount)

	assert.Equal(t, second, payouts[1].ID)
	assert.Equal(t, models.PayoutStatusPending, payouts[1].Status)
	assert.Nil(t, payouts[1].SettledAt)
}

func TestListPayoutsByOrg_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBillingRepo(&models.Config{}, db, nil)

	rows := sqlmock.NewRows([]string{
		"id", "org_id", "gross_amount", "fee_amount", "net_amount",
		"currency", "transfer_id", "status", "reference", "created_at", "settled_at",
	})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, org_id, gross_amount")).
		WithArgs("org-404").
		WillReturnRows(rows)

	payouts, err := repo.ListPayoutsByOrg(context.Background(), "org-404")
	require.NoError(t, err)
	assert.Empty(t, payouts)
}
