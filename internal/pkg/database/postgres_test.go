package database

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

func TestNewPostgresClient_Integration(t *testing.T) {
	// Requires a running PostgreSQL instance
	t.Skip("Skipping integration test - requires running PostgreSQL instance")

	config := models.DatabaseConfig{
		Driver:   "postgres",
		Host:     "localhost",
		Port:     5432,
		Username: "lapakin",
		Password: "lapakin",
		Database: "billing",
		SSLMode:  "disable",
		MaxConns: 10,
	}

	client, err := NewPostgresClient(config)
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetDB())
}

func TestPostgresClient_GetDB(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	client := &PostgresClient{db: sqlxDB}

	db := client.GetDB()
	assert.NotNil(t, db)
	assert.Equal(t, sqlxDB, db)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_Close(t *testing.T) {
	t.Run("Close successfully", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)

		mock.ExpectClose()

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}

		err = client.Close()
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Close with error", func(t *testing.T) {
		mockDB, mock, err := sqlmock.New()
		require.NoError(t, err)

		mock.ExpectClose().WillReturnError(sql.ErrConnDone)

		client := &PostgresClient{db: sqlx.NewDb(mockDB, "sqlmock")}

		err = client.Close()
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
