package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/lapakin/lapakin/internal/pkg/database"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// BillingRepo persists the billing service's own state: the payout ledger and
// webhook audit rows in Postgres, dedup markers and provider ID caches in Redis.
type BillingRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewBillingRepo creates a new billing repository instance
func NewBillingRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *BillingRepo {
	return &BillingRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
