package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lapakin/lapakin/services/billing BillingRepo

// BillingRepo represents the billing repository interface
type BillingRepo interface {
	// payout ledger
	CreatePayout(ctx context.Context, payout *models.Payout) error
	MarkPayoutSettled(ctx context.Context, id uuid.UUID, transferID string, settledAt time.Time) error
	MarkPayoutFailed(ctx context.Context, id uuid.UUID) error
	ListPayoutsByOrg(ctx context.Context, orgID string) ([]models.Payout, error)

	// webhook audit and dedup
	RecordBillingEvent(ctx context.Context, record *models.BillingEventRecord) error
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error

	// provider identifier caches
	CacheCustomerOrg(ctx context.Context, customerID, orgID string) error
	GetOrgByCustomer(ctx context.Context, customerID string) (string, error)
	CacheCheckoutSession(ctx context.Context, orderID string, session *models.CheckoutSession) error
	GetCachedCheckoutSession(ctx context.Context, orderID string) (*models.CheckoutSession, error)
}
