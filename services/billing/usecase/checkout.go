package usecase

import (
	"context"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/pkg/models"
)

// CreateCheckout starts a hosted checkout for a marketplace order. Repeated
// calls for the same order return the cached session while it is still open,
// so buyers who retry do not end up with competing payment pages.
func (u *BillingUC) CreateCheckout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSession, error) {
	cached, err := u.billingRepo.GetCachedCheckoutSession(ctx, req.OrderID)
	if err != nil {
		logger.WarnCtx(ctx, "Checkout session cache lookup failed",
			logger.String("order_id", req.OrderID),
			logger.Err(err))
	}
	if cached != nil {
		logger.DebugCtx(ctx, "Reusing open checkout session",
			logger.String("order_id", req.OrderID),
			logger.String("session_id", cached.SessionID))
		return cached, nil
	}

	session, err := u.billingGW.CreateCheckoutSession(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := u.billingRepo.CacheCheckoutSession(ctx, req.OrderID, session); err != nil {
		logger.WarnCtx(ctx, "Failed to cache checkout session",
			logger.String("order_id", req.OrderID),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "Created checkout session",
		logger.String("order_id", req.OrderID),
		logger.String("org_id", req.OrgID),
		logger.String("session_id", session.SessionID))

	return session, nil
}
