package usecase

import (
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/services/billing"
)

// BillingUC orchestrates billing flows between the payment provider, the core
// service, and the message brokers.
type BillingUC struct {
	cfg         *models.Config
	billingRepo billing.BillingRepo
	billingGW   billing.BillingGW
}

// NewBillingUC creates a new billing usecase
func NewBillingUC(cfg *models.Config, billingRepo billing.BillingRepo, billingGW billing.BillingGW) *BillingUC {
	return &BillingUC{
		cfg:         cfg,
		billingRepo: billingRepo,
		billingGW:   billingGW,
	}
}
