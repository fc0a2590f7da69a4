package gateway_http

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"

	httpclient "github.com/lapakin/lapakin/internal/pkg/http"
	"github.com/lapakin/lapakin/internal/pkg/models"
	"github.com/lapakin/lapakin/internal/utils"
	"github.com/lapakin/lapakin/services/billing"
)

// CoreClient talks to the core service, which owns organization records. All
// calls present the billing service's API key and go through the shared
// client's retry and circuit-breaker stack.
type CoreClient struct {
	client *httpclient.APIKeyClient
}

// NewCoreClient creates a core service client for the billing service
func NewCoreClient(coreServiceURL string, apiKeys *models.APIKeyConfig) *CoreClient {
	return &CoreClient{
		client: httpclient.NewAPIKeyClient(apiKeys, "billing-service", coreServiceURL),
	}
}

// GetOrganization fetches an organization by ID
func (c *CoreClient) GetOrganization(ctx context.Context, orgID string) (*models.Organization, error) {
	resp, err := c.client.Get(ctx, "/internal/organizations/"+orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organization %s: %w", orgID, err)
	}
	if resp.StatusCode == nethttp.StatusNotFound {
		resp.Body.Close()
		return nil, billing.ErrOrganizationNotFound
	}

	var org models.Organization
	if err := decodeResponse(resp, &org); err != nil {
		return nil, fmt.Errorf("failed to decode organization %s: %w", orgID, err)
	}
	return &org, nil
}

// UpsertOrgSubscription creates or updates an organization's subscription record
func (c *CoreClient) UpsertOrgSubscription(ctx context.Context, sub *models.OrgSubscription) error {
	path := fmt.Sprintf("/internal/organizations/%s/subscription", sub.OrgID)
	resp, err := c.client.Put(ctx, path, sub)
	if err != nil {
		return fmt.Errorf("failed to upsert subscription for org %s: %w", sub.OrgID, err)
	}
	return decodeResponse(resp, nil)
}

// UpdateAccountStatus updates an organization's connected-account status
func (c *CoreClient) UpdateAccountStatus(ctx context.Context, update *models.AccountStatusUpdate) error {
	path := fmt.Sprintf("/internal/organizations/%s/account-status", update.OrgID)
	resp, err := c.client.Put(ctx, path, update)
	if err != nil {
		return fmt.Errorf("failed to update account status for org %s: %w", update.OrgID, err)
	}
	return decodeResponse(resp, nil)
}

// UpdatePaymentIDs stores newly assigned provider identifiers on an
// organization. Empty fields are left unchanged by the core service.
func (c *CoreClient) UpdatePaymentIDs(ctx context.Context, ids *models.OrgPaymentIDs) error {
	path := fmt.Sprintf("/internal/organizations/%s/payment-ids", ids.OrgID)
	resp, err := c.client.Put(ctx, path, ids)
	if err != nil {
		return fmt.Errorf("failed to update payment IDs for org %s: %w", ids.OrgID, err)
	}
	return decodeResponse(resp, nil)
}

// decodeResponse reads the core service's response envelope into target.
// target may be nil when the caller only cares about success.
func decodeResponse(resp *nethttp.Response, target interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read core service response: %w", err)
	}
	if resp.StatusCode >= nethttp.StatusBadRequest {
		return fmt.Errorf("core service returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return utils.ParseJSONResponse(body, target)
}
