package agentdock

import (
	"AgentDock/internal/entity"
	"net/http"

	"golang.org/x/net/context"
)

func (c *Client) GetBusinessProfile(ctx context.Context, sess Session, tenantID string) (*entity.BusinessProfile, error) {
	var profile entity.BusinessProfile
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/business-profile"), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateBusinessProfile(ctx context.Context, sess Session, tenantID string, profile *entity.BusinessProfile) (*entity.BusinessProfile, error) {
	var updated entity.BusinessProfile
	if err := c.doJSON(ctx, sess, http.MethodPut, tenantPath(tenantID, "/business-profile"), profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) GetServices(ctx context.Context, sess Session, tenantID string) ([]entity.Service, error) {
	profile, err := c.GetBusinessProfile(ctx, sess, tenantID)
	if err != nil {
		return nil, err
	}
	return profile.Services, nil
}
