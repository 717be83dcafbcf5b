package agentdock

import (
	"net/http"

	"golang.org/x/net/context"
)

type CreateTenantRequest struct {
	Name           string `json:"name"`
	BusinessType   string `json:"business_type,omitempty"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	WhatsappNumber string `json:"whatsapp_number,omitempty"`
}

// CreateTenantResult is all the backend hands back for a new tenant; the
// token grant comes from a follow-up login.
type CreateTenantResult struct {
	ID int64 `json:"id"`
}

// AuthResult is the backend's login grant. TenantID arrives as a number but
// the console handles it as an opaque string everywhere past this point.
type AuthResult struct {
	TenantID     int64  `json:"tenant_id"`
	BusinessName string `json:"tenant_name,omitempty"`
	BusinessType string `json:"business_type,omitempty"`
	Token        string `json:"auth_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func (c *Client) CreateTenant(ctx context.Context, req CreateTenantRequest) (*CreateTenantResult, error) {
	var result CreateTenantResult
	if err := c.doJSON(ctx, nil, http.MethodPost, "/tenants", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, nil, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, nil, http.MethodPost, "/auth/request-password-reset", body, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.doJSON(ctx, nil, http.MethodPost, "/auth/reset-password", body, nil)
}

func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var result struct {
		Exists bool `json:"exists"`
	}
	body := map[string]string{"email": email}
	if err := c.doJSON(ctx, nil, http.MethodPost, "/auth/check-email", body, &result); err != nil {
		return false, err
	}
	return result.Exists, nil
}
