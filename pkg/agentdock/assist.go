package agentdock

import (
	"AgentDock/internal/entity"
	"net/http"

	"golang.org/x/net/context"
)

type AssistantTurn struct {
	From string `json:"from"`
	Text string `json:"text"`
}

type SetupAssistantRequest struct {
	Message string
	Draft   *entity.BusinessProfile
	History []AssistantTurn
}

type SetupAssistantResult struct {
	Reply        string               `json:"assistant_reply"`
	ProfilePatch *entity.ProfilePatch `json:"profile_patch,omitempty"`
	Step         string               `json:"step_hint,omitempty"`
}

// The AI helper endpoints live at the top level and scope by tenant_id in
// the body rather than by path.

func (c *Client) SetupAssistant(ctx context.Context, sess Session, tenantID string, req SetupAssistantRequest) (*SetupAssistantResult, error) {
	body := map[string]interface{}{
		"tenant_id":        tenantIDValue(tenantID),
		"message":          req.Message,
		"business_profile": req.Draft,
		"history":          req.History,
	}

	var result SetupAssistantResult
	if err := c.doJSON(ctx, sess, http.MethodPost, "/setup-assistant", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) PolishText(ctx context.Context, sess Session, tenantID, field, text string) (string, error) {
	var result struct {
		SuggestedText string `json:"suggested_text"`
	}
	body := map[string]interface{}{
		"tenant_id": tenantIDValue(tenantID),
		"field":     field,
		"text":      text,
	}
	if err := c.doJSON(ctx, sess, http.MethodPost, "/polish-text", body, &result); err != nil {
		return "", err
	}
	return result.SuggestedText, nil
}

// DemoChat plays one customer turn against the tenant's agent using a
// synthetic phone number so real conversations stay untouched.
func (c *Client) DemoChat(ctx context.Context, sess Session, tenantID, phone, message string) (string, error) {
	var result struct {
		Reply string `json:"reply"`
	}
	body := map[string]interface{}{
		"tenant_id": tenantIDValue(tenantID),
		"message":   message,
	}
	if phone != "" {
		body["customer_phone"] = phone
	}
	if err := c.doJSON(ctx, sess, http.MethodPost, "/demo/chat", body, &result); err != nil {
		return "", err
	}
	return result.Reply, nil
}
