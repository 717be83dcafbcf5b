package agentdock

import (
	"AgentDock/internal/entity"
	"net/http"
	"net/url"

	"golang.org/x/net/context"
)

func (c *Client) GetKnowledge(ctx context.Context, sess Session, tenantID string) (*entity.Knowledge, error) {
	var knowledge entity.Knowledge
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/knowledge"), nil, &knowledge); err != nil {
		return nil, err
	}
	return &knowledge, nil
}

func (c *Client) UpdateKnowledge(ctx context.Context, sess Session, tenantID, rawText string) error {
	body := map[string]string{"raw_text": rawText}
	return c.doJSON(ctx, sess, http.MethodPut, tenantPath(tenantID, "/knowledge"), body, nil)
}

// UploadKnowledgeFile proxies a document upload to the knowledge extractor.
// The multipart body is built by the caller so the file streams through the
// console without touching disk.
func (c *Client) UploadKnowledgeFile(ctx context.Context, sess Session, tenantID string, body []byte, contentType string) (*entity.Knowledge, error) {
	var knowledge entity.Knowledge
	path := tenantPath(tenantID, "/knowledge/upload")
	if err := c.doMultipart(ctx, sess, http.MethodPost, path, body, contentType, &knowledge); err != nil {
		return nil, err
	}
	return &knowledge, nil
}

func (c *Client) FaqSuggestions(ctx context.Context, sess Session, tenantID string) ([]entity.Faq, error) {
	var result struct {
		Faqs []entity.Faq `json:"faqs"`
	}
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/faq-suggestions"), nil, &result); err != nil {
		return nil, err
	}
	return result.Faqs, nil
}

func (c *Client) CoachingInsights(ctx context.Context, sess Session, tenantID string) ([]entity.CoachingInsight, error) {
	var result struct {
		Insights []entity.CoachingInsight `json:"insights"`
	}
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/coaching-insights"), nil, &result); err != nil {
		return nil, err
	}
	return result.Insights, nil
}

func (c *Client) Analytics(ctx context.Context, sess Session, tenantID string) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/analytics"), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) SentimentAnalysis(ctx context.Context, sess Session, tenantID string) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/sentiment-analysis"), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) OptimizationSuggestions(ctx context.Context, sess Session, tenantID string) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/optimization-suggestions"), nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GenerateSocialContent(ctx context.Context, sess Session, tenantID string, body map[string]interface{}) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.doJSON(ctx, sess, http.MethodPost, tenantPath(tenantID, "/generate-social-content"), body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetPersonalization(ctx context.Context, sess Session, tenantID string, customerID string) (map[string]interface{}, error) {
	path := tenantPath(tenantID, "/personalization")
	if customerID != "" {
		path += "?customer_id=" + url.QueryEscape(customerID)
	}
	var result map[string]interface{}
	if err := c.doJSON(ctx, sess, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) UpdatePersonalization(ctx context.Context, sess Session, tenantID string, body map[string]interface{}) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.doJSON(ctx, sess, http.MethodPost, tenantPath(tenantID, "/personalization"), body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) ResetTenant(ctx context.Context, sess Session, tenantID string, wipeProfile bool) error {
	body := map[string]bool{"wipe_profile": wipeProfile}
	return c.doJSON(ctx, sess, http.MethodPost, tenantPath(tenantID, "/reset"), body, nil)
}
