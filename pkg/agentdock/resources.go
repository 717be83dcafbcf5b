package agentdock

import (
	"AgentDock/internal/entity"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/net/context"
)

func (c *Client) GetAppointments(ctx context.Context, sess Session, tenantID string) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/appointments"), nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// Item mutations address rows by their global ID at the top level; the
// bearer scopes them to the tenant.
func (c *Client) UpdateAppointment(ctx context.Context, sess Session, appointmentID int64, patch map[string]interface{}) (*entity.Appointment, error) {
	var updated entity.Appointment
	path := "/appointments/" + strconv.FormatInt(appointmentID, 10)
	if err := c.doJSON(ctx, sess, http.MethodPatch, path, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) ClearAppointments(ctx context.Context, sess Session, tenantID string) error {
	return c.doJSON(ctx, sess, http.MethodDelete, tenantPath(tenantID, "/appointments"), nil, nil)
}

func (c *Client) GetOrders(ctx context.Context, sess Session, tenantID string) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/orders"), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrder(ctx context.Context, sess Session, orderID int64, patch map[string]interface{}) (*entity.Order, error) {
	var updated entity.Order
	path := "/orders/" + strconv.FormatInt(orderID, 10)
	if err := c.doJSON(ctx, sess, http.MethodPatch, path, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) GetComplaints(ctx context.Context, sess Session, tenantID string) ([]entity.Complaint, error) {
	var complaints []entity.Complaint
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/complaints"), nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (c *Client) CreateComplaint(ctx context.Context, sess Session, tenantID string, body map[string]interface{}) (*entity.Complaint, error) {
	var created entity.Complaint
	if err := c.doJSON(ctx, sess, http.MethodPost, tenantPath(tenantID, "/complaints"), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateComplaint(ctx context.Context, sess Session, complaintID int64, patch map[string]interface{}) (*entity.Complaint, error) {
	var updated entity.Complaint
	path := "/complaints/" + strconv.FormatInt(complaintID, 10)
	if err := c.doJSON(ctx, sess, http.MethodPatch, path, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) GetHandoffs(ctx context.Context, sess Session, tenantID string) ([]entity.Handoff, error) {
	var handoffs []entity.Handoff
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/handoffs"), nil, &handoffs); err != nil {
		return nil, err
	}
	return handoffs, nil
}

func (c *Client) UpdateHandoff(ctx context.Context, sess Session, handoffID int64, patch map[string]interface{}) (*entity.Handoff, error) {
	var updated entity.Handoff
	path := "/handoffs/" + strconv.FormatInt(handoffID, 10)
	if err := c.doJSON(ctx, sess, http.MethodPatch, path, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) GetMessages(ctx context.Context, sess Session, tenantID, customerID string, limit int) ([]entity.Message, error) {
	query := url.Values{}
	if customerID != "" {
		query.Set("customer_id", customerID)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	path := tenantPath(tenantID, "/messages")
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var messages []entity.Message
	if err := c.doJSON(ctx, sess, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) DeleteMessage(ctx context.Context, sess Session, messageID int64) error {
	path := "/messages/" + strconv.FormatInt(messageID, 10)
	return c.doJSON(ctx, sess, http.MethodDelete, path, nil, nil)
}

func (c *Client) ClearMessages(ctx context.Context, sess Session, tenantID string) error {
	return c.doJSON(ctx, sess, http.MethodDelete, tenantPath(tenantID, "/messages"), nil, nil)
}

func (c *Client) ListConversations(ctx context.Context, sess Session, tenantID string) ([]entity.Conversation, error) {
	var conversations []entity.Conversation
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/conversations"), nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *Client) MarkConversationRead(ctx context.Context, sess Session, tenantID, customerID string) error {
	path := tenantPath(tenantID, "/conversations/"+url.PathEscape(customerID)+"/read")
	return c.doJSON(ctx, sess, http.MethodPost, path, nil, nil)
}

func (c *Client) ConversationSummary(ctx context.Context, sess Session, tenantID, customerID string) (*entity.ConversationSummary, error) {
	var summary entity.ConversationSummary
	path := tenantPath(tenantID, "/conversations/"+url.PathEscape(customerID)+"/summary")
	if err := c.doJSON(ctx, sess, http.MethodGet, path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) GetTrace(ctx context.Context, sess Session, tenantID string) ([]entity.TraceRow, error) {
	var rows []entity.TraceRow
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/trace"), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) GetStats(ctx context.Context, sess Session, tenantID string) (*entity.Stats, error) {
	var stats entity.Stats
	if err := c.doJSON(ctx, sess, http.MethodGet, tenantPath(tenantID, "/stats"), nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
