package agentdock

import (
	jwtPkg "AgentDock/pkg/jwt"
	"AgentDock/pkg/log"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	BaseURLEnv     = "AGENTDOCK_API_BASE_URL"
	defaultBaseURL = "http://localhost:5000"

	tokenExpiredMessage = "token_expired"

	// Bearers this close to expiry are refreshed before the request goes
	// out, saving the 401 round trip.
	refreshWindow = 30 * time.Second
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSessionExpired means the bearer was rejected and could not be
// refreshed. Callers redirect the browser to /login.
var ErrSessionExpired = errors.New("session expired")

// UpstreamError carries a backend failure through to the browser with the
// backend's own status and message.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.Status, e.Message)
}

// Session is the per-request credential view the client needs. Storing a
// refreshed token pair must survive the request, so both setters persist.
type Session interface {
	AuthToken() string
	RefreshToken() string
	StoreAuthToken(ctx context.Context, token string) error
	StoreRefreshToken(ctx context.Context, token string) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger

	refreshMu sync.Mutex
}

func New(logger *logrus.Logger) *Client {
	baseURL := os.Getenv(BaseURLEnv)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return NewWithBaseURL(logger, baseURL)
}

func NewWithBaseURL(logger *logrus.Logger, baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// AbsoluteURL resolves a backend-relative path (upload results come back
// relative) against the backend base.
func (c *Client) AbsoluteURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// doJSON performs one backend call. On 401 token_expired it refreshes the
// session's token pair and retries the original request exactly once; any
// other failure surfaces as an UpstreamError with the body's error string.
func (c *Client) doJSON(ctx context.Context, sess Session, method, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	status, body, err := c.roundTrip(ctx, method, path, payload, c.bearerFor(ctx, sess), "")
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && upstreamErrorMessage(body) == tokenExpiredMessage &&
		sess != nil && sess.RefreshToken() != "" {
		newToken, err := c.refreshSession(ctx, sess)
		if err != nil {
			return err
		}
		status, body, err = c.roundTrip(ctx, method, path, payload, newToken, "")
		if err != nil {
			return err
		}
	}

	return c.finish(status, body, out)
}

// doMultipart mirrors doJSON for multipart bodies. Multipart readers are
// not replayable, so a refreshed request rebuilds from the buffered body.
func (c *Client) doMultipart(ctx context.Context, sess Session, method, path string, body []byte, contentType string, out interface{}) error {
	status, respBody, err := c.roundTrip(ctx, method, path, body, c.bearerFor(ctx, sess), contentType)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && upstreamErrorMessage(respBody) == tokenExpiredMessage &&
		sess != nil && sess.RefreshToken() != "" {
		newToken, err := c.refreshSession(ctx, sess)
		if err != nil {
			return err
		}
		status, respBody, err = c.roundTrip(ctx, method, path, body, newToken, contentType)
		if err != nil {
			return err
		}
	}

	return c.finish(status, respBody, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, token, contentType string) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

// bearerFor returns the session's current bearer. A token known to expire
// within refreshWindow is refreshed up front; opaque tokens and refresh
// failures fall through to the 401 retry, which has the final say.
func (c *Client) bearerFor(ctx context.Context, sess Session) string {
	if sess == nil {
		return ""
	}
	token := sess.AuthToken()
	if sess.RefreshToken() == "" || !jwtPkg.ExpiresWithin(token, refreshWindow) {
		return token
	}

	refreshed, err := c.refreshSession(ctx, sess)
	if err != nil {
		c.logger.WithFields(log.Fields{
			"error": err.Error(),
		}).Debug("Proactive token refresh failed")
		return token
	}
	return refreshed
}

// refreshSession trades the refresh token for a new pair and persists it.
// Serialized so concurrent expirations on one client refresh once at a time.
func (c *Client) refreshSession(ctx context.Context, sess Session) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken := sess.RefreshToken()
	if refreshToken == "" {
		return "", ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return "", err
	}

	status, body, err := c.roundTrip(ctx, http.MethodPost, "/auth/refresh", payload, "", "")
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		c.logger.WithFields(log.Fields{"status": status}).Debug("Token refresh rejected")
		return "", ErrSessionExpired
	}

	var result struct {
		AuthToken    string `json:"auth_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.AuthToken == "" {
		return "", ErrSessionExpired
	}

	if err := sess.StoreAuthToken(ctx, result.AuthToken); err != nil {
		return "", err
	}
	if result.RefreshToken != "" {
		if err := sess.StoreRefreshToken(ctx, result.RefreshToken); err != nil {
			return "", err
		}
	}

	return result.AuthToken, nil
}

// GetRaw fetches a backend path and hands back the body untouched. The live
// feed hashes these bytes to detect changes without caring about shape.
func (c *Client) GetRaw(ctx context.Context, sess Session, path string) ([]byte, error) {
	status, body, err := c.roundTrip(ctx, http.MethodGet, path, nil, c.bearerFor(ctx, sess), "")
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized && upstreamErrorMessage(body) == tokenExpiredMessage &&
		sess != nil && sess.RefreshToken() != "" {
		newToken, err := c.refreshSession(ctx, sess)
		if err != nil {
			return nil, err
		}
		status, body, err = c.roundTrip(ctx, http.MethodGet, path, nil, newToken, "")
		if err != nil {
			return nil, err
		}
	}

	if err := c.finish(status, body, nil); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) finish(status int, body []byte, out interface{}) error {
	if status < 200 || status >= 300 {
		message := upstreamErrorMessage(body)
		if message == "" {
			message = "request failed"
		}
		return &UpstreamError{Status: status, Message: message}
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func upstreamErrorMessage(body []byte) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Error
}

func tenantPath(tenantID, suffix string) string {
	return "/tenants/" + url.PathEscape(tenantID) + suffix
}

// tenantIDValue renders a tenant ID for JSON bodies. The backend issues
// numeric IDs and expects them back as numbers; the console carries them
// as opaque strings everywhere else.
func tenantIDValue(tenantID string) interface{} {
	if n, err := strconv.ParseInt(tenantID, 10, 64); err == nil {
		return n
	}
	return tenantID
}
