package agentdock

import (
	"net/http"

	"golang.org/x/net/context"
)

// UploadImage forwards a multipart image upload and returns the stored
// file's absolute URL. The backend answers with a host-relative path.
func (c *Client) UploadImage(ctx context.Context, sess Session, body []byte, contentType string) (string, error) {
	var result struct {
		URL string `json:"url"`
	}
	if err := c.doMultipart(ctx, sess, http.MethodPost, "/upload", body, contentType, &result); err != nil {
		return "", err
	}
	return c.AbsoluteURL(result.URL), nil
}
