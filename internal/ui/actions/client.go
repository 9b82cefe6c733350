package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/Its-donkey/cinecraft-moderation/internal/ui/model"
)

// ErrUnexpectedResponse marks a response that could not be interpreted.
var ErrUnexpectedResponse = errors.New("unexpected response")

const (
	csrfHeader      = "X-CSRFToken"
	requestIDHeader = "X-Request-ID"
	maxAckBytes     = 64 << 10
)

// Client posts moderation actions to the admin backend.
type Client struct {
	// BaseURL prefixes every endpoint. Empty means same-origin relative paths.
	BaseURL string
	// Token is sent as the CSRF header on every request.
	Token string
	HTTP  *http.Client
}

// NewClient constructs a Client for the given base URL and CSRF token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Token:   token,
		HTTP:    http.DefaultClient,
	}
}

// Post issues the request for kind against pk and decodes the acknowledgement.
func (c *Client) Post(ctx context.Context, kind Kind, pk, requestID string) (model.Ack, error) {
	pk = strings.TrimSpace(pk)
	if pk == "" {
		return model.Ack{}, errors.New("submission id is required")
	}

	var (
		path string
		body io.Reader
	)
	switch kind {
	case KindApprove, KindReject, KindActivate, KindDeactivate:
		path = ActionPath(pk)
		body = strings.NewReader(url.Values{"action": {kind.String()}}.Encode())
	case KindDelete:
		path = DeletePath(pk)
	default:
		return model.Ack{}, fmt.Errorf("action %s has no endpoint", kind)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return model.Ack{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(csrfHeader, c.Token)
	applyFetchOptions(req)
	if requestID != "" {
		req.Header.Set(requestIDHeader, requestID)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return model.Ack{}, err
	}
	defer resp.Body.Close()

	return decodeAck(resp)
}

func decodeAck(resp *http.Response) (model.Ack, error) {
	if !isJSON(resp.Header.Get("Content-Type")) {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return model.Ack{}, fmt.Errorf("server responded with %d", resp.StatusCode)
		}
		return model.Ack{OK: false, Error: "Unexpected response"}, nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAckBytes))
	if err != nil {
		return model.Ack{}, fmt.Errorf("read acknowledgement: %w", err)
	}
	var ack model.Ack
	if err := json.Unmarshal(data, &ack); err != nil {
		return model.Ack{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return ack, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json"
}
