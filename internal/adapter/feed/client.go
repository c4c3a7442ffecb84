package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/janne6565/projectmanager/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches contributions from external contributions api.
// This struct is an adapter for app.ContributionFeed.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string

	responseMaxSize int64
}

var _ app.ContributionFeed = &Client{}

// NewClient creates new contributions api client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	return &Client{
		doer:      doer,
		address:   address,
		authToken: authToken,

		responseMaxSize: 1024 * 1024 * 30,
	}
}

// Contributions returns contributions grouped by day key.
func (c *Client) Contributions(ctx context.Context) (map[string][]app.Contribution, error) {
	u, err := url.Parse(c.address + "/contributions")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, code, err := c.makeRequest(httpReq)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}
	if code == http.StatusNoContent {
		return map[string][]app.Contribution{}, nil
	}

	var resp contributionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshalling response: %w", err)
	}

	return resp.ToContributions(), nil
}

func (c *Client) makeRequest(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Accept", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}
	if resp.StatusCode/100 > 3 {
		if c.checkRateLimitExceeded(&resp.Header) || resp.StatusCode == http.StatusTooManyRequests {
			return nil, resp.StatusCode, app.TooManyRequestsError("rate limit exceeded")
		}
		return nil, resp.StatusCode, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.responseMaxSize+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading http response body: %w", err)
	}
	if int64(len(b)) > c.responseMaxSize {
		return nil, resp.StatusCode, errors.New("response body too large")
	}

	return b, resp.StatusCode, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
