package health

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPChecker probes an upstream HTTP API with a GET. Any status below 500
// counts as reachable.
type HTTPChecker struct {
	name   string
	url    string
	client *http.Client
}

func NewHTTPChecker(name, url string, client *http.Client) *HTTPChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPChecker{name: name, url: url, client: client}
}

func (c *HTTPChecker) Name() string { return c.name }

func (c *HTTPChecker) Check(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Down(err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Down(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return Down(fmt.Errorf("upstream returned %s", resp.Status))
	}
	return Up()
}
