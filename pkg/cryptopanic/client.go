package cryptopanic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

func (c *clientImpl) Posts(ctx context.Context, currencies []string) ([]Post, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, ErrMissingAPIKey)
	}

	posts, err := c.cb.Execute(func() ([]Post, error) {
		return c.fetch(ctx, currencies)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return posts, nil
}

func (c *clientImpl) fetch(ctx context.Context, currencies []string) ([]Post, error) {
	q := url.Values{}
	q.Set("auth_token", c.cfg.APIKey)
	q.Set("kind", "news")
	q.Set("public", "true")
	if len(currencies) > 0 {
		q.Set("currencies", strings.Join(currencies, ","))
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+postsPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var out postsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return out.Results, nil
}
