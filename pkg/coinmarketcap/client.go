package coinmarketcap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

func (c *clientImpl) QuotesLatest(ctx context.Context, symbols []string) (map[string]Quote, error) {
	if len(symbols) == 0 {
		return map[string]Quote{}, nil
	}

	q := url.Values{}
	q.Set("symbol", strings.Join(symbols, ","))
	q.Set("convert", convertUSD)

	var resp quotesResponse
	if err := c.get(ctx, quotesPath, q, &resp); err != nil {
		return nil, err
	}

	out := make(map[string]Quote, len(resp.Data))
	for key, cn := range resp.Data {
		quote, ok := toQuote(cn)
		if !ok {
			continue
		}
		if quote.Symbol == "" {
			quote.Symbol = key
		}
		out[strings.ToUpper(quote.Symbol)] = quote
	}
	return out, nil
}

func (c *clientImpl) ListingsLatest(ctx context.Context, limit int) ([]Quote, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("convert", convertUSD)

	var resp listingsResponse
	if err := c.get(ctx, listingsPath, q, &resp); err != nil {
		return nil, err
	}

	out := make([]Quote, 0, len(resp.Data))
	for _, cn := range resp.Data {
		if quote, ok := toQuote(cn); ok {
			out = append(out, quote)
		}
	}
	return out, nil
}

func (c *clientImpl) get(ctx context.Context, path string, query url.Values, dst any) error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("%w: %w", ErrUpstream, ErrMissingAPIKey)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w: %v", ErrUpstream, ErrRateLimited, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, truncate(body, 256))
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}
	return nil
}

func toQuote(cn coin) (Quote, bool) {
	usd, ok := cn.Quote[convertUSD]
	if !ok {
		return Quote{}, false
	}
	return Quote{
		ID:               cn.ID,
		Name:             cn.Name,
		Symbol:           strings.ToUpper(cn.Symbol),
		Rank:             cn.CmcRank,
		Price:            usd.Price,
		PercentChange24h: usd.PercentChange24h,
		Volume24h:        usd.Volume24h,
		MarketCap:        usd.MarketCap,
		LastUpdated:      usd.LastUpdated,
	}, true
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
