// Package pokeapi provides a client for the read-only PokéAPI REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"pokeview/internal/config"
)

// CreatureProvider fetches one creature record by numeric identifier.
type CreatureProvider interface {
	GetCreature(ctx context.Context, id int) (*Creature, error)
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}

type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	sugar     *zap.SugaredLogger
}

var _ CreatureProvider = (*Client)(nil)

func NewClient(cfg config.API, sugar *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		client:    &http.Client{Timeout: cfg.Timeout},
		sugar:     sugar,
	}
}

// GetCreature issues exactly one GET {base}/pokemon/{id}. No retries.
func (c *Client) GetCreature(ctx context.Context, id int) (*Creature, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
	c.sugar.Infof("Fetching creature %s", url)

	var creature Creature
	if err := c.getAndDecode(ctx, url, &creature); err != nil {
		c.sugar.Warnf("Failed to fetch creature %d: %s", id, err)
		return nil, err
	}
	return &creature, nil
}

func (c *Client) get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}

func (c *Client) getAndDecode(ctx context.Context, url string, target any) error {
	resp, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
