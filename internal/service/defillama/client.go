package defillama

import (
	"context"
	"fmt"
	"time"

	"YieldPulse/internal/domain/models"
	drepo "YieldPulse/internal/domain/repository"
	xhttp "YieldPulse/pkg/http"
)

// Client fetches the yield pools listing from the DefiLlama yields API.
type Client struct {
	poolsURL string
	http     *xhttp.Client
	metrics  drepo.Metrics
}

// New creates a new pools provider.
func New(poolsURL string, timeout time.Duration, metrics drepo.Metrics) *Client {
	return &Client{
		poolsURL: poolsURL,
		http:     xhttp.NewClient(xhttp.WithTimeout(timeout)),
		metrics:  metrics,
	}
}

type poolsResponse struct {
	Status string        `json:"status"`
	Data   []models.Pool `json:"data"`
}

// Pools returns every pool the upstream currently lists.
func (c *Client) Pools(ctx context.Context) ([]models.Pool, error) {
	var resp poolsResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.poolsURL,
	}, &resp)
	if err != nil {
		c.metrics.RecordUpstreamRequest("defillama", "error")
		return nil, fmt.Errorf("fetch pools: %w", err)
	}

	c.metrics.RecordUpstreamRequest("defillama", "ok")
	return resp.Data, nil
}
