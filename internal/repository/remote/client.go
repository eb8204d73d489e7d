// Package remote implements the client side of the backend-backed deployment:
// entity collections live on a remote collection API and every mutation is
// followed by an authoritative re-fetch of the affected collection.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// Client talks to the remote collection API under /api.
type Client struct {
	httpClient *resty.Client
}

// Envelope mirrors the JSON envelope every API response is wrapped in.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// NewClient builds a collection API client rooted at baseURL.
func NewClient(baseURL string) *Client {
	base := strings.TrimSuffix(baseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base + "/api").
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{httpClient: restyClient}
}

// ListHarvests fetches the current accepted harvest collection.
func (c *Client) ListHarvests(ctx context.Context) ([]models.Harvest, error) {
	return list[models.Harvest](ctx, c, "/harvests")
}

// CreateHarvest records a harvest on the backend.
func (c *Client) CreateHarvest(ctx context.Context, harvest models.Harvest) error {
	return mutate(ctx, c, http.MethodPost, "/harvests", harvest)
}

// UpdateHarvest replaces a harvest on the backend.
func (c *Client) UpdateHarvest(ctx context.Context, harvest models.Harvest) error {
	return mutate(ctx, c, http.MethodPut, "/harvests/"+harvest.ID, harvest)
}

// DeleteHarvest removes a harvest from the backend.
func (c *Client) DeleteHarvest(ctx context.Context, id string) error {
	return mutate[any](ctx, c, http.MethodDelete, "/harvests/"+id, nil)
}

// ListInventory fetches the current accepted inventory collection.
func (c *Client) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return list[models.InventoryItem](ctx, c, "/inventory")
}

// CreateInventoryItem records an inventory item on the backend.
func (c *Client) CreateInventoryItem(ctx context.Context, item models.InventoryItem) error {
	return mutate(ctx, c, http.MethodPost, "/inventory", item)
}

// UpdateInventoryItem replaces an inventory item on the backend.
func (c *Client) UpdateInventoryItem(ctx context.Context, item models.InventoryItem) error {
	return mutate(ctx, c, http.MethodPut, "/inventory/"+item.ID, item)
}

// DeleteInventoryItem removes an inventory item from the backend.
func (c *Client) DeleteInventoryItem(ctx context.Context, id string) error {
	return mutate[any](ctx, c, http.MethodDelete, "/inventory/"+id, nil)
}

// ListLosses fetches the current accepted loss collection.
func (c *Client) ListLosses(ctx context.Context) ([]models.Loss, error) {
	return list[models.Loss](ctx, c, "/losses")
}

// CreateLoss records a loss on the backend.
func (c *Client) CreateLoss(ctx context.Context, loss models.Loss) error {
	return mutate(ctx, c, http.MethodPost, "/losses", loss)
}

// DeleteLoss removes a loss from the backend.
func (c *Client) DeleteLoss(ctx context.Context, id string) error {
	return mutate[any](ctx, c, http.MethodDelete, "/losses/"+id, nil)
}

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	result := new(Envelope[[]T])

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		ForceContentType("application/json").
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("collection api error: path=%s, code=%d, message=%s", path, resp.StatusCode(), result.Message)
	}
	return result.Data, nil
}

func mutate[T any](ctx context.Context, c *Client, method, path string, body T) error {
	result := new(Envelope[any])

	req := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		SetError(result).
		ForceContentType("application/json")
	if method != http.MethodDelete {
		req = req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("collection api error: path=%s, code=%d, message=%s", path, resp.StatusCode(), result.Message)
	}
	return nil
}
