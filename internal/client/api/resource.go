package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	pkgapi "github.com/thaedal/thaedal-admin/pkg/api"
)

// Resource is a typed gateway to one named collection of the admin API
// (videos, categories, ...). All methods go through the shared Client,
// so credential injection and failure normalization apply uniformly.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource creates a gateway for the collection mounted at
// /api/v1/admin/<path>.
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: "/" + path}
}

// List returns the collection matching the query parameters.
func (r *Resource[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	var resp pkgapi.ListResponse[T]
	if err := r.client.doRequest(ctx, http.MethodGet, r.path, query, nil, &resp); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	return resp.Items, nil
}

// Get returns one item by identifier.
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var item T
	if err := r.client.doRequest(ctx, http.MethodGet, r.itemPath(id), nil, nil, &item); err != nil {
		return item, fmt.Errorf("get %s/%s: %w", r.path, id, err)
	}
	return item, nil
}

// Create persists a new item and returns it with the server-assigned
// identifier.
func (r *Resource[T]) Create(ctx context.Context, payload T) (T, error) {
	var item T
	if err := r.client.doRequest(ctx, http.MethodPost, r.path, nil, payload, &item); err != nil {
		return item, fmt.Errorf("create %s: %w", r.path, err)
	}
	return item, nil
}

// Update replaces the item with the given identifier and returns the
// stored result.
func (r *Resource[T]) Update(ctx context.Context, id string, payload T) (T, error) {
	var item T
	if err := r.client.doRequest(ctx, http.MethodPut, r.itemPath(id), nil, payload, &item); err != nil {
		return item, fmt.Errorf("update %s/%s: %w", r.path, id, err)
	}
	return item, nil
}

// Delete removes the item with the given identifier.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	if err := r.client.doRequest(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete %s/%s: %w", r.path, id, err)
	}
	return nil
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}
