package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"rxconsole/internal/domain/entity"
	"rxconsole/internal/domain/repository"

	"github.com/pkg/errors"
)

// resourceRepository is the REST contract of one admin resource:
// GET /{path}?page=N, POST /{path}, PATCH /{path}/{id}, DELETE /{path}/{id}.
type resourceRepository[T entity.Record] struct {
	client *Client
	path   string
}

// NewResourceRepository creates the repository of the resource at path.
func NewResourceRepository[T entity.Record](client *Client, path string) repository.ResourceRepository[T] {
	return &resourceRepository[T]{
		client: client,
		path:   strings.Trim(path, "/"),
	}
}

// List fetches one page. TotalPages is always derived from total and limit.
func (r *resourceRepository[T]) List(ctx context.Context, page int) (entity.PageWindow[T], error) {
	env, err := r.client.do(ctx, request{
		resource: r.path,
		method:   http.MethodGet,
		path:     r.path,
		query:    pageQuery(page, r.client.PageLimit()),
	})
	if err != nil {
		return entity.PageWindow[T]{}, err
	}

	var items []T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return entity.PageWindow[T]{}, errors.Wrapf(err, "decode %s list", r.path)
		}
	}

	return window(items, env.Meta, page, r.client.PageLimit()), nil
}

// Create posts a new record.
func (r *resourceRepository[T]) Create(ctx context.Context, payload repository.Payload) (string, error) {
	return r.send(ctx, http.MethodPost, r.path, payload)
}

// Update patches an existing record.
func (r *resourceRepository[T]) Update(ctx context.Context, id string, payload repository.Payload) (string, error) {
	return r.send(ctx, http.MethodPatch, r.path+"/"+url.PathEscape(id), payload)
}

// Delete removes a record.
func (r *resourceRepository[T]) Delete(ctx context.Context, id string) (string, error) {
	env, err := r.client.do(ctx, request{
		resource: r.path,
		method:   http.MethodDelete,
		path:     r.path + "/" + url.PathEscape(id),
	})
	if err != nil {
		return "", err
	}

	return env.Message, nil
}

func (r *resourceRepository[T]) send(ctx context.Context, method, path string, payload repository.Payload) (string, error) {
	body, contentType, err := encodePayload(payload)
	if err != nil {
		return "", err
	}

	env, err := r.client.do(ctx, request{
		resource:    r.path,
		method:      method,
		path:        path,
		body:        body,
		contentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return env.Message, nil
}

func pageQuery(page, limit int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	return query
}

// window builds a PageWindow from list meta; missing meta is treated as a single complete page.
func window[T any](items []T, m *meta, requested, limit int) entity.PageWindow[T] {
	if items == nil {
		items = []T{}
	}
	if m == nil {
		if limit <= 0 || len(items) > limit {
			limit = len(items)
		}

		return entity.NewPageWindow(items, requested, limit, len(items))
	}

	page := m.Page
	if page <= 0 {
		page = requested
	}
	if m.Limit > 0 {
		limit = m.Limit
	}

	return entity.NewPageWindow(items, page, limit, m.Total)
}
