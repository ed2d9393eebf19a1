// Package postgrest reads and writes rows through the hosted data API.
// Requests carry the signed-in user's token, so row-level security decides
// which rows are visible. Failures are returned as *domain.RepositoryError.
package postgrest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/learnhub/internal/adapter/httpapi"
	"github.com/heartmarshall/learnhub/internal/domain"
)

type api interface {
	JSON(ctx context.Context, req httpapi.Request, out any) (*httpapi.Response, error)
}

// Client is the data API client.
type Client struct {
	api api
}

// New creates a Client.
func New(client api) *Client {
	return &Client{api: client}
}

// Select reads all rows matched by q into out, which must be a pointer to a slice.
func (c *Client) Select(ctx context.Context, q *Query, out any) error {
	_, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodGet,
		Path:   q.path(),
		Query:  q.Values(),
	}, out)
	return mapError("select "+q.table, err)
}

// SelectOne reads exactly one row. No match yields an error wrapping domain.ErrNotFound.
func (c *Client) SelectOne(ctx context.Context, q *Query, out any) error {
	_, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodGet,
		Path:   q.path(),
		Query:  q.Values(),
		Header: http.Header{"Accept": {"application/vnd.pgrst.object+json"}},
	}, out)
	return mapError("select one "+q.table, err)
}

// Count returns the exact number of rows matched by q.
func (c *Client) Count(ctx context.Context, q *Query) (int, error) {
	resp, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodHead,
		Path:   q.path(),
		Query:  q.Values(),
		Header: http.Header{"Prefer": {"count=exact"}},
	}, nil)
	if err != nil {
		return 0, mapError("count "+q.table, err)
	}
	return parseContentRange(resp.Header.Get("Content-Range"))
}

// Insert adds rows and decodes the created rows into out, if out is non-nil.
func (c *Client) Insert(ctx context.Context, table string, rows any, out any) error {
	_, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodPost,
		Path:   "/rest/v1/" + table,
		Body:   rows,
		Header: http.Header{"Prefer": {preferReturn(out)}},
	}, out)
	return mapError("insert "+table, err)
}

// Upsert inserts rows or merges them into existing ones on the conflict columns.
func (c *Client) Upsert(ctx context.Context, table, onConflict string, rows any, out any) error {
	q := From(table).OnConflict(onConflict)
	_, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodPost,
		Path:   q.path(),
		Query:  q.Values(),
		Body:   rows,
		Header: http.Header{"Prefer": {"resolution=merge-duplicates," + preferReturn(out)}},
	}, out)
	return mapError("upsert "+table, err)
}

// Update patches every row matched by q.
func (c *Client) Update(ctx context.Context, q *Query, patch any, out any) error {
	_, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodPatch,
		Path:   q.path(),
		Query:  q.Values(),
		Body:   patch,
		Header: http.Header{"Prefer": {preferReturn(out)}},
	}, out)
	return mapError("update "+q.table, err)
}

// Delete removes every row matched by q.
func (c *Client) Delete(ctx context.Context, q *Query) error {
	_, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodDelete,
		Path:   q.path(),
		Query:  q.Values(),
	}, nil)
	return mapError("delete "+q.table, err)
}

// RPC calls a database function with named arguments.
func (c *Client) RPC(ctx context.Context, fn string, args any, out any) error {
	if args == nil {
		args = map[string]any{}
	}
	_, err := c.api.JSON(ctx, httpapi.Request{
		Method: http.MethodPost,
		Path:   "/rest/v1/rpc/" + fn,
		Body:   args,
	}, out)
	return mapError("rpc "+fn, err)
}

func preferReturn(out any) string {
	if out == nil {
		return "return=minimal"
	}
	return "return=representation"
}

func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *httpapi.APIError
	if errors.As(err, &apiErr) {
		return &domain.RepositoryError{
			Op:      op,
			Status:  apiErr.Status,
			Code:    apiErr.Code,
			Message: apiErr.Message,
		}
	}
	return fmt.Errorf("postgrest %s: %w", op, err)
}

// parseContentRange reads the total from "0-24/3573" or "*/0".
func parseContentRange(v string) (int, error) {
	_, total, ok := strings.Cut(v, "/")
	if !ok || total == "*" {
		return 0, fmt.Errorf("postgrest: no total in content-range %q", v)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("postgrest: content-range %q: %w", v, err)
	}
	return n, nil
}

