package querycache

import (
	"context"
	"fmt"
	"time"
)

// Request describes one cached read.
type Request[V any] struct {
	Key   Key
	Fetch func(ctx context.Context) (V, error)
	// Disabled skips the read entirely; the result is StatusIdle.
	Disabled bool
	// Zero windows use the client defaults.
	FreshWindow time.Duration
	EvictWindow time.Duration
}

// Result is what a read observed.
type Result[V any] struct {
	Value     V
	Status    Status
	Stale     bool
	FetchedAt time.Time
	Err       error
}

// OK reports whether Value holds a fetched value.
func (r Result[V]) OK() bool {
	return r.Status == StatusSuccess
}

// Get reads req.Key through the cache.
//
// A fresh entry is returned as is. A stale entry is returned immediately and
// refreshed in the background. A missing, evicted, invalidated or errored entry
// is fetched synchronously, sharing the fetch with concurrent callers.
func Get[V any](ctx context.Context, c *Client, req Request[V]) (Result[V], error) {
	if req.Disabled {
		return Result[V]{Status: StatusIdle}, nil
	}

	fresh, evict := c.windows(req.FreshWindow, req.EvictWindow)
	fn := func(ctx context.Context) (any, error) { return req.Fetch(ctx) }

	if value, at, hit, stale := c.lookup(req.Key); hit {
		v, err := as[V](req.Key, value)
		if err != nil {
			return Result[V]{Status: StatusError, Err: err}, err
		}
		if stale {
			c.refresh(ctx, req.Key, fn, fresh, evict)
		}
		return Result[V]{Value: v, Status: StatusSuccess, Stale: stale, FetchedAt: at}, nil
	}

	value, at, err := c.fetch(ctx, req.Key, fn, fresh, evict)
	if err != nil {
		return Result[V]{Status: StatusError, Err: err}, err
	}
	v, err := as[V](req.Key, value)
	if err != nil {
		return Result[V]{Status: StatusError, Err: err}, err
	}
	return Result[V]{Value: v, Status: StatusSuccess, FetchedAt: at}, nil
}

// Peek returns the current state of key without fetching. An errored entry
// still carries the last good value, if any.
func Peek[V any](c *Client, key Key) Result[V] {
	e, ok := c.peek(key)
	if !ok {
		return Result[V]{Status: StatusIdle}
	}

	var r Result[V]
	if e.hasValue {
		v, err := as[V](key, e.value)
		if err != nil {
			return Result[V]{Status: StatusError, Err: err}
		}
		r.Value, r.FetchedAt = v, e.fetchedAt
		r.Stale = e.stale || c.now().Sub(e.fetchedAt) >= e.fresh
	}

	switch {
	case e.err != nil:
		r.Status, r.Err = StatusError, e.err
	case e.hasValue:
		r.Status = StatusSuccess
	case e.fetching:
		r.Status = StatusLoading
	}
	return r
}

func as[V any](key Key, value any) (V, error) {
	v, ok := value.(V)
	if !ok && value != nil {
		var zero V
		return zero, fmt.Errorf("querycache: key %q holds %T, not %T", key, value, zero)
	}
	return v, nil
}
