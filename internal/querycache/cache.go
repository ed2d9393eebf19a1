// Package querycache is the process-wide read cache in front of the data API.
//
// Every entry has a fresh window, during which the cached value is served
// without any network access, and an evict window, after which the value is
// dropped and must be fetched synchronously. Between the two the stale value is
// returned immediately and refreshed in the background. Concurrent callers of
// the same key share one in-flight fetch, and a failed fetch is retried once.
package querycache

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultFreshWindow = 30 * time.Second
	DefaultEvictWindow = 5 * time.Minute
	DefaultRetryDelay  = 250 * time.Millisecond
)

// Status is the observable state of a cache read.
type Status int

const (
	// StatusIdle means the read was disabled and nothing was requested.
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Config controls the default windows and the retry delay.
type Config struct {
	FreshWindow time.Duration
	EvictWindow time.Duration
	RetryDelay  time.Duration
}

// Client holds every cache entry of the process. Only the client mutates entries.
type Client struct {
	log   *slog.Logger
	group singleflight.Group
	now   func() time.Time

	freshWindow time.Duration
	evictWindow time.Duration
	retryDelay  time.Duration

	mu      sync.Mutex
	entries map[Key]*entry
	subs    map[Key]map[uint64]func(Key)
	nextSub uint64
}

type entry struct {
	value     any
	hasValue  bool
	err       error
	fetchedAt time.Time
	failedAt  time.Time
	fresh     time.Duration
	evict     time.Duration
	fetching  bool
	// stale forces the next read to fetch synchronously.
	stale bool
	// gen changes on invalidation so results of older fetches stay stale.
	gen uint64
}

// New creates a Client. Zero durations in cfg fall back to the defaults.
func New(logger *slog.Logger, cfg Config) *Client {
	fresh, evict := normalizeWindows(cfg.FreshWindow, cfg.EvictWindow, DefaultFreshWindow, DefaultEvictWindow)
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	return &Client{
		log:         logger.With("service", "querycache"),
		now:         time.Now,
		freshWindow: fresh,
		evictWindow: evict,
		retryDelay:  delay,
		entries:     make(map[Key]*entry),
		subs:        make(map[Key]map[uint64]func(Key)),
	}
}

func normalizeWindows(fresh, evict, defFresh, defEvict time.Duration) (time.Duration, time.Duration) {
	if fresh <= 0 {
		fresh = defFresh
	}
	if evict <= 0 {
		evict = defEvict
	}
	if evict < fresh {
		evict = fresh
	}
	return fresh, evict
}

// Subscribe registers fn to be called with the key whenever a fetch for it
// completes or the key is invalidated. Subscribed entries are never swept.
// The returned function removes the subscription.
func (c *Client) Subscribe(key Key, fn func(Key)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextSub++
	id := c.nextSub
	if c.subs[key] == nil {
		c.subs[key] = make(map[uint64]func(Key))
	}
	c.subs[key][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs[key], id)
			if len(c.subs[key]) == 0 {
				delete(c.subs, key)
			}
		})
	}
}

// Invalidate marks the entry as stale so the next read fetches synchronously.
// The cached value stays visible to Peek until the refetch completes.
func (c *Client) Invalidate(key Key) {
	c.invalidate(func(k Key) bool { return k == key })
}

// InvalidatePrefix invalidates every key starting with prefix.
func (c *Client) InvalidatePrefix(prefix Key) {
	c.invalidate(func(k Key) bool { return strings.HasPrefix(string(k), string(prefix)) })
}

func (c *Client) invalidate(match func(Key) bool) {
	c.mu.Lock()
	var notify []Key
	for k, e := range c.entries {
		if !match(k) {
			continue
		}
		e.stale = true
		e.gen++
		c.group.Forget(string(k))
		notify = append(notify, k)
	}
	c.mu.Unlock()

	for _, k := range notify {
		c.notify(k)
	}
}

// Purge drops every entry whose key starts with prefix, values included.
func (c *Client) Purge(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k := range c.entries {
		if strings.HasPrefix(string(k), string(prefix)) {
			delete(c.entries, k)
			c.group.Forget(string(k))
			n++
		}
	}
	return n
}

// Sweep drops entries past their evict window that nobody subscribes to.
func (c *Client) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for k, e := range c.entries {
		if e.fetching || len(c.subs[k]) > 0 {
			continue
		}
		last := e.fetchedAt
		if e.failedAt.After(last) {
			last = e.failedAt
		}
		if now.Sub(last) >= e.evict {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Run sweeps the cache every interval until ctx is done.
func (c *Client) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Sweep(); n > 0 {
				c.log.Debug("swept cache entries", slog.Int("count", n))
			}
		}
	}
}

// Len returns the number of entries.
func (c *Client) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// fetchFunc is the untyped form of a Request's fetcher.
type fetchFunc func(ctx context.Context) (any, error)

// lookup classifies the entry for key at the current time.
func (c *Client) lookup(key Key) (value any, fetchedAt time.Time, hit, stale bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.hasValue || e.err != nil || e.stale {
		return nil, time.Time{}, false, false
	}
	age := c.now().Sub(e.fetchedAt)
	switch {
	case age < e.fresh:
		return e.value, e.fetchedAt, true, false
	case age < e.evict:
		return e.value, e.fetchedAt, true, true
	}
	return nil, time.Time{}, false, false
}

// fetch joins or starts the shared fetch for key and waits for it or ctx.
func (c *Client) fetch(ctx context.Context, key Key, fn fetchFunc, fresh, evict time.Duration) (any, time.Time, error) {
	ch := c.group.DoChan(string(key), func() (any, error) {
		return c.load(context.WithoutCancel(ctx), key, fn, fresh, evict)
	})

	select {
	case <-ctx.Done():
		return nil, time.Time{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, time.Time{}, res.Err
		}
		l := res.Val.(loaded)
		return l.value, l.at, nil
	}
}

// refresh starts a background fetch for key unless one is already in flight.
func (c *Client) refresh(ctx context.Context, key Key, fn fetchFunc, fresh, evict time.Duration) {
	c.group.DoChan(string(key), func() (any, error) {
		return c.load(context.WithoutCancel(ctx), key, fn, fresh, evict)
	})
}

type loaded struct {
	value any
	at    time.Time
}

func (c *Client) load(ctx context.Context, key Key, fn fetchFunc, fresh, evict time.Duration) (any, error) {
	c.mu.Lock()
	e := c.entries[key]
	if e == nil {
		e = &entry{}
		c.entries[key] = e
	}
	e.fetching = true
	e.fresh, e.evict = fresh, evict
	gen := e.gen
	c.mu.Unlock()

	value, err := c.withRetry(ctx, fn)

	c.mu.Lock()
	now := c.now()
	e.fetching = false
	// A purged entry keeps the result for the waiting callers only.
	if c.entries[key] == e {
		if err != nil {
			e.err = err
			e.failedAt = now
		} else {
			e.value, e.hasValue, e.err = value, true, nil
			e.fetchedAt = now
			e.stale = e.gen != gen
		}
	}
	c.mu.Unlock()

	c.notify(key)

	if err != nil {
		c.log.WarnContext(ctx, "cache fetch failed", slog.String("key", string(key)), slog.String("error", err.Error()))
		return nil, err
	}
	return loaded{value: value, at: now}, nil
}

// withRetry runs fn and retries it exactly once on failure.
func (c *Client) withRetry(ctx context.Context, fn fetchFunc) (any, error) {
	var value any
	backoff := retry.WithMaxRetries(1, retry.NewConstant(c.retryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		value = v
		return nil
	})
	return value, err
}

func (c *Client) notify(key Key) {
	c.mu.Lock()
	fns := make([]func(Key), 0, len(c.subs[key]))
	for _, fn := range c.subs[key] {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(key)
	}
}

func (c *Client) windows(fresh, evict time.Duration) (time.Duration, time.Duration) {
	return normalizeWindows(fresh, evict, c.freshWindow, c.evictWindow)
}

func (c *Client) peek(key Key) (e entry, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[key]
	if !ok {
		return entry{}, false
	}
	return *p, true
}
