// Package modcache memoizes named, lazily built values. The first Get for a
// name runs its registered loader; later calls return the stored result until
// Clear is called.
package modcache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ErrUnknownModule is returned by Get for names with no registered loader.
var ErrUnknownModule = errors.New("unknown module")

// Loader builds the value for one name.
type Loader[V any] func(ctx context.Context) (V, error)

// Stats counts cache outcomes since construction.
type Stats struct {
	Hits   int
	Misses int
}

// Cache maps names to memoized loader results. Safe for concurrent use;
// concurrent first requests for one name share a single load.
type Cache[V any] struct {
	mu      sync.Mutex
	loaders map[string]Loader[V]
	values  map[string]V
	stats   Stats
	group   singleflight.Group
	logger  *log.Logger
}

// New returns an empty Cache. A nil logger discards output.
func New[V any](logger *log.Logger) *Cache[V] {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Cache[V]{
		loaders: make(map[string]Loader[V]),
		values:  make(map[string]V),
		logger:  logger,
	}
}

// Register installs the loader for name, replacing any previous loader. A
// value already cached under name is kept.
func (c *Cache[V]) Register(name string, load Loader[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaders[name] = load
}

// Names returns the registered names in sorted order.
func (c *Cache[V]) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.loaders))
	for name := range c.loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the value for name, loading it on first use. Loader errors are
// returned and not cached.
func (c *Cache[V]) Get(ctx context.Context, name string) (V, error) {
	c.mu.Lock()
	if v, ok := c.values[name]; ok {
		c.stats.Hits++
		c.mu.Unlock()
		c.logHit(name)
		return v, nil
	}
	load, ok := c.loaders[name]
	if !ok {
		c.mu.Unlock()
		var zero V
		return zero, fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}
	c.mu.Unlock()

	res, err, _ := c.group.Do(name, func() (any, error) {
		return c.loadOnce(ctx, name, load)
	})
	if err != nil {
		var zero V
		return zero, err
	}
	// A nil interface value from the loader arrives here as a nil any.
	v, _ := res.(V)
	return v, nil
}

// loadOnce runs load for name unless a value was stored after the caller's
// fast-path check. It is called inside the singleflight group.
func (c *Cache[V]) loadOnce(ctx context.Context, name string, load Loader[V]) (any, error) {
	c.mu.Lock()
	if v, ok := c.values[name]; ok {
		c.stats.Hits++
		c.mu.Unlock()
		c.logHit(name)
		return v, nil
	}
	c.stats.Misses++
	c.mu.Unlock()

	c.logger.Printf("loading module %s", name)
	v, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load module %s: %w", name, err)
	}

	c.mu.Lock()
	c.values[name] = v
	c.mu.Unlock()
	return v, nil
}

func (c *Cache[V]) logHit(name string) {
	c.logger.Printf("module %s served from cache", name)
}

// Preload loads every named module concurrently. The first failure cancels
// the remaining loads and is returned.
func (c *Cache[V]) Preload(ctx context.Context, names ...string) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			_, err := c.Get(gctx, name)
			return err
		})
	}
	return g.Wait()
}

// Has reports whether a value for name is currently cached.
func (c *Cache[V]) Has(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[name]
	return ok
}

// Len returns the number of cached values.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

// Stats returns the hit and miss counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Clear drops every cached value. Loaders stay registered.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.values)
	c.logger.Printf("module cache cleared")
}
