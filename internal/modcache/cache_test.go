package modcache

import (
	"bytes"
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingLoader(calls *atomic.Int32, v string) Loader[string] {
	return func(context.Context) (string, error) {
		calls.Add(1)
		return v, nil
	}
}

func TestCache_MemoizesFirstLoad(t *testing.T) {
	var calls atomic.Int32
	c := New[string](nil)
	c.Register("math", countingLoader(&calls, "math-module"))
	ctx := context.Background()

	first, err := c.Get(ctx, "math")
	require.NoError(t, err)
	second, err := c.Get(ctx, "math")
	require.NoError(t, err)

	assert.Equal(t, "math-module", first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load(), "loader should run once")
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
	assert.True(t, c.Has("math"))
	assert.Equal(t, 1, c.Len())
}

func TestCache_UnknownModule(t *testing.T) {
	c := New[string](nil)

	_, err := c.Get(context.Background(), "graphics")
	require.ErrorIs(t, err, ErrUnknownModule)
	assert.Contains(t, err.Error(), "graphics")
	assert.Equal(t, 0, c.Len())
}

func TestCache_LoaderErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	fail := true
	c := New[string](nil)
	c.Register("date", func(context.Context) (string, error) {
		if fail {
			return "", boom
		}
		return "date-module", nil
	})
	ctx := context.Background()

	_, err := c.Get(ctx, "date")
	require.ErrorIs(t, err, boom)
	assert.False(t, c.Has("date"))

	fail = false
	v, err := c.Get(ctx, "date")
	require.NoError(t, err)
	assert.Equal(t, "date-module", v)
}

func TestCache_Clear(t *testing.T) {
	var calls atomic.Int32
	c := New[string](nil)
	c.Register("string", countingLoader(&calls, "string-module"))
	ctx := context.Background()

	_, err := c.Get(ctx, "string")
	require.NoError(t, err)
	c.Clear()
	assert.Equal(t, 0, c.Len())

	_, err = c.Get(ctx, "string")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "cleared entries are reloaded")
}

func TestCache_ConcurrentFirstLoadRunsOnce(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	c := New[string](nil)
	c.Register("math", func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return "math-module", nil
	})

	const n = 16
	var wg sync.WaitGroup
	results := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "math")
			assert.NoError(t, err)
			results[i] = v
		}()
	}

	// Hold the first load open until it is running and the other callers
	// have had time to queue behind it.
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("loader never started")
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "math-module", r)
	}
	assert.Equal(t, 1, c.Stats().Misses)
}

// named is an interface value type, so loaders may legally return nil.
type named interface {
	Name() string
}

func TestCache_NilInterfaceValue(t *testing.T) {
	var calls atomic.Int32
	c := New[named](nil)
	c.Register("nil", func(context.Context) (named, error) {
		calls.Add(1)
		return nil, nil
	})
	ctx := context.Background()

	var (
		v   named
		err error
	)
	require.NotPanics(t, func() { v, err = c.Get(ctx, "nil") })
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NotPanics(t, func() { v, err = c.Get(ctx, "nil") })
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, int32(1), calls.Load(), "a nil value is still memoized")
	assert.True(t, c.Has("nil"))
}

func TestCache_LateHitInsideLoadIsLogged(t *testing.T) {
	var buf bytes.Buffer
	c := New[int](log.New(&buf, "", 0))
	c.Register("answer", func(context.Context) (int, error) { return 42, nil })
	ctx := context.Background()

	_, err := c.Get(ctx, "answer")
	require.NoError(t, err)
	buf.Reset()

	// A caller that missed the fast path finds the stored value inside the
	// load group and must not run its loader.
	v, err := c.loadOnce(ctx, "answer", func(context.Context) (int, error) {
		return 0, errors.New("loader must not run")
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Contains(t, buf.String(), "module answer served from cache")
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
}

func TestCache_Preload(t *testing.T) {
	var calls atomic.Int32
	c := New[string](nil)
	c.Register("math", countingLoader(&calls, "m"))
	c.Register("string", countingLoader(&calls, "s"))
	c.Register("date", countingLoader(&calls, "d"))

	require.NoError(t, c.Preload(context.Background(), c.Names()...))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []string{"date", "math", "string"}, c.Names())

	err := c.Preload(context.Background(), "math", "nope")
	require.ErrorIs(t, err, ErrUnknownModule)
}

func TestCache_Logging(t *testing.T) {
	var buf bytes.Buffer
	c := New[int](log.New(&buf, "", 0))
	c.Register("answer", func(context.Context) (int, error) { return 42, nil })
	ctx := context.Background()

	_, _ = c.Get(ctx, "answer")
	_, _ = c.Get(ctx, "answer")
	c.Clear()

	out := buf.String()
	assert.Contains(t, out, "loading module answer")
	assert.Contains(t, out, "module answer served from cache")
	assert.Contains(t, out, "module cache cleared")
}
