package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/dusk-indust/utilkit/internal/toolkit"
	"github.com/dusk-indust/utilkit/internal/users"
)

func runAdvanced(ctx context.Context, w io.Writer, logger *log.Logger) error {
	d := &demo{w: w}
	d.banner("Advanced module patterns")
	if err := d.advanced(ctx, logger); err != nil {
		return err
	}
	d.banner("Advanced demo complete")
	return d.err
}

// advanced shows lazy loading, conditional loading, the calculator factory
// and the module cache. Cache messages go to logger.
func (d *demo) advanced(ctx context.Context, logger *log.Logger) error {
	cache := toolkit.NewModuleCache(logger)

	d.section("Lazy loading")
	m, err := toolkit.LoadMath(ctx, cache)
	if err != nil {
		return fmt.Errorf("load math module: %w", err)
	}
	d.printf("Lazily loaded: 2 + 3 = %g\n", m.Add(2, 3))

	s, err := toolkit.LoadString(ctx, cache)
	if err != nil {
		return fmt.Errorf("load string module: %w", err)
	}
	d.printf("Lazily loaded string module: %s\n", s.Capitalize("dynamic import"))

	d.section("Conditional loading")
	d.conditional(true)
	d.conditional(false)

	d.section("Calculator factory")
	calc, err := toolkit.NewCalculator(ctx, cache)
	if err != nil {
		return err
	}
	d.printf("Factory calculator: 5 + 3 = %g\n", calc.Add(5, 3))

	d.section("Module cache")
	cache.Clear()

	first, err := toolkit.LoadMath(ctx, cache)
	if err != nil {
		return fmt.Errorf("load math module: %w", err)
	}
	d.printf("First use: 10 + 5 = %g\n", first.Add(10, 5))

	again, err := toolkit.LoadMath(ctx, cache)
	if err != nil {
		return fmt.Errorf("load math module: %w", err)
	}
	d.printf("Cached use: 7 + 8 = %g\n", again.Add(7, 8))

	stats := cache.Stats()
	d.printf("Cache hits: %d, misses: %d\n", stats.Hits, stats.Misses)

	if err := cache.Preload(ctx, cache.Names()...); err != nil {
		return fmt.Errorf("preload modules: %w", err)
	}
	d.printf("Preloaded modules: %d\n", cache.Len())

	cache.Clear()
	d.printf("Module cache cleared\n")
	return nil
}

func (d *demo) conditional(useUsers bool) {
	if !useUsers {
		d.printf("Basic features only, user registry not created\n")
		return
	}
	mgr := users.NewManager(users.WithNotifier(d.notifier()))
	u := users.NewSampleUser(1, "Conditional User", "conditional@example.com")
	mgr.Add(u)
	d.printf("Conditionally created user %s\n", u.Name)
}
