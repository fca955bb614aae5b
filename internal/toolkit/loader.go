package toolkit

import (
	"context"
	"fmt"
	"log"

	"github.com/dusk-indust/utilkit/internal/modcache"
)

// NewModuleCache returns a module cache with the math, string and date
// modules registered. A nil logger discards cache messages.
func NewModuleCache(logger *log.Logger) *modcache.Cache[Module] {
	c := modcache.New[Module](logger)
	c.Register(ModuleMath, func(context.Context) (Module, error) {
		return NewMathModule(), nil
	})
	c.Register(ModuleString, func(context.Context) (Module, error) {
		return NewStringModule(), nil
	})
	c.Register(ModuleDate, func(context.Context) (Module, error) {
		return NewDateModule(), nil
	})
	return c
}

// LoadMath fetches the math module from c.
func LoadMath(ctx context.Context, c *modcache.Cache[Module]) (MathModule, error) {
	return load[MathModule](ctx, c, ModuleMath)
}

// LoadString fetches the string module from c.
func LoadString(ctx context.Context, c *modcache.Cache[Module]) (StringModule, error) {
	return load[StringModule](ctx, c, ModuleString)
}

// LoadDate fetches the date module from c.
func LoadDate(ctx context.Context, c *modcache.Cache[Module]) (DateModule, error) {
	return load[DateModule](ctx, c, ModuleDate)
}

func load[M Module](ctx context.Context, c *modcache.Cache[Module], name string) (M, error) {
	var zero M
	m, err := c.Get(ctx, name)
	if err != nil {
		return zero, err
	}
	typed, ok := m.(M)
	if !ok {
		return zero, fmt.Errorf("module %s has type %T, want %T", name, m, zero)
	}
	return typed, nil
}

// Calculator is the subset of the math module built by NewCalculator.
type Calculator interface {
	Add(a, b float64) float64
	Subtract(a, b float64) float64
}

type calculator struct {
	math MathModule
}

func (c calculator) Add(a, b float64) float64      { return c.math.Add(a, b) }
func (c calculator) Subtract(a, b float64) float64 { return c.math.Subtract(a, b) }

// NewCalculator builds a Calculator from the cached math module.
func NewCalculator(ctx context.Context, c *modcache.Cache[Module]) (Calculator, error) {
	m, err := LoadMath(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("build calculator: %w", err)
	}
	return calculator{math: m}, nil
}
