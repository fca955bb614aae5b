// Package toolkit groups the helper packages behind one value, so callers can
// reach every helper through a single namespace-like struct.
package toolkit

import (
	"time"

	"github.com/dusk-indust/utilkit/internal/config"
	"github.com/dusk-indust/utilkit/internal/dateutil"
	"github.com/dusk-indust/utilkit/internal/mathutil"
	"github.com/dusk-indust/utilkit/internal/strutil"
	"github.com/dusk-indust/utilkit/internal/users"
)

// Module names used by the module cache and the manifest.
const (
	ModuleMath   = "math"
	ModuleString = "string"
	ModuleDate   = "date"
	ModuleUsers  = "users"
	ModuleConfig = "config"
)

// Module is a named group of helper functions.
type Module interface {
	ModuleName() string
}

// MathModule exposes the mathutil helpers.
type MathModule struct {
	Add        func(a, b float64) float64
	Subtract   func(a, b float64) float64
	Multiply   func(a, b float64) float64
	Divide     func(a, b float64) (float64, error)
	CircleArea func(radius float64) float64
	PI         float64
	E          float64
}

func (MathModule) ModuleName() string { return ModuleMath }

// StringModule exposes the strutil helpers.
type StringModule struct {
	Capitalize   func(s string) string
	Reverse      func(s string) string
	IsPalindrome func(s string) bool
	CountWords   func(s string) int
	Truncate     func(s string, maxLength int) string
}

func (StringModule) ModuleName() string { return ModuleString }

// DateModule exposes the dateutil helpers.
type DateModule struct {
	FormatDate      func(t time.Time, layout dateutil.Layout) string
	DaysDifference  func(a, b time.Time) int
	IsLeapYear      func(year int) bool
	Now             func() int64
	AddDays         func(t time.Time, n int) time.Time
	FirstDayOfMonth func(t time.Time) time.Time
	LastDayOfMonth  func(t time.Time) time.Time
	DaysInWeek      int
	MonthsInYear    int
}

func (DateModule) ModuleName() string { return ModuleDate }

// Utils is the aggregate of all helper modules.
type Utils struct {
	Math   MathModule
	String StringModule
	Date   DateModule
	// NewUserManager constructs an empty user registry.
	NewUserManager func(opts ...users.Option) *users.Manager
	// Config returns a copy of the default settings.
	Config func() config.AppConfig
}

// NewMathModule returns the math function group.
func NewMathModule() MathModule {
	return MathModule{
		Add:        mathutil.Add,
		Subtract:   mathutil.Subtract,
		Multiply:   mathutil.Multiply,
		Divide:     mathutil.Divide,
		CircleArea: mathutil.CircleArea,
		PI:         mathutil.PI,
		E:          mathutil.E,
	}
}

// NewStringModule returns the string function group.
func NewStringModule() StringModule {
	return StringModule{
		Capitalize:   strutil.Capitalize,
		Reverse:      strutil.Reverse,
		IsPalindrome: strutil.IsPalindrome,
		CountWords:   strutil.CountWords,
		Truncate:     strutil.Truncate,
	}
}

// NewDateModule returns the date function group.
func NewDateModule() DateModule {
	return DateModule{
		FormatDate:      dateutil.FormatDate,
		DaysDifference:  dateutil.DaysDifference,
		IsLeapYear:      dateutil.IsLeapYear,
		Now:             dateutil.Now,
		AddDays:         dateutil.AddDays,
		FirstDayOfMonth: dateutil.FirstDayOfMonth,
		LastDayOfMonth:  dateutil.LastDayOfMonth,
		DaysInWeek:      dateutil.DaysInWeek,
		MonthsInYear:    dateutil.MonthsInYear,
	}
}

// New returns a Utils wired to every helper package.
func New() Utils {
	return Utils{
		Math:           NewMathModule(),
		String:         NewStringModule(),
		Date:           NewDateModule(),
		NewUserManager: users.NewManager,
		Config:         config.Get,
	}
}
