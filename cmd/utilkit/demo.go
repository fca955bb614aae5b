package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/dusk-indust/utilkit/internal/config"
	"github.com/dusk-indust/utilkit/internal/dateutil"
	"github.com/dusk-indust/utilkit/internal/mathutil"
	"github.com/dusk-indust/utilkit/internal/strutil"
	"github.com/dusk-indust/utilkit/internal/toolkit"
	"github.com/dusk-indust/utilkit/internal/users"
)

// demo writes the demonstration sections to w. Write errors are kept in err
// and surface once at the end.
type demo struct {
	w   io.Writer
	err error
}

func (d *demo) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *demo) section(title string) {
	d.printf("\n========== %s ==========\n", title)
}

func (d *demo) banner(title string) {
	rule := strings.Repeat("=", 50)
	d.printf("%s\n%s\n%s\n", rule, title, rule)
}

// notifier prints registry events into the demo output.
func (d *demo) notifier() users.Notifier {
	return users.NotifierFunc(func(e users.Event) {
		d.printf("user %s %s\n", e.User.Name, e.Kind)
	})
}

func sampleUsers() []users.User {
	return []users.User{
		users.NewSampleUser(1, "Zhang San", "zhangsan@example.com"),
		users.NewSampleUser(2, "Li Si", "lisi@example.com"),
		{ID: 3, Name: "Wang Wu", Email: "wangwu@example.com", Age: 25, IsActive: true},
	}
}

func runDemo(ctx context.Context, w io.Writer, cfg config.AppConfig, logger *log.Logger) error {
	d := &demo{w: w}

	d.banner("utilkit multi-module demo")

	d.showMath()
	d.showStrings()
	d.showUsers()
	d.showDates(time.Now())
	d.showConfig(cfg)
	d.showUnified()
	d.showErrorHandling()

	if err := d.advanced(ctx, logger); err != nil {
		return err
	}

	d.banner("Demo complete")
	return d.err
}

func (d *demo) showMath() {
	d.section("Arithmetic")

	a, b := 10.0, 3.0
	d.printf("%g + %g = %g\n", a, b, mathutil.Add(a, b))
	d.printf("%g - %g = %g\n", a, b, mathutil.Subtract(a, b))
	d.printf("%g × %g = %g\n", a, b, mathutil.Multiply(a, b))

	radius := 5.0
	d.printf("Area of a circle with radius %g: %g\n", radius, mathutil.CircleArea(radius))
	d.printf("PI = %g\n", mathutil.PI)
}

func (d *demo) showStrings() {
	d.section("Strings")

	text := "hello world"
	palindrome := "A man a plan a canal Panama"
	long := "This is a rather long sentence that needs to be truncated"

	d.printf("Text: %q\n", text)
	d.printf("Capitalized: %q\n", strutil.Capitalize(text))
	d.printf("Reversed: %q\n", strutil.Reverse(text))

	d.printf("\nIs %q a palindrome? %t\n", palindrome, strutil.IsPalindrome(palindrome))
	d.printf("Word count: %d\n", strutil.CountWords(palindrome))

	d.printf("\nText: %q\n", long)
	d.printf("Truncated (20): %q\n", strutil.Truncate(long, 20))
}

func (d *demo) showUsers() {
	d.section("Users")

	mgr := users.NewManager(users.WithNotifier(d.notifier()))
	for _, u := range sampleUsers() {
		mgr.Add(u)
	}

	d.printf("\nTotal users: %d\n", mgr.Count())
	d.printf("Active users: %d\n", len(mgr.ActiveUsers()))

	if u, ok := mgr.FindByID(2); ok {
		d.printf("Found user: %s (%s)\n", u.Name, u.Email)
	}

	d.printf("\nRoles:\n")
	for _, r := range users.Roles() {
		d.printf("- %s\n", r)
	}
}

func (d *demo) showDates(today time.Time) {
	d.section("Dates")

	tomorrow := dateutil.AddDays(today, 1)
	first := dateutil.FirstDayOfMonth(today)

	d.printf("Today: %s\n", dateutil.FormatDate(today, dateutil.LayoutISO))
	d.printf("Tomorrow: %s\n", dateutil.FormatDate(tomorrow, dateutil.LayoutEuropean))
	d.printf("First day of month: %s\n", dateutil.FormatDate(first, dateutil.LayoutUS))
	d.printf("Today and tomorrow are %d day(s) apart\n", dateutil.DaysDifference(today, tomorrow))
	d.printf("A week has %d days\n", dateutil.DaysInWeek)
	d.printf("Current timestamp: %d\n", dateutil.Now())
}

func (d *demo) showConfig(current config.AppConfig) {
	d.section("Config")

	def, err := config.JSON(config.Default())
	if err != nil {
		d.err = err
		return
	}
	d.printf("Default config:\n%s\n", def)

	cur, err := config.JSON(current)
	if err != nil {
		d.err = err
		return
	}
	d.printf("\nCurrent config:\n%s\n", cur)
}

func (d *demo) showUnified() {
	d.section("Unified access")

	u := toolkit.New()
	d.printf("Utils.Math: 5 + 3 = %g\n", u.Math.Add(5, 3))
	d.printf("Utils.String: %q\n", u.String.Capitalize("typescript"))
	d.printf("Utils.Date: timestamp %d\n", u.Date.Now())

	mgr := u.NewUserManager(users.WithNotifier(d.notifier()))
	d.printf("Utils.Users: initial count %d\n", mgr.Count())
}

func (d *demo) showErrorHandling() {
	d.section("Error handling")

	result, err := toolkit.New().Math.Divide(10, 0)
	if errors.Is(err, mathutil.ErrDivideByZero) {
		d.printf("Caught error: %v\n", err)
		return
	}
	d.printf("10 ÷ 0 = %g\n", result)
}
