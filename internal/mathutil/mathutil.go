// Package mathutil provides the arithmetic helpers exposed by the toolkit.
package mathutil

import "errors"

// PI is the five-decimal circle constant used by CircleArea. It is not
// math.Pi.
const PI = 3.14159

// E is Euler's number at the same precision as PI.
const E = 2.71828

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("divisor must not be zero")

// Add returns a + b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or ErrDivideByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// CircleArea returns PI * radius^2.
func CircleArea(radius float64) float64 {
	return PI * radius * radius
}
