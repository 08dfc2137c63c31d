// Package calc implements the four arithmetic operations and the
// dispatcher that maps a validated selector onto one of them.
package calc

import (
	"strconv"

	"go.uber.org/zap"

	"termcalc/internal/domain"
)

// Add returns the sum of a and b.
func Add(a, b float64) float64 { return a + b }

// Subtract returns the difference of a and b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 { return a * b }

// Divide returns the quotient of a and b, or ErrDivisionByZero when b
// is exactly zero. Non-zero divisors use IEEE-754 division as-is, so
// infinities and NaN propagate.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, domain.ErrDivisionByZero
	}
	return a / b, nil
}

// Engine implements Calculator
type Engine struct {
	logger *zap.Logger
}

var _ Calculator = (*Engine)(nil)

// NewEngine creates a new arithmetic engine
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger}
}

// Apply dispatches op to the matching arithmetic operation and returns
// its result. Selectors are validated at the input boundary, so the
// ErrUnknownOperation branch is a defensive fallback.
func (e *Engine) Apply(op domain.Operation, a, b float64) (float64, error) {
	switch op {
	case domain.OpAdd:
		return Add(a, b), nil
	case domain.OpSubtract:
		return Subtract(a, b), nil
	case domain.OpMultiply:
		return Multiply(a, b), nil
	case domain.OpDivide:
		return Divide(a, b)
	default:
		e.logger.Warn("selector escaped validation", zap.Int("selector", int(op)))
		return 0, domain.ErrUnknownOperation
	}
}

// FormatResult renders a computed value the way the result line reports
// it: the shortest decimal string that round-trips the float64.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
