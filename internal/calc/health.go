package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"termcalc/internal/domain"
)

// HealthCheck performs engine self-diagnostics
func (e *Engine) HealthCheck() []domain.HealthCheck {
	checks := make([]domain.HealthCheck, 0, 3)
	checks = append(checks, e.checkOperations())
	checks = append(checks, e.checkZeroDivisor())
	checks = append(checks, e.checkFormatting())
	return checks
}

// checkOperations evaluates each operation against a known fixture.
func (e *Engine) checkOperations() domain.HealthCheck {
	fixtures := []struct {
		op   domain.Operation
		a, b float64
		want float64
	}{
		{domain.OpAdd, 2, 3, 5},
		{domain.OpSubtract, 5, 3, 2},
		{domain.OpMultiply, 4, 2.5, 10},
		{domain.OpDivide, 10, 4, 2.5},
	}

	for _, f := range fixtures {
		got, err := e.Apply(f.op, f.a, f.b)
		if err != nil || got != f.want {
			return domain.HealthCheck{
				Name:    "Arithmetic engine",
				Status:  domain.StatusError,
				Message: fmt.Sprintf("%s(%g, %g) = %g, want %g", f.op, f.a, f.b, got, f.want),
			}
		}
	}
	return domain.HealthCheck{Name: "Arithmetic engine", Status: domain.StatusOK, Message: "All operations verified"}
}

func (e *Engine) checkZeroDivisor() domain.HealthCheck {
	if _, err := e.Apply(domain.OpDivide, 1, 0); !errors.Is(err, domain.ErrDivisionByZero) {
		return domain.HealthCheck{
			Name:    "Zero divisor guard",
			Status:  domain.StatusError,
			Message: "Division by zero was not rejected",
		}
	}
	return domain.HealthCheck{Name: "Zero divisor guard", Status: domain.StatusOK, Message: "Rejected as expected"}
}

// checkFormatting verifies result rendering round-trips through the
// platform's float parser.
func (e *Engine) checkFormatting() domain.HealthCheck {
	for _, v := range []float64{0.1 + 0.2, 1.0 / 3.0, 1e21, math.SmallestNonzeroFloat64} {
		back, err := strconv.ParseFloat(FormatResult(v), 64)
		if err != nil || back != v {
			return domain.HealthCheck{
				Name:    "Result formatting",
				Status:  domain.StatusError,
				Message: fmt.Sprintf("%v does not round-trip (%q)", v, FormatResult(v)),
			}
		}
	}
	return domain.HealthCheck{Name: "Result formatting", Status: domain.StatusOK, Message: "Round-trip verified"}
}
