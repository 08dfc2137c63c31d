package calc

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"

	"termcalc/internal/domain"
)

func TestOperations(t *testing.T) {
	if got := Add(2, 3); got != 5 {
		t.Errorf("Add(2, 3) = %g, want 5", got)
	}
	if got := Subtract(5, 3); got != 2 {
		t.Errorf("Subtract(5, 3) = %g, want 2", got)
	}
	if got := Multiply(4, 2.5); got != 10 {
		t.Errorf("Multiply(4, 2.5) = %g, want 10", got)
	}
}

func TestDivide(t *testing.T) {
	got, err := Divide(10, 4)
	if err != nil || got != 2.5 {
		t.Errorf("Divide(10, 4) = %g, %v, want 2.5", got, err)
	}

	if _, err := Divide(10, 0); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Errorf("Divide(10, 0) error = %v, want ErrDivisionByZero", err)
	}
	// Negative zero compares equal to zero, so it is rejected too
	if _, err := Divide(1, math.Copysign(0, -1)); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Errorf("Divide(1, -0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestDivide_IEEEPropagation(t *testing.T) {
	got, err := Divide(math.Inf(1), 2)
	if err != nil || !math.IsInf(got, 1) {
		t.Errorf("Divide(+Inf, 2) = %g, %v, want +Inf", got, err)
	}
	got, err = Divide(math.NaN(), 2)
	if err != nil || !math.IsNaN(got) {
		t.Errorf("Divide(NaN, 2) = %g, %v, want NaN", got, err)
	}
}

func TestEngine_Apply(t *testing.T) {
	e := NewEngine(zap.NewNop())

	tests := []struct {
		op   domain.Operation
		a, b float64
		want float64
	}{
		{domain.OpAdd, 2, 3, 5},
		{domain.OpSubtract, 5, 3, 2},
		{domain.OpMultiply, 4, 2.5, 10},
		{domain.OpDivide, 10, 4, 2.5},
		{domain.OpAdd, -1.5, 0.5, -1},
		{domain.OpDivide, 1, 3, 1.0 / 3.0},
	}
	for _, tt := range tests {
		got, err := e.Apply(tt.op, tt.a, tt.b)
		if err != nil {
			t.Errorf("Apply(%v, %g, %g) returned error: %v", tt.op, tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Apply(%v, %g, %g) = %g, want %g", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestEngine_Apply_DivisionByZero(t *testing.T) {
	e := NewEngine(zap.NewNop())
	if _, err := e.Apply(domain.OpDivide, 10, 0); !errors.Is(err, domain.ErrDivisionByZero) {
		t.Errorf("Apply(divide, 10, 0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestEngine_Apply_UnknownOperation(t *testing.T) {
	e := NewEngine(zap.NewNop())
	for _, op := range []domain.Operation{0, 5, -1} {
		if _, err := e.Apply(op, 1, 2); !errors.Is(err, domain.ErrUnknownOperation) {
			t.Errorf("Apply(%d, 1, 2) error = %v, want ErrUnknownOperation", int(op), err)
		}
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{5, "5"},
		{2, "2"},
		{10, "10"},
		{2.5, "2.5"},
		{-1, "-1"},
		{0.1, "0.1"},
	}
	for _, tt := range tests {
		if got := FormatResult(tt.v); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestEngine_HealthCheck(t *testing.T) {
	e := NewEngine(zap.NewNop())
	checks := e.HealthCheck()
	if len(checks) == 0 {
		t.Fatal("HealthCheck returned no checks")
	}
	for _, c := range checks {
		if c.Status != domain.StatusOK {
			t.Errorf("check %q = %s: %s", c.Name, c.Status, c.Message)
		}
	}
}
