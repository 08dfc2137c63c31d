package calc

import (
	"termcalc/internal/domain"
)

// Calculator defines the operation dispatch used by the session.
type Calculator interface {
	Apply(op domain.Operation, a, b float64) (float64, error)
	HealthCheck() []domain.HealthCheck
}
