// Package cli provides the command-line interface for termcalc
package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"termcalc/internal/domain"
	"termcalc/internal/input"
)

// runSession performs one calculation: menu, selector, two operands,
// dispatch, one result or diagnostic line. There is no retry loop; the
// first invalid token ends the run.
func runSession(cmd *cobra.Command, _ []string) error {
	a := App(cmd)
	a.Terminal.Menu()

	collector := input.NewCollector(a.In, a.Terminal, a.Logger)

	op, err := collector.Selector()
	if err != nil {
		a.Terminal.Diagnostic("Invalid input")
		return err
	}

	first, err := collector.Operand("first")
	if err != nil {
		a.Terminal.Diagnostic("Invalid input")
		return err
	}

	second, err := collector.Operand("second")
	if err != nil {
		a.Terminal.Diagnostic("Invalid input")
		return err
	}

	a.Logger.Debug("dispatching operation",
		zap.Stringer("operation", op),
		zap.Float64("a", first),
		zap.Float64("b", second))

	result, err := a.Calc.Apply(op, first, second)
	switch {
	case errors.Is(err, domain.ErrDivisionByZero):
		// A zero divisor is a reported outcome of the run, not a CLI
		// failure: the diagnostic goes to stdout and the process still
		// exits zero.
		a.Terminal.Diagnostic("Error! Division by zero.")
		return nil
	case errors.Is(err, domain.ErrUnknownOperation):
		// Unreachable after selector validation; kept as a fallback.
		a.Terminal.Diagnostic("Invalid choice")
		return nil
	case err != nil:
		return err
	}

	a.Terminal.Result(result)
	return nil
}
