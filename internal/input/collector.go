// Package input reads and validates the tokens of a calculation
// session: one operation selector followed by two operands.
package input

import (
	"bufio"
	"io"
	"strconv"

	"go.uber.org/zap"

	"termcalc/internal/domain"
	"termcalc/internal/ui"
)

// Collector reads whitespace-delimited tokens from a single input
// stream. Every read validates immediately; the first failure is final
// and no further tokens are consumed.
type Collector struct {
	scanner *bufio.Scanner
	term    *ui.Terminal
	logger  *zap.Logger
}

// NewCollector creates a collector over r, prompting through term.
func NewCollector(r io.Reader, term *ui.Terminal, logger *zap.Logger) *Collector {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Collector{scanner: scanner, term: term, logger: logger}
}

// Selector prompts for and reads the operation selector, validating
// that it parses as an integer in the supported range.
func (c *Collector) Selector() (domain.Operation, error) {
	c.term.Prompt("Enter choice (1/2/3/4): ")

	token, err := c.next("choice")
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		c.logger.Debug("selector is not an integer", zap.String("token", token))
		return 0, domain.NewParseError("choice", token)
	}

	op := domain.Operation(n)
	if !op.Valid() {
		c.logger.Debug("selector out of range", zap.Int("selector", n))
		return 0, domain.NewParseError("choice", token)
	}
	return op, nil
}

// Operand prompts for and reads one floating-point operand. field is
// the position label used in prompts and errors ("first" or "second").
func (c *Collector) Operand(field string) (float64, error) {
	c.term.Prompt("Enter " + field + " number: ")

	token, err := c.next(field + " number")
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		c.logger.Debug("operand is not a number",
			zap.String("field", field), zap.String("token", token))
		return 0, domain.NewParseError(field+" number", token)
	}
	return v, nil
}

// next returns the next token, or a ParseError if the stream ends or
// fails before one arrives.
func (c *Collector) next(field string) (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			c.logger.Debug("input read failed", zap.String("field", field), zap.Error(err))
		}
		return "", domain.NewParseError(field, "")
	}
	return c.scanner.Text(), nil
}
