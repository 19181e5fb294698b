// Package calc implements the calculator state machine driven by
// confirmed gesture symbols.
package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ayusman/ganita/internal/gesture"
)

// ErrorKind identifies a recoverable calculator fault.
type ErrorKind string

// ErrDivisionByZero is the sole defined fault: equals with a zero
// second operand. It clears the working state and surfaces a one-shot
// display message until the next symbol.
const ErrDivisionByZero ErrorKind = "Division by zero"

// DefaultHistoryLimit is how many history entries retrieval returns
// when the caller does not say otherwise.
const DefaultHistoryLimit = 5

// Engine holds calculator state across confirmed symbols. It is owned
// by a single goroutine; callers that share results take snapshots.
//
// The digit buffer holds at most one digit: a second digit before an
// operator or clear is silently dropped. operand1 is only ever set
// together with an operator. History is append-only and bounded on
// read, not on storage.
type Engine struct {
	buffer   string
	operator gesture.Symbol
	operand1 *float64
	result   *float64
	errKind  ErrorKind
	history  []string
}

// NewEngine creates an Engine in the empty state.
func NewEngine() *Engine {
	return &Engine{}
}

// Process consumes one confirmed symbol and reports whether the state
// changed. Any pending error is cleared before the symbol is applied.
func (e *Engine) Process(symbol gesture.Symbol) bool {
	if symbol == gesture.None {
		return false
	}

	e.errKind = ""

	switch {
	case symbol.IsDigit():
		if e.buffer != "" {
			// Single-digit entry: a second digit is dropped.
			return false
		}
		e.buffer = string(symbol)
		return true

	case symbol == gesture.Clear:
		e.reset()
		return true

	case symbol.IsOperator():
		e.applyOperator(symbol)
		return true

	case symbol == gesture.Equals:
		e.evaluate()
		return true
	}

	return false
}

// applyOperator commits or chains the pending operand.
func (e *Engine) applyOperator(op gesture.Symbol) {
	switch {
	case e.buffer != "" && e.operand1 == nil:
		v := parseDigits(e.buffer)
		e.operand1 = &v
		e.buffer = ""
		e.operator = op

	case e.buffer != "":
		// Chained operation: evaluate what is pending, then carry the
		// intermediate result into the first operand so the next digit
		// and equals see a complete expression.
		e.evaluate()
		if e.errKind == "" && e.result != nil {
			e.operand1 = e.result
			e.result = nil
			e.operator = op
		}

	case e.result != nil:
		// Continue from the previous result.
		e.operand1 = e.result
		e.result = nil
		e.operator = op
	}
}

// evaluate applies the pending operator. Requires operand1, an
// operator and a buffered second operand; otherwise it is a no-op.
func (e *Engine) evaluate() {
	if e.operand1 == nil || e.operator == gesture.None {
		return
	}
	if e.buffer == "" {
		return
	}

	operand1 := *e.operand1
	operand2 := parseDigits(e.buffer)

	var result float64
	switch e.operator {
	case gesture.Add:
		result = operand1 + operand2
	case gesture.Subtract:
		result = operand1 - operand2
	case gesture.Multiply:
		result = operand1 * operand2
	case gesture.Divide:
		if operand2 == 0 {
			e.reset()
			e.errKind = ErrDivisionByZero
			return
		}
		result = operand1 / operand2
	default:
		return
	}

	e.history = append(e.history, fmt.Sprintf("%s %s %s = %s",
		historyNumber(operand1), e.operator, historyNumber(operand2), historyNumber(result)))

	e.result = &result
	e.operand1 = nil
	e.operator = gesture.None
	e.buffer = ""
}

// reset clears all working state. History is untouched.
func (e *Engine) reset() {
	e.buffer = ""
	e.operator = gesture.None
	e.operand1 = nil
	e.result = nil
	e.errKind = ""
}

// DisplayText derives the calculator display from the current state.
func (e *Engine) DisplayText() string {
	if e.errKind != "" {
		return "Error: " + string(e.errKind)
	}

	if e.result != nil {
		return formatDisplay(*e.result)
	}

	if e.buffer != "" {
		return e.buffer
	}

	if e.operand1 != nil && e.operator != gesture.None {
		return formatDisplay(*e.operand1) + " " + string(e.operator)
	}

	return "0"
}

// ErrorKind returns the pending fault, or the empty string.
func (e *Engine) ErrorKind() ErrorKind {
	return e.errKind
}

// History returns up to max entries, most recent first. Non-positive
// max falls back to DefaultHistoryLimit.
func (e *Engine) History(max int) []string {
	if max <= 0 {
		max = DefaultHistoryLimit
	}
	if max > len(e.history) {
		max = len(e.history)
	}

	entries := make([]string, max)
	for i := 0; i < max; i++ {
		entries[i] = e.history[len(e.history)-1-i]
	}
	return entries
}

// parseDigits converts the digit buffer to a float. The buffer only
// ever holds digits the engine wrote itself.
func parseDigits(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// formatDisplay renders a value for the display: whole numbers as
// plain integers, everything else to four decimal places with
// trailing zeros and any trailing point stripped.
func formatDisplay(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// historyNumber renders a value for a history entry: whole numbers
// keep a trailing .0, everything else uses the shortest decimal form.
func historyNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
