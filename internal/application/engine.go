package application

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/bnema/pocketcalc/internal/expr"
)

const (
	DisplayZero  = "0"
	DisplayError = "Error"

	// operators are inserted as " op ", so segments are space separated
	delimiter       = " "
	operatorSymbols = "+-*/÷"
)

// Engine holds the display buffer, memory register and history of one
// calculator session. It is not safe for concurrent use; callers serialize
// actions.
type Engine struct {
	display        string
	memory         float64
	memoryStored   bool
	lastOperator   string
	justCalculated bool
	history        []domain.HistoryEntry

	formatter expr.Formatter
	logger    *slog.Logger
}

func NewEngine(formatter expr.Formatter, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		display:   DisplayZero,
		formatter: formatter,
		logger:    logger,
	}
}

func (e *Engine) SetFormatter(formatter expr.Formatter) {
	e.formatter = formatter
}

// AppendDigit handles a digit or decimal point press.
func (e *Engine) AppendDigit(d string) {
	if !isDigitInput(d) {
		return
	}

	if e.justCalculated {
		e.display = d
		e.justCalculated = false
		return
	}

	if d == "." && strings.Contains(currentSegment(e.display), ".") {
		return
	}

	if e.display == DisplayZero || e.display == DisplayError {
		e.display = d
		return
	}

	e.display += d
}

// AppendOperator inserts op, replacing an operator already at the end of the
// buffer.
func (e *Engine) AppendOperator(op string) {
	if !isOperatorInput(op) || e.display == DisplayError {
		return
	}

	base := strings.TrimRight(e.display, delimiter)
	for endsWithOperator(base) {
		_, size := utf8.DecodeLastRuneInString(base)
		base = strings.TrimRight(base[:len(base)-size], delimiter)
	}
	if base == "" {
		base = DisplayZero
	}

	e.display = base + delimiter + op + delimiter
	e.lastOperator = op
	e.justCalculated = false
}

// Calculate reduces the buffer to a result and records it in the history.
// The "/0" check is purely textual: it also rejects divisors such as 0.5 or
// 05.
func (e *Engine) Calculate() {
	if endsWithOperator(strings.TrimRight(e.display, delimiter)) {
		e.fail()
		return
	}

	normalized := expr.Normalize(e.display)
	if strings.Contains(normalized, "/0") {
		e.fail()
		return
	}

	value, err := expr.Evaluate(normalized)
	if err != nil {
		e.fail()
		return
	}

	result, err := e.formatter.Format(value)
	if err != nil {
		e.fail()
		return
	}

	e.history = append(e.history, domain.HistoryEntry{Expression: e.display, Result: result})
	e.display = result
	e.lastOperator = ""
	e.justCalculated = true
}

func (e *Engine) Clear() {
	e.display = DisplayZero
	e.lastOperator = ""
	e.justCalculated = false
}

// Percentage divides the last segment by 100. Earlier operands are left as
// they are, so "50 + 20" becomes "50 + 0.2".
func (e *Engine) Percentage() {
	e.transformLastSegment(func(v float64) float64 { return v / 100 })
}

// ToggleSign negates the last segment.
func (e *Engine) ToggleSign() {
	e.transformLastSegment(func(v float64) float64 { return -v })
}

func (e *Engine) Backspace() {
	e.justCalculated = false
	if e.display == DisplayZero || e.display == DisplayError {
		return
	}

	_, size := utf8.DecodeLastRuneInString(e.display)
	e.display = e.display[:len(e.display)-size]
	if e.display == "" {
		e.display = DisplayZero
	}
}

func (e *Engine) MemoryAdd() {
	e.accumulate(1)
}

func (e *Engine) MemorySubtract() {
	e.accumulate(-1)
}

func (e *Engine) MemoryClear() {
	e.memory = 0
	e.memoryStored = false
}

// MemoryRecall appends the memory value as a new operand while an operator is
// pending and replaces the buffer otherwise.
func (e *Engine) MemoryRecall() {
	value, err := e.formatter.Format(e.memory)
	if err != nil {
		e.fail()
		return
	}

	if e.lastOperator != "" && e.display != DisplayError && e.display != DisplayZero {
		if !strings.HasSuffix(e.display, delimiter) {
			e.display += delimiter
		}
		e.display += value
	} else {
		e.display = value
	}
	e.justCalculated = false
}

func (e *Engine) Display() string {
	return e.display
}

func (e *Engine) Memory() float64 {
	return e.memory
}

func (e *Engine) IsMemoryStored() bool {
	return e.memoryStored
}

func (e *Engine) LastOperator() string {
	return e.lastOperator
}

func (e *Engine) JustCalculated() bool {
	return e.justCalculated
}

// History returns a copy of the completed computations, oldest first.
func (e *Engine) History() []domain.HistoryEntry {
	history := make([]domain.HistoryEntry, len(e.history))
	copy(history, e.history)
	return history
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Display:         e.display,
		Memory:          e.memory,
		MemoryStored:    e.memoryStored,
		PendingOperator: e.lastOperator,
		JustCalculated:  e.justCalculated,
		History:         e.History(),
	}
}

func (e *Engine) accumulate(sign float64) {
	value, err := expr.ParseOperand(e.display)
	if err != nil {
		e.fail()
		return
	}

	e.memory += sign * value
	e.memoryStored = true
}

func (e *Engine) transformLastSegment(fn func(float64) float64) {
	e.justCalculated = false

	segments := strings.Fields(e.display)
	if len(segments) == 0 {
		e.fail()
		return
	}

	last := len(segments) - 1
	value, err := expr.ParseOperand(segments[last])
	if err != nil {
		e.fail()
		return
	}

	segments[last] = expr.FormatOperand(fn(value))
	e.display = strings.Join(segments, delimiter)
}

func (e *Engine) fail() {
	e.display = DisplayError
	e.lastOperator = ""
}

func currentSegment(display string) string {
	if i := strings.LastIndex(display, delimiter); i >= 0 {
		return display[i+len(delimiter):]
	}
	return display
}

func endsWithOperator(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && strings.ContainsRune(operatorSymbols, r)
}

func isDigitInput(d string) bool {
	if len(d) != 1 {
		return false
	}
	return d == "." || (d[0] >= '0' && d[0] <= '9')
}

func isOperatorInput(op string) bool {
	return op != "" && utf8.RuneCountInString(op) == 1 && strings.Contains(operatorSymbols, op)
}
