package application

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bnema/pocketcalc/internal/domain"
)

type ActionKind string

const (
	ActionDigit          ActionKind = "digit"
	ActionOperator       ActionKind = "operator"
	ActionEquals         ActionKind = "equals"
	ActionClear          ActionKind = "clear"
	ActionPercent        ActionKind = "percent"
	ActionToggleSign     ActionKind = "toggle_sign"
	ActionBackspace      ActionKind = "backspace"
	ActionMemoryAdd      ActionKind = "memory_add"
	ActionMemorySubtract ActionKind = "memory_subtract"
	ActionMemoryClear    ActionKind = "memory_clear"
	ActionMemoryRecall   ActionKind = "memory_recall"
)

// Action is one keypad press. Symbol carries the digit or operator for
// ActionDigit and ActionOperator and is empty otherwise.
type Action struct {
	Kind   ActionKind
	Symbol string
}

var namedActions = map[string]ActionKind{
	"=":         ActionEquals,
	"ac":        ActionClear,
	"c":         ActionClear,
	"clear":     ActionClear,
	"%":         ActionPercent,
	"+/-":       ActionToggleSign,
	"±":         ActionToggleSign,
	"neg":       ActionToggleSign,
	"⌫":         ActionBackspace,
	"bs":        ActionBackspace,
	"backspace": ActionBackspace,
	"m+":        ActionMemoryAdd,
	"m-":        ActionMemorySubtract,
	"mc":        ActionMemoryClear,
	"mr":        ActionMemoryRecall,
}

// ParseAction maps a keypad label such as "7", "÷", "=", "M+" or "+/-" to an
// Action. Word labels are case-insensitive.
func ParseAction(label string) (Action, error) {
	trimmed := strings.TrimSpace(label)

	if isDigitInput(trimmed) {
		return Action{Kind: ActionDigit, Symbol: trimmed}, nil
	}
	if isOperatorInput(trimmed) {
		return Action{Kind: ActionOperator, Symbol: trimmed}, nil
	}
	if kind, ok := namedActions[strings.ToLower(trimmed)]; ok {
		return Action{Kind: kind}, nil
	}

	return Action{}, fmt.Errorf("parse action %q: %w", label, domain.ErrUnknownAction)
}

func (a Action) Validate() error {
	switch a.Kind {
	case ActionDigit:
		if !isDigitInput(a.Symbol) {
			return fmt.Errorf("digit %q: %w", a.Symbol, domain.ErrUnknownAction)
		}
	case ActionOperator:
		if !isOperatorInput(a.Symbol) {
			return fmt.Errorf("operator %q: %w", a.Symbol, domain.ErrUnknownAction)
		}
	case ActionEquals, ActionClear, ActionPercent, ActionToggleSign, ActionBackspace,
		ActionMemoryAdd, ActionMemorySubtract, ActionMemoryClear, ActionMemoryRecall:
	default:
		return fmt.Errorf("action kind %q: %w", a.Kind, domain.ErrUnknownAction)
	}

	return nil
}

func (a Action) Label() string {
	switch a.Kind {
	case ActionDigit, ActionOperator:
		return a.Symbol
	case ActionEquals:
		return "="
	case ActionClear:
		return "AC"
	case ActionPercent:
		return "%"
	case ActionToggleSign:
		return "+/-"
	case ActionBackspace:
		return "⌫"
	case ActionMemoryAdd:
		return "M+"
	case ActionMemorySubtract:
		return "M-"
	case ActionMemoryClear:
		return "MC"
	case ActionMemoryRecall:
		return "MR"
	default:
		return string(a.Kind)
	}
}

// Apply dispatches a to the matching engine operation.
func (e *Engine) Apply(a Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	switch a.Kind {
	case ActionDigit:
		e.AppendDigit(a.Symbol)
	case ActionOperator:
		e.AppendOperator(a.Symbol)
	case ActionEquals:
		e.Calculate()
	case ActionClear:
		e.Clear()
	case ActionPercent:
		e.Percentage()
	case ActionToggleSign:
		e.ToggleSign()
	case ActionBackspace:
		e.Backspace()
	case ActionMemoryAdd:
		e.MemoryAdd()
	case ActionMemorySubtract:
		e.MemorySubtract()
	case ActionMemoryClear:
		e.MemoryClear()
	case ActionMemoryRecall:
		e.MemoryRecall()
	}

	e.logger.Debug("action applied", "action", a.Label(), "display", e.display)
	return nil
}

// Type feeds expression into the engine one character at a time, the way a
// user would press the keys. A '-' typed while an operand is expected is
// applied as a sign toggle once the operand is complete. Type does not press
// "=" on its own.
func (e *Engine) Type(expression string) error {
	negate := false
	flush := func() {
		if negate {
			e.ToggleSign()
			negate = false
		}
	}

	for _, r := range expression {
		switch {
		case unicode.IsSpace(r) || r == ',':
			continue
		case r == '.' || (r >= '0' && r <= '9'):
			e.AppendDigit(string(r))
		case r == '-' && e.awaitingOperand():
			negate = !negate
		case strings.ContainsRune(operatorSymbols, r):
			flush()
			e.AppendOperator(string(r))
		case r == '=':
			flush()
			e.Calculate()
		case r == '%':
			flush()
			e.Percentage()
		default:
			return fmt.Errorf("type %q: %w", r, domain.ErrUnknownAction)
		}
	}
	flush()

	e.logger.Debug("expression typed", "expression", expression, "display", e.display)
	return nil
}

func (e *Engine) awaitingOperand() bool {
	return strings.HasSuffix(e.display, delimiter)
}
