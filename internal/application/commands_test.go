package application

import (
	"testing"

	"github.com/bnema/pocketcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  Action
	}{
		{label: "7", want: Action{Kind: ActionDigit, Symbol: "7"}},
		{label: ".", want: Action{Kind: ActionDigit, Symbol: "."}},
		{label: "÷", want: Action{Kind: ActionOperator, Symbol: "÷"}},
		{label: " * ", want: Action{Kind: ActionOperator, Symbol: "*"}},
		{label: "=", want: Action{Kind: ActionEquals}},
		{label: "AC", want: Action{Kind: ActionClear}},
		{label: "+/-", want: Action{Kind: ActionToggleSign}},
		{label: "%", want: Action{Kind: ActionPercent}},
		{label: "⌫", want: Action{Kind: ActionBackspace}},
		{label: "m+", want: Action{Kind: ActionMemoryAdd}},
		{label: "M-", want: Action{Kind: ActionMemorySubtract}},
		{label: "MC", want: Action{Kind: ActionMemoryClear}},
		{label: "MR", want: Action{Kind: ActionMemoryRecall}},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()
			got, err := ParseAction(tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseActionRejectsUnknownLabels(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"", "x", "12", "sqrt", "^"} {
		_, err := ParseAction(label)
		assert.ErrorIs(t, err, domain.ErrUnknownAction, label)
	}
}

func TestActionLabelRoundTrips(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"7", "+", "=", "AC", "%", "+/-", "⌫", "M+", "M-", "MC", "MR"} {
		action, err := ParseAction(label)
		require.NoError(t, err)
		assert.Equal(t, label, action.Label())
	}
}

func TestApplyRejectsInvalidActions(t *testing.T) {
	t.Parallel()

	e := newTestEngine()

	assert.ErrorIs(t, e.Apply(Action{Kind: ActionDigit, Symbol: "x"}), domain.ErrUnknownAction)
	assert.ErrorIs(t, e.Apply(Action{Kind: ActionOperator, Symbol: "^"}), domain.ErrUnknownAction)
	assert.ErrorIs(t, e.Apply(Action{Kind: "sqrt"}), domain.ErrUnknownAction)
	assert.Equal(t, "0", e.Display())
}

func TestType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{name: "simple", expression: "7+3", want: "10"},
		{name: "division sign", expression: "9 ÷ 3", want: "3"},
		{name: "negative operand", expression: "2*-3", want: "-6"},
		{name: "leading minus", expression: "-5+3", want: "-2"},
		{name: "percent", expression: "50+20%", want: "50.2"},
		{name: "grouped input", expression: "1,000+1", want: "1,001"},
		{name: "explicit equals", expression: "4*4=", want: "16"},
		{name: "division by zero", expression: "6/0", want: DisplayError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEngine()
			require.NoError(t, e.Type(tc.expression))
			if !e.JustCalculated() {
				e.Calculate()
			}
			assert.Equal(t, tc.want, e.Display())
		})
	}
}

func TestTypeRejectsUnknownCharacters(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	err := e.Type("2^3")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
}

func TestSnapshotHistoryLines(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	require.NoError(t, e.Type("7+3="))

	snapshot := e.Snapshot()
	assert.Equal(t, []string{"7 + 3 = 10"}, snapshot.HistoryLines())
	assert.Equal(t, "10", snapshot.Display)
	assert.True(t, snapshot.JustCalculated)
}
