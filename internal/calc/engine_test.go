package calc

import (
	"reflect"
	"testing"

	"github.com/ayusman/ganita/internal/gesture"
)

// feed pushes a sequence of symbols through the engine.
func feed(e *Engine, symbols ...gesture.Symbol) {
	for _, s := range symbols {
		e.Process(s)
	}
}

func TestEngine_SingleDigitEntry(t *testing.T) {
	e := NewEngine()

	if changed := e.Process(gesture.Three); !changed {
		t.Fatal("first digit should change state")
	}
	if e.DisplayText() != "3" {
		t.Errorf("display = %q, want \"3\"", e.DisplayText())
	}

	// Further digits before an operator are silently dropped.
	for _, s := range []gesture.Symbol{gesture.Five, gesture.Zero, "9"} {
		if changed := e.Process(s); changed {
			t.Errorf("digit %q accepted while one is pending", s)
		}
	}
	if e.DisplayText() != "3" {
		t.Errorf("display = %q after dropped digits, want \"3\"", e.DisplayText())
	}
}

func TestEngine_ClearResetsEverythingButHistory(t *testing.T) {
	e := NewEngine()
	feed(e, gesture.Three, gesture.Add, gesture.Four, gesture.Equals)

	if len(e.History(0)) != 1 {
		t.Fatalf("history = %v, want one entry", e.History(0))
	}

	e.Process(gesture.Clear)
	if e.DisplayText() != "0" {
		t.Errorf("display after clear = %q, want \"0\"", e.DisplayText())
	}
	if len(e.History(0)) != 1 {
		t.Error("clear must not alter history")
	}

	// Clear from every other reachable shape also lands on "0".
	shapes := [][]gesture.Symbol{
		{gesture.Four},
		{gesture.Five, gesture.Divide},
		{gesture.Five, gesture.Divide, gesture.Zero, gesture.Equals},
	}
	for _, shape := range shapes {
		e := NewEngine()
		feed(e, shape...)
		e.Process(gesture.Clear)
		if e.DisplayText() != "0" {
			t.Errorf("after %v + clear: display = %q, want \"0\"", shape, e.DisplayText())
		}
	}
}

func TestEngine_AdditionAndHistoryFormat(t *testing.T) {
	e := NewEngine()
	feed(e, gesture.Three, gesture.Add, gesture.Four, gesture.Equals)

	if e.DisplayText() != "7" {
		t.Errorf("display = %q, want \"7\"", e.DisplayText())
	}

	history := e.History(0)
	want := []string{"3.0 + 4.0 = 7.0"}
	if !reflect.DeepEqual(history, want) {
		t.Errorf("history = %v, want %v", history, want)
	}
}

func TestEngine_DivisionByZero(t *testing.T) {
	e := NewEngine()
	feed(e, gesture.Five, gesture.Divide, gesture.Zero, gesture.Equals)

	if e.DisplayText() != "Error: Division by zero" {
		t.Errorf("display = %q, want division-by-zero error", e.DisplayText())
	}
	if e.ErrorKind() != ErrDivisionByZero {
		t.Errorf("error kind = %q, want %q", e.ErrorKind(), ErrDivisionByZero)
	}
	if len(e.History(0)) != 0 {
		t.Errorf("history = %v, want none after fault", e.History(0))
	}

	// Working state was fully reset: the next digit starts fresh and
	// clears the error message.
	e.Process(gesture.Two)
	if e.DisplayText() != "2" {
		t.Errorf("display = %q after fault recovery, want \"2\"", e.DisplayText())
	}
}

func TestEngine_ChainedOperations(t *testing.T) {
	e := NewEngine()
	feed(e, gesture.Three, gesture.Add, gesture.Four, gesture.Add)

	// The second '+' evaluated 3+4 implicitly and carried the
	// intermediate result into the first operand.
	if e.DisplayText() != "7 +" {
		t.Errorf("display mid-chain = %q, want \"7 +\"", e.DisplayText())
	}

	feed(e, gesture.Two, gesture.Equals)
	if e.DisplayText() != "9" {
		t.Errorf("display = %q, want \"9\"", e.DisplayText())
	}

	history := e.History(0)
	want := []string{"7.0 + 2.0 = 9.0", "3.0 + 4.0 = 7.0"}
	if !reflect.DeepEqual(history, want) {
		t.Errorf("history = %v, want %v", history, want)
	}
}

func TestEngine_ChainedDivisionByZeroStopsChain(t *testing.T) {
	e := NewEngine()
	feed(e, gesture.Five, gesture.Divide, gesture.Zero, gesture.Add)

	// The implicit '=' faulted, so the new operator is dropped along
	// with the rest of the working state.
	if e.DisplayText() != "Error: Division by zero" {
		t.Errorf("display = %q, want division-by-zero error", e.DisplayText())
	}

	e.Process(gesture.Two)
	if e.DisplayText() != "2" {
		t.Errorf("display = %q after fault recovery, want \"2\"", e.DisplayText())
	}
}

func TestEngine_ContinueFromResult(t *testing.T) {
	e := NewEngine()
	feed(e, gesture.Three, gesture.Multiply, gesture.Three, gesture.Equals)
	if e.DisplayText() != "9" {
		t.Fatalf("display = %q, want \"9\"", e.DisplayText())
	}

	// An operator after equals carries the result into operand1.
	e.Process(gesture.Subtract)
	if e.DisplayText() != "9 -" {
		t.Errorf("display = %q, want \"9 -\"", e.DisplayText())
	}

	feed(e, gesture.Four, gesture.Equals)
	if e.DisplayText() != "5" {
		t.Errorf("display = %q, want \"5\"", e.DisplayText())
	}
}

func TestEngine_FractionalDisplay(t *testing.T) {
	e := NewEngine()
	feed(e, gesture.Three, gesture.Divide, gesture.Four, gesture.Equals)

	if e.DisplayText() != "0.75" {
		t.Errorf("display = %q, want \"0.75\"", e.DisplayText())
	}

	// Repeating decimals truncate at four places, trailing zeros gone.
	e = NewEngine()
	feed(e, gesture.One, gesture.Divide, gesture.Three, gesture.Equals)
	if e.DisplayText() != "0.3333" {
		t.Errorf("display = %q, want \"0.3333\"", e.DisplayText())
	}
}

func TestEngine_EqualsRequiresBothOperands(t *testing.T) {
	cases := []struct {
		name    string
		symbols []gesture.Symbol
		display string
	}{
		{"equals on empty state", []gesture.Symbol{gesture.Equals}, "0"},
		{"equals with only a digit", []gesture.Symbol{gesture.Five, gesture.Equals}, "5"},
		{"equals without second operand", []gesture.Symbol{gesture.Five, gesture.Add, gesture.Equals}, "5 +"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEngine()
			feed(e, tc.symbols...)
			if e.DisplayText() != tc.display {
				t.Errorf("display = %q, want %q", e.DisplayText(), tc.display)
			}
			if len(e.History(0)) != 0 {
				t.Errorf("history = %v, want none for a no-op equals", e.History(0))
			}
		})
	}
}

func TestEngine_OperatorWithoutOperandIsNoop(t *testing.T) {
	e := NewEngine()
	e.Process(gesture.Add)
	if e.DisplayText() != "0" {
		t.Errorf("display = %q, want \"0\"", e.DisplayText())
	}
}

func TestEngine_HistoryRetrieval(t *testing.T) {
	e := NewEngine()
	// Build five entries: 1+1, 2+2, 3+3, 4+4, 5+5.
	for _, d := range []gesture.Symbol{gesture.One, gesture.Two, gesture.Three, gesture.Four, gesture.Five} {
		feed(e, d, gesture.Add, d, gesture.Equals, gesture.Clear)
	}

	got := e.History(3)
	want := []string{
		"5.0 + 5.0 = 10.0",
		"4.0 + 4.0 = 8.0",
		"3.0 + 3.0 = 6.0",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("History(3) = %v, want %v", got, want)
	}

	if n := len(e.History(0)); n != 5 {
		t.Errorf("History(0) returned %d entries, want default limit 5", n)
	}
	if n := len(e.History(10)); n != 5 {
		t.Errorf("History(10) returned %d entries, want all 5", n)
	}
}
