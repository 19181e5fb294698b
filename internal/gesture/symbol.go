// Package gesture classifies hand landmarks into calculator symbols
// and gates them through a hold-to-confirm state machine.
package gesture

// Symbol is one element of the calculator input alphabet.
type Symbol string

// The closed symbol set. None means no recognizable gesture.
const (
	None     Symbol = ""
	Zero     Symbol = "0"
	One      Symbol = "1"
	Two      Symbol = "2"
	Three    Symbol = "3"
	Four     Symbol = "4"
	Five     Symbol = "5"
	Add      Symbol = "+"
	Subtract Symbol = "-"
	Multiply Symbol = "*"
	Divide   Symbol = "/"
	Equals   Symbol = "="
	Clear    Symbol = "C"
)

// IsDigit reports whether s is a single digit 0-9.
func (s Symbol) IsDigit() bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

// IsOperator reports whether s is one of the four arithmetic operators.
func (s Symbol) IsOperator() bool {
	switch s {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// String returns the symbol as display text.
func (s Symbol) String() string {
	return string(s)
}
