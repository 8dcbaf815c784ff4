package eval

import "strconv"

// ValueKind discriminates Value.
type ValueKind uint8

const (
	ValueUnit ValueKind = iota
	ValueInt
	ValueStr
)

// Value is the result of evaluating an expression.
type Value struct {
	Kind ValueKind
	Int  int32  // valid when Kind == ValueInt
	Str  string // valid when Kind == ValueStr
}

// UnitValue returns the unit value.
func UnitValue() Value {
	return Value{Kind: ValueUnit}
}

// IntValue wraps an integer.
func IntValue(v int32) Value {
	return Value{Kind: ValueInt, Int: v}
}

// StrValue wraps a string.
func StrValue(v string) Value {
	return Value{Kind: ValueStr, Str: v}
}

// String returns the value the way the REPL prints it.
func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(int64(v.Int), 10)
	case ValueStr:
		return strconv.Quote(v.Str)
	}

	return "unit"
}
