package eval

import (
	"fmt"
	"strconv"
)

// Value is a tagged number. Literals start life as int64 and stay integral
// through addition, subtraction and multiplication; division, or mixing with
// a float operand, promotes the result to float64. Integer arithmetic uses
// the host's fixed-width int64 semantics, overflow wraps.
type Value struct {
	isFloat bool
	i       int64
	f       float64
}

func IntValue(i int64) Value {
	return Value{i: i}
}

func FloatValue(f float64) Value {
	return Value{isFloat: true, f: f}
}

func (v Value) IsFloat() bool {
	return v.isFloat
}

func (v Value) Int() int64 {
	return v.i
}

func (v Value) Float() float64 {
	if v.isFloat {
		return v.f
	}
	return float64(v.i)
}

func (v Value) String() string {
	if v.isFloat {
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return strconv.FormatInt(v.i, 10)
}

func add(left, right Value) Value {
	if left.isFloat || right.isFloat {
		return FloatValue(left.Float() + right.Float())
	}
	return IntValue(left.i + right.i)
}

func sub(left, right Value) Value {
	if left.isFloat || right.isFloat {
		return FloatValue(left.Float() - right.Float())
	}
	return IntValue(left.i - right.i)
}

func mul(left, right Value) Value {
	if left.isFloat || right.isFloat {
		return FloatValue(left.Float() * right.Float())
	}
	return IntValue(left.i * right.i)
}

// div always computes in float64, so 5 / 2 is 2.5 rather than a truncated
// integer quotient.
func div(left, right Value) (Value, error) {
	if right.Float() == 0 {
		return Value{}, fmt.Errorf("division by zero")
	}
	return FloatValue(left.Float() / right.Float()), nil
}
