// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package rpn

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikecarlton/calc/pkg/units"
)

var errEmpty = errors.New("stack is empty")

// Value is a stack entry: a quantity and the unit it is displayed in. A value
// with no display unit and no dimensions is a bare number.
type Value struct {
	Quantity units.Quantity
	Unit     *units.Unit
}

func (v Value) bare() bool {
	return v.Unit == nil && v.Quantity.Dimensions().IsZero()
}

// Format returns the number in the display unit (SI when there is none) and
// the unit symbol.
func (v Value) Format(precision int) (string, string) {
	if v.Unit != nil {
		if n, err := v.Quantity.InExact(*v.Unit); err == nil {
			return formatNumber(n.IsInt(), n.String(), n.Float64(), precision), v.Unit.Symbol()
		}
	}
	n := v.Quantity.Value()
	return formatNumber(n.IsInt(), n.String(), n.Float64(), precision), v.Quantity.Dimensions().Symbol()
}

func (v Value) String() string {
	number, unit := v.Format(4)
	if unit == "" {
		return number
	}
	return number + " " + unit
}

func formatNumber(isInt bool, exact string, f float64, precision int) string {
	if isInt {
		return exact
	}
	s := strconv.FormatFloat(f, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

type Stack struct {
	values []Value
}

func newStack() *Stack {
	return &Stack{values: []Value{}}
}

func (s *Stack) push(v Value) {
	s.values = append(s.values, v)
}

func (s *Stack) pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, errEmpty
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]

	return v, nil
}

func (s *Stack) pop2(op string) (Value, Value, error) {
	if len(s.values) < 2 {
		return Value{}, Value{}, fmt.Errorf("not enough arguments for '%s'", op)
	}
	right, _ := s.pop()
	left, _ := s.pop()
	return left, right, nil
}

func (s *Stack) Peek() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, errEmpty
	}

	return s.values[len(s.values)-1], nil
}

// dup needs no copy: values are immutable.
func (s *Stack) dup() error {
	if len(s.values) < 1 {
		return fmt.Errorf("stack is empty for '%s'", "dup")
	}
	s.values = append(s.values, s.values[len(s.values)-1])
	return nil
}

func (s *Stack) exchange() error {
	if len(s.values) < 2 {
		return fmt.Errorf("not enough arguments for '%s'", "exchange")
	}

	s.values[len(s.values)-1], s.values[len(s.values)-2] = s.values[len(s.values)-2], s.values[len(s.values)-1]
	return nil
}

func (s *Stack) Size() int {
	return len(s.values)
}

// Values returns the stack bottom first.
func (s *Stack) Values() []Value {
	values := make([]Value, len(s.values))
	copy(values, s.values)
	return values
}

func (s *Stack) Oneline(precision int) string {
	var sb strings.Builder
	for i, v := range s.values {
		if i > 0 {
			sb.WriteString(" ")
		}
		number, unit := v.Format(precision)
		sb.WriteString(number)
		if unit != "" {
			sb.WriteString(" " + unit)
		}
	}
	return sb.String()
}

// splitNumber splits "100.5" into "100" and ".5".
func splitNumber(str string) (string, string) {
	if i := strings.IndexAny(str, "./"); i >= 0 {
		return str[:i], str[i:]
	}
	return str, ""
}

// Print writes the stack top first, aligned on the units digit.
func (s *Stack) Print(w io.Writer, precision int) {
	type row struct{ intPart, fracPart, unit string }

	rows := make([]row, 0, len(s.values))
	intWidth, fracWidth := 0, 0
	for i := len(s.values) - 1; i >= 0; i-- {
		number, unit := s.values[i].Format(precision)
		intPart, fracPart := splitNumber(number)
		intWidth = max(intWidth, len(intPart))
		fracWidth = max(fracWidth, len(fracPart))
		rows = append(rows, row{intPart, fracPart, unit})
	}

	for _, r := range rows {
		line := fmt.Sprintf("%*s%-*s", intWidth, r.intPart, fracWidth, r.fracPart)
		if r.unit != "" {
			line += " " + r.unit
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}
