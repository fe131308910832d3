// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package rpn evaluates reverse-Polish token streams over dimensioned values.
package rpn

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mikecarlton/calc/pkg/dimension"
	"github.com/mikecarlton/calc/pkg/num"
	"github.com/mikecarlton/calc/pkg/units"
)

// Resolver finds a unit by name.
type Resolver func(name string) (units.Unit, bool)

type Aliases map[string]string

var STACKALIAS = Aliases{
	"dup": "d",
	"pop": "p",
	".":   "*",
	"•":   "*",
}

// Calculator evaluates RPN tokens over dimensioned values.
type Calculator struct {
	stack   *Stack
	resolve Resolver
	exact   bool
	logger  *log.Logger
}

type Option func(*Calculator)

// WithExact parses numbers as exact rationals.
func WithExact(exact bool) Option {
	return func(c *Calculator) { c.exact = exact }
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Calculator) { c.logger = logger }
}

func New(resolve Resolver, opts ...Option) *Calculator {
	c := &Calculator{
		stack:   newStack(),
		resolve: resolve,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Stack() *Stack {
	return c.stack
}

// Eval applies each token in order, stopping at the first error.
func (c *Calculator) Eval(tokens ...string) error {
	for _, token := range tokens {
		if err := c.apply(token); err != nil {
			return fmt.Errorf("'%s': %w", token, err)
		}
		c.logger.Debug("applied", "token", token, "stack", c.stack.Oneline(6))
	}
	return nil
}

func (c *Calculator) apply(token string) error {
	if alias, ok := STACKALIAS[token]; ok {
		token = alias
	}

	if op, ok := strings.CutPrefix(token, "@"); ok && op != "" {
		return c.reduce(op)
	}

	switch token {
	case "+", "-", "*", "/":
		left, right, err := c.stack.pop2(token)
		if err != nil {
			return err
		}
		result, err := binaryOp(token, left, right)
		if err != nil {
			c.stack.push(left)
			c.stack.push(right)
			return err
		}
		c.stack.push(result)
		return nil
	case "sq", "cu", "chs", "r", "n", "si":
		v, err := c.stack.pop()
		if err != nil {
			return err
		}
		result, err := unaryOp(token, v)
		if err != nil {
			c.stack.push(v)
			return err
		}
		c.stack.push(result)
		return nil
	case "x":
		return c.stack.exchange()
	case "d":
		return c.stack.dup()
	case "p":
		_, err := c.stack.pop()
		return err
	}

	if n, err := num.Parse(token, c.exact); err == nil {
		c.stack.push(Value{Quantity: units.NewQuantity(dimension.Scalar, n)})
		return nil
	}

	if u, ok := c.resolve(token); ok {
		return c.applyUnit(u)
	}

	return fmt.Errorf("unrecognized argument")
}

// applyUnit gives a bare number the unit, or converts a dimensioned value to
// display in it.
func (c *Calculator) applyUnit(u units.Unit) error {
	v, err := c.stack.pop()
	if err != nil {
		return fmt.Errorf("not enough arguments for '%s'", u.Symbol())
	}

	if v.bare() {
		c.stack.push(Value{Quantity: u.QuantityOf(v.Quantity.Value()), Unit: &u})
		return nil
	}

	if !v.Quantity.Dimensions().Equal(u.Dimensions()) {
		c.stack.push(v)
		return &units.MismatchError{Op: "convert", Left: v.Quantity.Dimensions(), Right: u.Dimensions()}
	}
	c.stack.push(Value{Quantity: v.Quantity, Unit: &u})
	return nil
}

func (c *Calculator) reduce(op string) error {
	if len(c.stack.values) < 2 {
		return fmt.Errorf("not enough arguments for reduction operation '@%s'", op)
	}

	result := c.stack.values[0]
	for i := 1; i < len(c.stack.values); i++ {
		var err error
		result, err = binaryOp(op, result, c.stack.values[i])
		if err != nil {
			return err
		}
	}

	c.stack.values = []Value{result}
	return nil
}

func binaryOp(op string, left, right Value) (Value, error) {
	var (
		q   units.Quantity
		err error
	)
	switch op {
	case "+":
		q, err = left.Quantity.Plus(right.Quantity)
	case "-":
		q, err = left.Quantity.Minus(right.Quantity)
	case "*":
		q = left.Quantity.Times(right.Quantity)
	case "/":
		q, err = left.Quantity.Per(right.Quantity)
	default:
		return Value{}, fmt.Errorf("unknown binary operation '%s'", op)
	}
	if err != nil {
		return Value{}, err
	}

	// sums keep the left display unit; products are shown in SI
	if op == "+" || op == "-" {
		return Value{Quantity: q, Unit: left.Unit}, nil
	}
	return Value{Quantity: q}, nil
}

func unaryOp(op string, v Value) (Value, error) {
	switch op {
	case "sq":
		return Value{Quantity: v.Quantity.Squared()}, nil
	case "cu":
		return Value{Quantity: v.Quantity.Cubed()}, nil
	case "chs":
		if v.Unit != nil && !v.Unit.Offset().IsZero() {
			// negate the displayed reading, not the absolute value
			n, err := v.Quantity.InExact(*v.Unit)
			if err != nil {
				return Value{}, err
			}
			return Value{Quantity: v.Unit.QuantityOf(n.Neg()), Unit: v.Unit}, nil
		}
		return Value{Quantity: v.Quantity.Neg(), Unit: v.Unit}, nil
	case "r":
		one := units.NewQuantity(dimension.Scalar, num.One)
		q, err := one.Per(v.Quantity)
		if err != nil {
			return Value{}, err
		}
		return Value{Quantity: q}, nil
	case "n":
		n := v.Quantity.Value()
		if v.Unit != nil {
			var err error
			if n, err = v.Quantity.InExact(*v.Unit); err != nil {
				return Value{}, err
			}
		}
		return Value{Quantity: units.NewQuantity(dimension.Scalar, n)}, nil
	case "si":
		return Value{Quantity: v.Quantity}, nil
	}
	return Value{}, fmt.Errorf("unknown unary operation '%s'", op)
}
