package option

import (
	"fmt"
	"strings"
)

// Shape tells how a configuration value has been specified.
type Shape int

const (
	None Shape = iota // value not given: derive from context
	One               // a single scalar
	Many              // a list of scalars
)

func (s Shape) String() string {
	switch s {
	case None:
		return "None"
	case One:
		return "One"
	case Many:
		return "Many"
	}
	return "Shape(?)"
}

// Values is an option type for a configuration field which may be
// under-specified, singly-specified or multiply-specified.
//
// The zero value is unspecified.
type Values[T comparable] struct {
	shape Shape
	vals  []T
}

// Unspecified creates an option without a value.
func Unspecified[T comparable]() Values[T] {
	return Values[T]{}
}

// Some creates an option with the single value x.
func Some[T comparable](x T) Values[T] {
	return Values[T]{shape: One, vals: []T{x}}
}

// List creates an option with a list of values. Duplicates are dropped,
// keeping the first occurrence. An empty list is an explicit choice of no
// values and is not the same as an unspecified option.
func List[T comparable](xs ...T) Values[T] {
	seen := make(map[T]struct{}, len(xs))
	vals := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		vals = append(vals, x)
	}
	return Values[T]{shape: Many, vals: vals}
}

// Shape returns how o has been specified.
func (o Values[T]) Shape() Shape {
	return o.shape
}

// IsNone returns true if o is unset.
func (o Values[T]) IsNone() bool {
	return o.shape == None
}

// Unwrap returns the explicit values of o, or nil if o is unset.
// The returned slice is a copy.
func (o Values[T]) Unwrap() []T {
	if o.IsNone() {
		return nil
	}
	return append([]T(nil), o.vals...)
}

// OrElse normalizes o into a list of values: the explicit values if o is set,
// fallback otherwise.
func (o Values[T]) OrElse(fallback []T) []T {
	if o.IsNone() {
		tracer().Debugf("option unset, using %d derived values", len(fallback))
		return fallback
	}
	return o.Unwrap()
}

func (o Values[T]) String() string {
	switch o.shape {
	case None:
		return "None"
	case One:
		return fmt.Sprintf("%v", o.vals[0])
	}
	s := make([]string, len(o.vals))
	for i, v := range o.vals {
		s[i] = fmt.Sprintf("%v", v)
	}
	return "[" + strings.Join(s, ",") + "]"
}
