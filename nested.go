package accounting

import (
	"fmt"
	"strings"
)

// Nested type represents either a single value or a list of nested values,
// such as a table of amounts.
// The zero value is a scalar holding the zero value of T.
//
// Functions that accept nested values return results of the same shape:
// every list has the same length as the corresponding input list.
type Nested[T any] struct {
	value T
	items []Nested[T]
	list  bool
}

// Scalar returns a nested value holding a single value.
func Scalar[T any](v T) Nested[T] {
	return Nested[T]{value: v}
}

// List returns a nested value holding a list of nested values.
// List with no arguments returns an empty list.
func List[T any](items ...Nested[T]) Nested[T] {
	if items == nil {
		items = []Nested[T]{}
	}
	return Nested[T]{items: items, list: true}
}

// Values returns a flat list of scalars.
func Values[T any](vs ...T) Nested[T] {
	items := make([]Nested[T], len(vs))
	for i, v := range vs {
		items[i] = Scalar(v)
	}
	return List(items...)
}

// IsList returns true if n is a list and false if it is a scalar.
func (n Nested[T]) IsList() bool {
	return n.list
}

// Value returns the scalar value.
// For lists, it returns the zero value of T.
func (n Nested[T]) Value() T {
	return n.value
}

// Items returns the elements of the list.
// For scalars, it returns nil.
func (n Nested[T]) Items() []Nested[T] {
	return n.items
}

// Len returns the number of elements of the list, or 1 for scalars.
func (n Nested[T]) Len() int {
	if !n.list {
		return 1
	}
	return len(n.items)
}

// Flatten returns all scalar values in depth-first order.
func (n Nested[T]) Flatten() []T {
	var vs []T
	n.walk(func(v T) { vs = append(vs, v) })
	return vs
}

func (n Nested[T]) walk(f func(T)) {
	if !n.list {
		f(n.value)
		return
	}
	for _, item := range n.items {
		item.walk(f)
	}
}

// String method implements the [fmt.Stringer] interface.
// Lists are enclosed in square brackets, and strings are quoted:
//
//	["$1.00" ["$2.00" "$3.00"]]
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Nested[T]) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n Nested[T]) format(b *strings.Builder) {
	if !n.list {
		fmt.Fprintf(b, "%#v", n.value)
		return
	}
	b.WriteByte('[')
	for i, item := range n.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		item.format(b)
	}
	b.WriteByte(']')
}

// Map applies f to every scalar of n and returns the results in a nested
// value of the same shape.
func Map[T, U any](n Nested[T], f func(T) U) Nested[U] {
	if !n.list {
		return Scalar(f(n.value))
	}
	items := make([]Nested[U], len(n.items))
	for i, item := range n.items {
		items[i] = Map(item, f)
	}
	return List(items...)
}
