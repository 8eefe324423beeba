package pattern

import (
	"fmt"
	"strings"
)

// Pattern is a persistent n-ary tree: a payload value plus an ordered
// sequence of child patterns. The zero value is an atomic pattern holding
// V's zero value.
type Pattern[V any] struct {
	value    V
	elements []Pattern[V]
}

// Point creates an atomic pattern holding the given value.
func Point[V any](value V) Pattern[V] {
	return Pattern[V]{value: value}
}

// Of is an alias for Point, following the convention of lifting a value
// into a functor.
func Of[V any](value V) Pattern[V] {
	return Point(value)
}

// New creates a pattern with the given value and child patterns. The element
// slice is copied, so later mutation of the caller's slice cannot reach the
// new pattern. An empty or nil slice yields an atomic pattern.
func New[V any](value V, elements []Pattern[V]) Pattern[V] {
	p := Pattern[V]{value: value}
	if len(elements) > 0 {
		p.elements = make([]Pattern[V], len(elements))
		copy(p.elements, elements)
	}
	return p
}

// FromValues lifts each value into an atomic pattern, preserving order.
// A value that is already a Pattern[V] passes through unchanged instead of
// being wrapped again; this can only occur with dynamic payload types such
// as V = any.
func FromValues[V any](vals []V) []Pattern[V] {
	out := make([]Pattern[V], len(vals))
	for i, v := range vals {
		if p, ok := any(v).(Pattern[V]); ok {
			out[i] = p
			continue
		}
		out[i] = Point(v)
	}
	return out
}

// Value returns the payload at this node.
func (p Pattern[V]) Value() V { return p.value }

// Extract returns the payload at this node (the comonadic observe).
func (p Pattern[V]) Extract() V { return p.value }

// Elements returns a copy of the direct children in order.
func (p Pattern[V]) Elements() []Pattern[V] {
	if len(p.elements) == 0 {
		return nil
	}
	out := make([]Pattern[V], len(p.elements))
	copy(out, p.elements)
	return out
}

// Element returns the i-th direct child.
func (p Pattern[V]) Element(i int) Pattern[V] {
	return p.elements[i]
}

// IsAtomic reports whether the pattern has no children.
func (p Pattern[V]) IsAtomic() bool { return len(p.elements) == 0 }

// Length returns the number of direct children.
func (p Pattern[V]) Length() int { return len(p.elements) }

// Size returns the total node count, including this node. Always >= 1.
func (p Pattern[V]) Size() int {
	count := 0
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		for i := range n.elements {
			stack = append(stack, &n.elements[i])
		}
	}
	return count
}

// Depth returns the maximum nesting depth: 0 for atomic patterns,
// 1 + max child depth otherwise.
func (p Pattern[V]) Depth() int {
	type frame struct {
		node  *Pattern[V]
		depth int
	}
	deepest := 0
	stack := []frame{{&p, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > deepest {
			deepest = f.depth
		}
		for i := range f.node.elements {
			stack = append(stack, frame{&f.node.elements[i], f.depth + 1})
		}
	}
	return deepest
}

// Values returns all payloads in pre-order: this node's value first, then
// each child's full pre-order sequence in element order. The result length
// equals Size().
func (p Pattern[V]) Values() []V {
	out := make([]V, 0, 8)
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.value)
		for i := len(n.elements) - 1; i >= 0; i-- {
			stack = append(stack, &n.elements[i])
		}
	}
	return out
}

// String renders the pattern as an s-expression, truncating beyond ten
// nesting levels.
func (p Pattern[V]) String() string {
	var sb strings.Builder
	p.writeString(&sb, 0, 10)
	return sb.String()
}

func (p Pattern[V]) writeString(sb *strings.Builder, depth, maxDepth int) {
	if depth > maxDepth {
		sb.WriteString("...")
		return
	}
	sb.WriteString("(")
	fmt.Fprintf(sb, "%v", p.value)
	for i := range p.elements {
		sb.WriteString(" ")
		p.elements[i].writeString(sb, depth+1, maxDepth)
	}
	sb.WriteString(")")
}
