package pattern

import "fmt"

// Map returns a new pattern of identical shape with every payload replaced
// by f(value). f sees raw values, never nodes.
func Map[V, U any](p Pattern[V], f func(V) U) Pattern[U] {
	out := Pattern[U]{value: f(p.value)}
	if len(p.elements) > 0 {
		out.elements = make([]Pattern[U], len(p.elements))
		for i := range p.elements {
			out.elements[i] = Map(p.elements[i], f)
		}
	}
	return out
}

// Fold accumulates over the pre-order value sequence, root included:
// acc = f(acc, value) at every node, strictly left to right.
func Fold[V, A any](p Pattern[V], init A, f func(A, V) A) A {
	acc := init
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		acc = f(acc, n.value)
		for i := len(n.elements) - 1; i >= 0; i-- {
			stack = append(stack, &n.elements[i])
		}
	}
	return acc
}

// Extend returns a new pattern of identical shape where every node's payload
// is f applied to the subtree rooted at that node. Each node is visited
// exactly once; children are decorated independently of the parent's new
// value.
func Extend[V, U any](p Pattern[V], f func(Pattern[V]) U) Pattern[U] {
	out := Pattern[U]{value: f(p)}
	if len(p.elements) > 0 {
		out.elements = make([]Pattern[U], len(p.elements))
		for i := range p.elements {
			out.elements[i] = Extend(p.elements[i], f)
		}
	}
	return out
}

// Para is a structure-aware fold (paramorphism). Children are reduced first,
// in order; f then receives the original node together with its children's
// already-computed results. Atomic nodes see an empty (non-nil) result slice.
func Para[V, R any](p Pattern[V], f func(Pattern[V], []R) R) R {
	results := make([]R, len(p.elements))
	for i := range p.elements {
		results[i] = Para(p.elements[i], f)
	}
	return f(p, results)
}

// DepthAt decorates every node with the depth of the subtree rooted there.
func DepthAt[V any](p Pattern[V]) Pattern[int] {
	return Extend(p, func(q Pattern[V]) int { return q.Depth() })
}

// SizeAt decorates every node with the size of the subtree rooted there.
func SizeAt[V any](p Pattern[V]) Pattern[int] {
	return Extend(p, func(q Pattern[V]) int { return q.Size() })
}

// IndicesAt decorates every node with its path of child indices from the
// root. The root gets the empty path; the i-th child of a node with path P
// gets P followed by i. Paths are freshly allocated per node.
func IndicesAt[V any](p Pattern[V]) Pattern[[]int] {
	return indicesAt(p, nil)
}

func indicesAt[V any](p Pattern[V], path []int) Pattern[[]int] {
	here := make([]int, len(path))
	copy(here, path)
	out := Pattern[[]int]{value: here}
	if len(p.elements) > 0 {
		out.elements = make([]Pattern[[]int], len(p.elements))
		for i := range p.elements {
			out.elements[i] = indicesAt(p.elements[i], append(path, i))
		}
	}
	return out
}

// LengthMismatchError reports zip inputs of unequal length.
type LengthMismatchError struct {
	// Op is the operation that failed ("zip3" or "zip_with")
	Op string

	// Lengths are the input lengths in argument order
	Lengths []int
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: input lengths do not match: %v", e.Op, e.Lengths)
}

// Zip3 combines three equal-length sequences pointwise: for index i the
// result is a pattern holding vals[i] with elements [left[i], right[i]].
// Used to synthesize relationship triples from parallel source, target, and
// relation sequences.
func Zip3[V any](left, right []Pattern[V], vals []V) ([]Pattern[V], error) {
	if len(left) != len(right) || len(left) != len(vals) {
		return nil, &LengthMismatchError{
			Op:      "zip3",
			Lengths: []int{len(left), len(right), len(vals)},
		}
	}
	out := make([]Pattern[V], len(left))
	for i := range left {
		out[i] = Pattern[V]{
			value:    vals[i],
			elements: []Pattern[V]{left[i], right[i]},
		}
	}
	return out, nil
}

// ZipWith combines two equal-length sequences pointwise, computing each
// parent value with f. f receives the two child patterns, not raw values.
func ZipWith[V any](left, right []Pattern[V], f func(Pattern[V], Pattern[V]) V) ([]Pattern[V], error) {
	if len(left) != len(right) {
		return nil, &LengthMismatchError{
			Op:      "zip_with",
			Lengths: []int{len(left), len(right)},
		}
	}
	out := make([]Pattern[V], len(left))
	for i := range left {
		out[i] = Pattern[V]{
			value:    f(left[i], right[i]),
			elements: []Pattern[V]{left[i], right[i]},
		}
	}
	return out, nil
}
