package pattern

// AnyValue reports whether any payload in pre-order satisfies the predicate.
// Short-circuits on the first match.
func (p Pattern[V]) AnyValue(pred func(V) bool) bool {
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if pred(n.value) {
			return true
		}
		for i := len(n.elements) - 1; i >= 0; i-- {
			stack = append(stack, &n.elements[i])
		}
	}
	return false
}

// AllValues reports whether every payload in pre-order satisfies the
// predicate. Short-circuits on the first failure.
func (p Pattern[V]) AllValues(pred func(V) bool) bool {
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !pred(n.value) {
			return false
		}
		for i := len(n.elements) - 1; i >= 0; i-- {
			stack = append(stack, &n.elements[i])
		}
	}
	return true
}

// Filter returns all nodes (root included) in pre-order for which the
// predicate holds. The predicate sees nodes, not raw values.
func (p Pattern[V]) Filter(pred func(Pattern[V]) bool) []Pattern[V] {
	var out []Pattern[V]
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if pred(*n) {
			out = append(out, *n)
		}
		for i := len(n.elements) - 1; i >= 0; i-- {
			stack = append(stack, &n.elements[i])
		}
	}
	return out
}

// FindFirst returns the first node in pre-order satisfying the predicate.
// The boolean reports whether a match was found.
func (p Pattern[V]) FindFirst(pred func(Pattern[V]) bool) (Pattern[V], bool) {
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if pred(*n) {
			return *n, true
		}
		for i := len(n.elements) - 1; i >= 0; i-- {
			stack = append(stack, &n.elements[i])
		}
	}
	return Pattern[V]{}, false
}

// Matches reports deep structural equality: equal payloads at every
// corresponding position and identical shape.
func Matches[V comparable](a, b Pattern[V]) bool {
	return MatchesFunc(a, b, func(x, y V) bool { return x == y })
}

// MatchesFunc is Matches with caller-supplied payload equality, for payload
// types that are not comparable (pointers needing structural comparison,
// slices, and so on).
func MatchesFunc[V any](a, b Pattern[V], eq func(V, V) bool) bool {
	type pair struct {
		a, b *Pattern[V]
	}
	stack := []pair{{&a, &b}}
	for len(stack) > 0 {
		pr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !eq(pr.a.value, pr.b.value) || len(pr.a.elements) != len(pr.b.elements) {
			return false
		}
		for i := range pr.a.elements {
			stack = append(stack, pair{&pr.a.elements[i], &pr.b.elements[i]})
		}
	}
	return true
}

// Contains reports whether sub matches some node of p (p itself included)
// in pre-order.
func Contains[V comparable](p, sub Pattern[V]) bool {
	return ContainsFunc(p, sub, func(x, y V) bool { return x == y })
}

// ContainsFunc is Contains with caller-supplied payload equality.
func ContainsFunc[V any](p, sub Pattern[V], eq func(V, V) bool) bool {
	stack := []*Pattern[V]{&p}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if MatchesFunc(*n, sub, eq) {
			return true
		}
		for i := len(n.elements) - 1; i >= 0; i-- {
			stack = append(stack, &n.elements[i])
		}
	}
	return false
}
