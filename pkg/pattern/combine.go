package pattern

// Combine merges two patterns: the result's elements are a's elements
// followed by b's, and its value is combineValue(a.Value(), b.Value()).
// Combine is associative whenever combineValue is.
func Combine[V any](a, b Pattern[V], combineValue func(V, V) V) Pattern[V] {
	elements := make([]Pattern[V], 0, len(a.elements)+len(b.elements))
	elements = append(elements, a.elements...)
	elements = append(elements, b.elements...)
	return Pattern[V]{
		value:    combineValue(a.value, b.value),
		elements: elements,
	}
}

// CombineStrings merges two string-payload patterns, concatenating their
// values.
func CombineStrings(a, b Pattern[string]) Pattern[string] {
	return Combine(a, b, func(x, y string) string { return x + y })
}
