// Package pattern provides Pattern[V], a persistent n-ary labeled tree, and
// its structural algebra: functor map, pre-order fold, comonadic
// extract/extend, paramorphism, associative combine, queries, validation,
// and structure analysis.
//
// A pattern pairs a payload value with an ordered sequence of child patterns.
// A pattern with no children is atomic. Trees are acyclic and persistent:
// operations build new patterns and never edit existing structure, so
// patterns can be shared freely for concurrent reads.
//
// # Construction
//
//	p := pattern.New(1, []pattern.Pattern[int]{
//	    pattern.Point(2),
//	    pattern.New(3, []pattern.Pattern[int]{pattern.Point(4)}),
//	})
//
// # Algebra
//
// Operations whose result payload type differs from the input's are
// package-level generic functions (Go methods cannot introduce type
// parameters): Map, Fold, Extend, Para. Payload-preserving queries are
// methods on Pattern[V].
//
//	sum := pattern.Fold(p, 0, func(acc, v int) int { return acc + v })
//	total := pattern.Para(p, func(n pattern.Pattern[int], rs []int) int {
//	    t := n.Value()
//	    for _, r := range rs {
//	        t += r
//	    }
//	    return t
//	})
//
// Pre-order traversal is the contract everywhere a traversal order is
// observable: the node's own value first, then each child's full pre-order
// sequence in element order. Deep traversals run on explicit work stacks, so
// pathologically deep trees do not exhaust the call stack.
package pattern
