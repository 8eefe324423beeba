// Package patterngo provides an immutable n-ary tree structure for Go.
//
// A Pattern pairs a payload value with an ordered sequence of child patterns,
// forming a persistent tree that supports a structural algebra: map, fold,
// comonadic extend, paramorphisms, structural queries, and pointwise zips.
// On top of the generic core, the subject and graph packages interpret
// subject-payload patterns as property-graph elements.
//
// # Building Patterns
//
// Atomic patterns hold a single value; composite patterns nest:
//
//	p := pattern.New(1, []pattern.Pattern[int]{
//		pattern.Point(2),
//		pattern.New(3, []pattern.Pattern[int]{pattern.Point(4)}),
//	})
//
//	p.Size()   // 4
//	p.Depth()  // 2
//	p.Values() // [1 2 3 4], pre-order
//
// # Structural Algebra
//
// Operations that change the payload type are package-level functions:
//
//	doubled := pattern.Map(p, func(v int) int { return v * 2 })
//	sum := pattern.Fold(p, 0, func(acc, v int) int { return acc + v })
//	sizes := pattern.Extend(p, func(q pattern.Pattern[int]) int { return q.Size() })
//
// # Subjects and Graphs
//
// Subjects carry an identity, a label set, and typed properties:
//
//	alice := subject.New("alice",
//		subject.WithLabels("Person"),
//		subject.WithProperty("age", values.Integer(30)))
//
//	g := graph.New()
//	err := g.Merge(graph.Relationship(graph.Node(alice), graph.Node(bob), "KNOWS"))
//
// # Validation
//
// Patterns can be checked against shape bounds:
//
//	rules := pattern.ValidationRules{MaxDepth: pattern.Limit(10)}
//	if err := p.Validate(rules); err != nil {
//		log.Fatal(err)
//	}
package patterngo
