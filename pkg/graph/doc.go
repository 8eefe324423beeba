// Package graph interprets Pattern[*subject.Subject] trees as graph
// structures.
//
// A pattern's shape determines its graph class: an atomic pattern is a node,
// a pattern with two atomic elements is a relationship between them, a
// single-element pattern annotates its element, and a pattern whose elements
// are relationships chaining through shared endpoints is a walk.
//
// Graph collects classified patterns into identity-keyed collections,
// reconciling duplicate identities with a subject combine strategy. It is a
// pure in-memory container; patterns inserted into it are never mutated.
//
//	g := graph.New()
//	alice := pattern.Point(subject.New("alice", subject.WithLabels("Person")))
//	rel := graph.Relationship(alice, bob, "KNOWS")
//	if err := g.Merge(rel); err != nil { ... }
package graph
