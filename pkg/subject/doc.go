// Package subject defines the Subject entity type: an identity, a set of
// labels, and a property map over values.Value.
//
// Subject is the common payload for Pattern[*Subject] when patterns model
// graph-like data: an atomic pattern holding a Subject reads as a node, a
// two-element pattern as a relationship.
//
// # Identity
//
// Every Subject has a string identity. The anonymous sentinel "_" stands in
// when no identity is given. Generate mints a fresh UUID identity for callers
// synthesizing subjects programmatically.
//
// # Mutation
//
// Labels and properties mutate in place through AddLabel, RemoveLabel,
// SetProperty, and RemoveProperty. These methods are not safe for concurrent
// use on a shared Subject; patterns holding subjects may be shared for
// reading only.
//
// # Combining
//
// Combine merges two subjects under a named Strategy (merge, first, last,
// empty) or a caller-supplied CombineFunc. The default merge strategy is
// associative: identity from the left operand, label union, property union
// with the right operand winning key collisions.
package subject
