package subject

import "fmt"

// Strategy names a built-in policy for merging two subjects.
type Strategy string

const (
	// StrategyMerge keeps the left identity, unions labels, and unions
	// properties with the right side winning key collisions.
	StrategyMerge Strategy = "merge"

	// StrategyFirst keeps the left subject verbatim.
	StrategyFirst Strategy = "first"

	// StrategyLast keeps the right subject verbatim.
	StrategyLast Strategy = "last"

	// StrategyEmpty discards both sides: anonymous identity, no labels,
	// no properties.
	StrategyEmpty Strategy = "empty"
)

// CombineFunc is a caller-supplied merge rule for full custom control.
type CombineFunc func(left, right *Subject) *Subject

// UnknownStrategyError reports an unrecognized strategy name.
type UnknownStrategyError struct {
	Strategy string
}

// Error implements the error interface.
func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown combination strategy %q: valid options are merge, first, last, empty", e.Strategy)
}

// Merge combines two subjects under the default merge strategy: identity from
// the left operand, label union, property union with the right operand winning
// key collisions (last-writer-wins, which keeps the operation associative).
func Merge(left, right *Subject) *Subject {
	out := left.Clone()
	for l := range right.labels {
		out.labels[l] = struct{}{}
	}
	for k, v := range right.properties {
		out.properties[k] = v
	}
	return out
}

// Combiner resolves a strategy name to its merge rule. Unknown names fail
// with *UnknownStrategyError.
func Combiner(s Strategy) (CombineFunc, error) {
	switch s {
	case StrategyMerge:
		return Merge, nil
	case StrategyFirst:
		return func(left, _ *Subject) *Subject { return left.Clone() }, nil
	case StrategyLast:
		return func(_, right *Subject) *Subject { return right.Clone() }, nil
	case StrategyEmpty:
		return func(_, _ *Subject) *Subject { return New(Anonymous) }, nil
	default:
		return nil, &UnknownStrategyError{Strategy: string(s)}
	}
}

// Combine merges two subjects under a named strategy.
func Combine(left, right *Subject, s Strategy) (*Subject, error) {
	fn, err := Combiner(s)
	if err != nil {
		return nil, err
	}
	return fn(left, right), nil
}
