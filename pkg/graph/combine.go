package graph

import (
	"github.com/relateby/pattern-go/pkg/pattern"
	"github.com/relateby/pattern-go/pkg/subject"
)

// CombineWith merges two subject patterns with a caller-supplied subject
// merge rule: elements concatenate (a's first) and the new root subject is
// fn(a's subject, b's subject).
func CombineWith(a, b SubjectPattern, fn subject.CombineFunc) SubjectPattern {
	return pattern.Combine(a, b, func(x, y *subject.Subject) *subject.Subject {
		return fn(x, y)
	})
}

// Combine merges two subject patterns under a named strategy. Unknown
// strategy names fail with *subject.UnknownStrategyError. Under the default
// merge strategy Combine is associative in identity and label set.
func Combine(a, b SubjectPattern, s subject.Strategy) (SubjectPattern, error) {
	fn, err := subject.Combiner(s)
	if err != nil {
		return SubjectPattern{}, err
	}
	return CombineWith(a, b, fn), nil
}
