package graph

import (
	"github.com/relateby/pattern-go/pkg/pattern"
	"github.com/relateby/pattern-go/pkg/subject"
)

// Node creates an atomic node pattern for a subject.
func Node(s *subject.Subject) SubjectPattern {
	return pattern.Point(s)
}

// Relationship creates a relationship pattern between src and dst. The
// relationship subject gets a generated UUID identity and relType as its
// label.
func Relationship(src, dst SubjectPattern, relType string) SubjectPattern {
	rel := subject.Generate(subject.WithLabels(relType))
	return pattern.New(rel, []SubjectPattern{src, dst})
}

// Relationships zips parallel source, target, and relation-type sequences
// into relationship patterns. All three sequences must have the same length.
func Relationships(sources, targets []SubjectPattern, relTypes []string) ([]SubjectPattern, error) {
	rels := make([]*subject.Subject, len(relTypes))
	for i, rt := range relTypes {
		rels[i] = subject.Generate(subject.WithLabels(rt))
	}
	return pattern.Zip3(sources, targets, rels)
}
