package graph

import (
	"github.com/relateby/pattern-go/pkg/pattern"
	"github.com/relateby/pattern-go/pkg/subject"
)

// SubjectPattern is the payload specialization this package operates on.
type SubjectPattern = pattern.Pattern[*subject.Subject]

// Class is the structural category of a subject pattern.
type Class int

const (
	// ClassNode is an atomic pattern.
	ClassNode Class = iota
	// ClassRelationship is a pattern with exactly two atomic elements.
	ClassRelationship
	// ClassAnnotation is a pattern with exactly one element.
	ClassAnnotation
	// ClassWalk is a pattern whose elements are relationships chained
	// through shared endpoint identities.
	ClassWalk
	// ClassOther is any shape not covered above.
	ClassOther
)

// String returns the lowercase name of the class.
func (c Class) String() string {
	switch c {
	case ClassNode:
		return "node"
	case ClassRelationship:
		return "relationship"
	case ClassAnnotation:
		return "annotation"
	case ClassWalk:
		return "walk"
	default:
		return "other"
	}
}

// Classifier assigns a class to a subject pattern. ClassifyByShape is the
// canonical implementation; callers may inject their own.
type Classifier func(SubjectPattern) Class

// ClassifyByShape classifies a pattern purely by its structure.
func ClassifyByShape(p SubjectPattern) Class {
	switch {
	case p.IsAtomic():
		return ClassNode
	case p.Length() == 1:
		return ClassAnnotation
	case isRelationshipLike(p):
		return ClassRelationship
	case isWalk(p):
		return ClassWalk
	default:
		return ClassOther
	}
}

func isRelationshipLike(p SubjectPattern) bool {
	if p.Length() != 2 {
		return false
	}
	return p.Element(0).IsAtomic() && p.Element(1).IsAtomic()
}

// isWalk checks that every element is relationship-shaped and that
// consecutive relationships connect through a shared endpoint identity.
// Direction-agnostic: either endpoint of a relationship can extend the walk.
func isWalk(p SubjectPattern) bool {
	if p.Length() == 0 {
		return false
	}
	for i := 0; i < p.Length(); i++ {
		if !isRelationshipLike(p.Element(i)) {
			return false
		}
	}

	first := p.Element(0)
	frontier := []string{
		first.Element(0).Value().Identity(),
		first.Element(1).Value().Identity(),
	}

	for i := 1; i < p.Length(); i++ {
		rel := p.Element(i)
		a := rel.Element(0).Value().Identity()
		b := rel.Element(1).Value().Identity()

		aMatches := contains(frontier, a)
		bMatches := contains(frontier, b)

		switch {
		case aMatches && bMatches:
			frontier = []string{a, b}
		case aMatches:
			frontier = []string{b}
		case bMatches:
			frontier = []string{a}
		default:
			return false
		}
	}
	return true
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
