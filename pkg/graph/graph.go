package graph

import (
	"sort"

	"github.com/relateby/pattern-go/pkg/subject"
)

// Graph routes subject patterns into identity-keyed collections by class.
// Duplicate identities are reconciled with a subject combine strategy.
type Graph struct {
	classifier Classifier

	nodes         map[string]SubjectPattern
	relationships map[string]SubjectPattern
	annotations   map[string]SubjectPattern
	walks         map[string]SubjectPattern
	others        []SubjectPattern
}

// New returns an empty graph using the canonical shape classifier.
func New() *Graph {
	return NewWithClassifier(ClassifyByShape)
}

// NewWithClassifier returns an empty graph using a custom classifier.
func NewWithClassifier(c Classifier) *Graph {
	return &Graph{
		classifier:    c,
		nodes:         make(map[string]SubjectPattern),
		relationships: make(map[string]SubjectPattern),
		annotations:   make(map[string]SubjectPattern),
		walks:         make(map[string]SubjectPattern),
	}
}

// Merge inserts a pattern using the last strategy: on duplicate identities
// the incoming subject wins.
func (g *Graph) Merge(p SubjectPattern) error {
	return g.MergeWith(p, subject.StrategyLast)
}

// MergeWith inserts a pattern, reconciling duplicate identities with the
// given strategy. Relationships merge their endpoint nodes first; walks
// merge each relationship; annotations merge the annotated element.
func (g *Graph) MergeWith(p SubjectPattern, s subject.Strategy) error {
	fn, err := subject.Combiner(s)
	if err != nil {
		return err
	}
	g.merge(p, fn)
	return nil
}

func (g *Graph) merge(p SubjectPattern, fn subject.CombineFunc) {
	switch g.classifier(p) {
	case ClassNode:
		g.insert(g.nodes, p, fn)
	case ClassRelationship:
		g.merge(p.Element(0), fn)
		g.merge(p.Element(1), fn)
		g.insert(g.relationships, p, fn)
	case ClassAnnotation:
		g.merge(p.Element(0), fn)
		g.insert(g.annotations, p, fn)
	case ClassWalk:
		for i := 0; i < p.Length(); i++ {
			g.merge(p.Element(i), fn)
		}
		g.insert(g.walks, p, fn)
	default:
		g.others = append(g.others, p)
	}
}

func (g *Graph) insert(coll map[string]SubjectPattern, p SubjectPattern, fn subject.CombineFunc) {
	id := p.Value().Identity()
	existing, ok := coll[id]
	if !ok {
		coll[id] = p
		return
	}
	coll[id] = CombineWith(existing, p, fn)
}

// FromPatterns builds a graph from patterns in order using the last
// strategy.
func FromPatterns(patterns []SubjectPattern) *Graph {
	g := New()
	for _, p := range patterns {
		g.merge(p, func(_, right *subject.Subject) *subject.Subject { return right.Clone() })
	}
	return g
}

// Node returns the node pattern with the given identity.
func (g *Graph) Node(id string) (SubjectPattern, bool) {
	p, ok := g.nodes[id]
	return p, ok
}

// Relationship returns the relationship pattern with the given identity.
func (g *Graph) Relationship(id string) (SubjectPattern, bool) {
	p, ok := g.relationships[id]
	return p, ok
}

// Nodes returns all node patterns sorted by identity.
func (g *Graph) Nodes() []SubjectPattern {
	return sortedValues(g.nodes)
}

// Relationships returns all relationship patterns sorted by identity.
func (g *Graph) Relationships() []SubjectPattern {
	return sortedValues(g.relationships)
}

// Walks returns all walk patterns sorted by identity.
func (g *Graph) Walks() []SubjectPattern {
	return sortedValues(g.walks)
}

// Annotations returns all annotation patterns sorted by identity.
func (g *Graph) Annotations() []SubjectPattern {
	return sortedValues(g.annotations)
}

// Others returns patterns that fit no graph class, in insertion order.
func (g *Graph) Others() []SubjectPattern {
	out := make([]SubjectPattern, len(g.others))
	copy(out, g.others)
	return out
}

// IncidentRelationships returns the relationships touching the node with the
// given identity, sorted by relationship identity.
func (g *Graph) IncidentRelationships(id string) []SubjectPattern {
	var out []SubjectPattern
	for _, relID := range sortedKeys(g.relationships) {
		rel := g.relationships[relID]
		if Source(rel).Value().Identity() == id || Target(rel).Value().Identity() == id {
			out = append(out, rel)
		}
	}
	return out
}

// Degree returns the number of relationships touching the node with the
// given identity. Self-loops count once.
func (g *Graph) Degree(id string) int {
	return len(g.IncidentRelationships(id))
}

// Source returns the first endpoint of a relationship-shaped pattern.
func Source(rel SubjectPattern) SubjectPattern {
	return rel.Element(0)
}

// Target returns the second endpoint of a relationship-shaped pattern.
func Target(rel SubjectPattern) SubjectPattern {
	return rel.Element(1)
}

func sortedValues(coll map[string]SubjectPattern) []SubjectPattern {
	keys := sortedKeys(coll)
	out := make([]SubjectPattern, 0, len(keys))
	for _, k := range keys {
		out = append(out, coll[k])
	}
	return out
}

func sortedKeys(coll map[string]SubjectPattern) []string {
	keys := make([]string, 0, len(coll))
	for k := range coll {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
