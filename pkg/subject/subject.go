package subject

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/relateby/pattern-go/pkg/values"
)

// Anonymous is the identity sentinel for subjects constructed without one.
const Anonymous = "_"

// Subject is a self-descriptive entity: identity, label set, property map.
type Subject struct {
	identity   string
	labels     map[string]struct{}
	properties map[string]values.Value
}

// Option configures a Subject under construction.
type Option func(*Subject)

// WithLabels adds the given labels. Duplicates collapse.
func WithLabels(labels ...string) Option {
	return func(s *Subject) {
		for _, l := range labels {
			s.labels[l] = struct{}{}
		}
	}
}

// WithProperty sets a single property.
func WithProperty(name string, v values.Value) Option {
	return func(s *Subject) {
		s.properties[name] = v
	}
}

// WithProperties sets all entries of the given map.
func WithProperties(props map[string]values.Value) Option {
	return func(s *Subject) {
		for k, v := range props {
			s.properties[k] = v
		}
	}
}

// New creates a Subject with the given identity. An empty identity becomes
// the anonymous sentinel.
func New(identity string, opts ...Option) *Subject {
	if identity == "" {
		identity = Anonymous
	}
	s := &Subject{
		identity:   identity,
		labels:     make(map[string]struct{}),
		properties: make(map[string]values.Value),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateIdentity returns a fresh UUIDv7 identity string.
func GenerateIdentity() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Generate creates a Subject with a freshly generated UUID identity.
func Generate(opts ...Option) *Subject {
	return New(GenerateIdentity(), opts...)
}

// Identity returns the subject's identity string.
func (s *Subject) Identity() string { return s.identity }

// IsAnonymous reports whether the subject carries the anonymous sentinel.
func (s *Subject) IsAnonymous() bool { return s.identity == Anonymous }

// Labels returns the label set as a sorted slice.
func (s *Subject) Labels() []string {
	out := make([]string, 0, len(s.labels))
	for l := range s.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// HasLabel reports whether the label is present.
func (s *Subject) HasLabel(label string) bool {
	_, ok := s.labels[label]
	return ok
}

// AddLabel adds a label. Adding an existing label is a no-op.
func (s *Subject) AddLabel(label string) {
	s.labels[label] = struct{}{}
}

// RemoveLabel removes a label. Removing an absent label is a no-op.
func (s *Subject) RemoveLabel(label string) {
	delete(s.labels, label)
}

// Property returns the named property and whether it is set.
func (s *Subject) Property(name string) (values.Value, bool) {
	v, ok := s.properties[name]
	return v, ok
}

// SetProperty sets a property, replacing any existing value.
func (s *Subject) SetProperty(name string, v values.Value) {
	s.properties[name] = v
}

// RemoveProperty removes a property. Removing an absent key is a no-op.
func (s *Subject) RemoveProperty(name string) {
	delete(s.properties, name)
}

// Properties returns a copy of the property map.
func (s *Subject) Properties() map[string]values.Value {
	out := make(map[string]values.Value, len(s.properties))
	for k, v := range s.properties {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy of the label set and property map. Property
// values themselves are immutable and shared.
func (s *Subject) Clone() *Subject {
	c := &Subject{
		identity:   s.identity,
		labels:     make(map[string]struct{}, len(s.labels)),
		properties: make(map[string]values.Value, len(s.properties)),
	}
	for l := range s.labels {
		c.labels[l] = struct{}{}
	}
	for k, v := range s.properties {
		c.properties[k] = v
	}
	return c
}

// Equal reports whether two subjects have the same identity, label set, and
// structurally equal properties.
func (s *Subject) Equal(other *Subject) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.identity != other.identity || len(s.labels) != len(other.labels) || len(s.properties) != len(other.properties) {
		return false
	}
	for l := range s.labels {
		if _, ok := other.labels[l]; !ok {
			return false
		}
	}
	for k, v := range s.properties {
		ov, ok := other.properties[k]
		if !ok || !values.Equal(v, ov) {
			return false
		}
	}
	return true
}

// String renders the subject in gram-like notation:
// identity, then sorted labels joined by "::", then sorted properties.
func (s *Subject) String() string {
	var sb strings.Builder
	sb.WriteString(s.identity)

	if len(s.labels) > 0 {
		sb.WriteString(":")
		sb.WriteString(strings.Join(s.Labels(), "::"))
	}

	if len(s.properties) > 0 {
		keys := make([]string, 0, len(s.properties))
		for k := range s.properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			sb.WriteString(s.properties[k].String())
		}
		sb.WriteString("}")
	}

	return sb.String()
}
