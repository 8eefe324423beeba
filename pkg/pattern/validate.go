package pattern

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule names reported by ValidationError.
const (
	RuleMaxDepth    = "max_depth"
	RuleMaxElements = "max_elements"
)

// Sentinel values for errors.Is checks against a ValidationError.
var (
	ErrMaxDepthExceeded    = errors.New("max_depth exceeded")
	ErrMaxElementsExceeded = errors.New("max_elements exceeded")
)

// ValidationRules bounds the shape of a pattern. A nil field means
// unconstrained.
type ValidationRules struct {
	// MaxDepth is the maximum allowed depth-from-root of any node
	MaxDepth *int `yaml:"max_depth" json:"max_depth" mapstructure:"max_depth"`

	// MaxElements is the maximum allowed direct-child count of any node
	MaxElements *int `yaml:"max_elements" json:"max_elements" mapstructure:"max_elements"`
}

// Limit returns a pointer to n, for building rules inline.
func Limit(n int) *int { return &n }

// RulesFromYAML parses validation rules from YAML, e.g.
//
//	max_depth: 10
//	max_elements: 100
func RulesFromYAML(data []byte) (ValidationRules, error) {
	var rules ValidationRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return ValidationRules{}, fmt.Errorf("unable to decode validation rules: %w", err)
	}
	return rules, nil
}

// ValidationError reports the first rule violation found during Validate.
type ValidationError struct {
	// Rule is the name of the violated rule ("max_depth" or "max_elements")
	Rule string

	// Message is a human-readable description of the violation
	Message string

	// Location is the path of child indices from the root to the violating
	// node; empty means the root itself
	Location []int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is match against the rule sentinels.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrMaxDepthExceeded:
		return e.Rule == RuleMaxDepth
	case ErrMaxElementsExceeded:
		return e.Rule == RuleMaxElements
	}
	return false
}

// Validate walks the tree in pre-order and checks every node (root included)
// against the rules: the node's depth-from-root against MaxDepth and its
// direct-child count against MaxElements. It returns a *ValidationError for
// the first violating node, or nil when the whole tree passes. The input is
// never mutated.
func (p Pattern[V]) Validate(rules ValidationRules) error {
	type frame struct {
		node  *Pattern[V]
		depth int
		path  []int
	}
	stack := []frame{{&p, 0, nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if rules.MaxDepth != nil && f.depth > *rules.MaxDepth {
			return &ValidationError{
				Rule:     RuleMaxDepth,
				Message:  fmt.Sprintf("max_depth exceeded: node at depth %d, limit is %d", f.depth, *rules.MaxDepth),
				Location: pathCopy(f.path),
			}
		}
		if rules.MaxElements != nil && len(f.node.elements) > *rules.MaxElements {
			return &ValidationError{
				Rule:     RuleMaxElements,
				Message:  fmt.Sprintf("max_elements exceeded: node has %d elements, limit is %d", len(f.node.elements), *rules.MaxElements),
				Location: pathCopy(f.path),
			}
		}

		for i := len(f.node.elements) - 1; i >= 0; i-- {
			childPath := make([]int, len(f.path), len(f.path)+1)
			copy(childPath, f.path)
			stack = append(stack, frame{&f.node.elements[i], f.depth + 1, append(childPath, i)})
		}
	}
	return nil
}

func pathCopy(path []int) []int {
	out := make([]int, len(path))
	copy(out, path)
	return out
}
