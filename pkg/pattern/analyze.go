package pattern

import (
	"fmt"
	"sort"
)

// StructureAnalysis holds read-only structural statistics for a pattern.
// Two patterns with identical structure produce identical analyses.
type StructureAnalysis struct {
	// Summary is a short human-readable description
	Summary string `json:"summary"`

	// DepthDistribution counts nodes per depth level; index 0 is the root
	// level
	DepthDistribution []int `json:"depth_distribution"`

	// ElementCounts is each node's direct-child count, in pre-order
	ElementCounts []int `json:"element_counts"`

	// NestingPatterns are stable textual descriptors of recurring shapes
	NestingPatterns []string `json:"nesting_patterns"`
}

// AnalyzeStructure computes structural statistics in a single pre-order
// traversal. The input is never mutated.
func (p Pattern[V]) AnalyzeStructure() StructureAnalysis {
	type frame struct {
		node  *Pattern[V]
		depth int
	}

	var (
		depthDistribution []int
		elementCounts     []int
		leaves            int
		maxBranching      int
		maxDepth          int
	)

	stack := []frame{{&p, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for len(depthDistribution) <= f.depth {
			depthDistribution = append(depthDistribution, 0)
		}
		depthDistribution[f.depth]++

		n := len(f.node.elements)
		elementCounts = append(elementCounts, n)
		if n == 0 {
			leaves++
		}
		if n > maxBranching {
			maxBranching = n
		}
		if f.depth > maxDepth {
			maxDepth = f.depth
		}

		for i := n - 1; i >= 0; i-- {
			stack = append(stack, frame{&f.node.elements[i], f.depth + 1})
		}
	}

	size := len(elementCounts)
	return StructureAnalysis{
		Summary:           fmt.Sprintf("%d nodes, depth %d, %d leaves, max branching %d", size, maxDepth, leaves, maxBranching),
		DepthDistribution: depthDistribution,
		ElementCounts:     elementCounts,
		NestingPatterns:   nestingPatterns(elementCounts, maxDepth, leaves),
	}
}

// nestingPatterns derives the descriptor vocabulary from per-node element
// counts. Descriptors are deterministic for identical structures.
func nestingPatterns(elementCounts []int, maxDepth, leaves int) []string {
	size := len(elementCounts)
	if size == 1 {
		return []string{"atomic"}
	}

	branching := map[int]struct{}{}
	for _, n := range elementCounts {
		if n > 0 {
			branching[n] = struct{}{}
		}
	}
	factors := make([]int, 0, len(branching))
	for n := range branching {
		factors = append(factors, n)
	}
	sort.Ints(factors)

	var out []string
	switch {
	case len(factors) == 1 && factors[0] == 1:
		out = append(out, "linear chain")
	case len(factors) == 1:
		out = append(out, fmt.Sprintf("uniform branching (factor %d)", factors[0]))
	default:
		out = append(out, fmt.Sprintf("mixed branching (factors %d-%d)", factors[0], factors[len(factors)-1]))
	}

	if maxDepth == 1 {
		out = append(out, "flat")
	}

	out = append(out, fmt.Sprintf("%d%% leaves", leaves*100/size))
	return out
}
