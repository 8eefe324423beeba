package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("no rules always pass", func(t *testing.T) {
		p := New(1, []Pattern[int]{Point(2), New(3, []Pattern[int]{Point(4)})})
		assert.NoError(t, p.Validate(ValidationRules{}))
	})

	t.Run("max_elements violation at the root", func(t *testing.T) {
		elems := make([]Pattern[int], 10)
		for i := range elems {
			elems[i] = Point(i)
		}
		p := New(0, elems)

		err := p.Validate(ValidationRules{MaxElements: Limit(5)})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, RuleMaxElements, verr.Rule)
		assert.Equal(t, "max_elements exceeded: node has 10 elements, limit is 5", verr.Message)
		assert.Empty(t, verr.Location)
	})

	t.Run("max_elements violation in a nested node", func(t *testing.T) {
		wide := New(0, []Pattern[int]{Point(1), Point(2), Point(3)})
		p := New(0, []Pattern[int]{Point(0), New(0, []Pattern[int]{wide})})

		err := p.Validate(ValidationRules{MaxElements: Limit(2)})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []int{1, 0}, verr.Location)
	})

	t.Run("max_depth violation", func(t *testing.T) {
		p := New(0, []Pattern[int]{
			New(1, []Pattern[int]{
				New(2, []Pattern[int]{Point(3)}),
			}),
		})

		err := p.Validate(ValidationRules{MaxDepth: Limit(2)})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, RuleMaxDepth, verr.Rule)
		assert.Equal(t, "max_depth exceeded: node at depth 3, limit is 2", verr.Message)
		assert.Equal(t, []int{0, 0, 0}, verr.Location)
	})

	t.Run("limits are inclusive", func(t *testing.T) {
		p := New(0, []Pattern[int]{Point(1), Point(2)})

		assert.NoError(t, p.Validate(ValidationRules{
			MaxDepth:    Limit(1),
			MaxElements: Limit(2),
		}))
	})

	t.Run("depth is checked before elements on the same node", func(t *testing.T) {
		wide := New(0, []Pattern[int]{Point(1), Point(2), Point(3)})
		p := New(0, []Pattern[int]{wide})

		err := p.Validate(ValidationRules{MaxDepth: Limit(0), MaxElements: Limit(1)})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, RuleMaxDepth, verr.Rule)
	})

	t.Run("sentinel matching with errors.Is", func(t *testing.T) {
		deep := New(0, []Pattern[int]{New(1, []Pattern[int]{Point(2)})})

		err := deep.Validate(ValidationRules{MaxDepth: Limit(1)})
		assert.True(t, errors.Is(err, ErrMaxDepthExceeded))
		assert.False(t, errors.Is(err, ErrMaxElementsExceeded))

		err = deep.Validate(ValidationRules{MaxElements: Limit(0)})
		assert.True(t, errors.Is(err, ErrMaxElementsExceeded))
	})

	t.Run("deep chain within limits", func(t *testing.T) {
		p := Point(0)
		for i := 0; i < 150; i++ {
			p = New(i, []Pattern[int]{p})
		}

		assert.NoError(t, p.Validate(ValidationRules{MaxDepth: Limit(200)}))

		err := p.Validate(ValidationRules{MaxDepth: Limit(100)})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Location, 101)
	})

	t.Run("wide tree", func(t *testing.T) {
		elems := make([]Pattern[int], 10000)
		for i := range elems {
			elems[i] = Point(i)
		}
		p := New(0, elems)

		assert.NoError(t, p.Validate(ValidationRules{MaxElements: Limit(10000)}))
		assert.Error(t, p.Validate(ValidationRules{MaxElements: Limit(9999)}))
	})
}

func TestRulesFromYAML(t *testing.T) {
	t.Run("parses both bounds", func(t *testing.T) {
		rules, err := RulesFromYAML([]byte("max_depth: 3\nmax_elements: 10\n"))
		require.NoError(t, err)

		require.NotNil(t, rules.MaxDepth)
		require.NotNil(t, rules.MaxElements)
		assert.Equal(t, 3, *rules.MaxDepth)
		assert.Equal(t, 10, *rules.MaxElements)
	})

	t.Run("absent keys stay unconstrained", func(t *testing.T) {
		rules, err := RulesFromYAML([]byte("max_depth: 3\n"))
		require.NoError(t, err)

		assert.NotNil(t, rules.MaxDepth)
		assert.Nil(t, rules.MaxElements)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := RulesFromYAML([]byte("max_depth: [not a number\n"))
		assert.Error(t, err)
	})
}
