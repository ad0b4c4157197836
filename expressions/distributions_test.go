package expressions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlakehouse/catalog-go/types"
)

func TestStrategyFromString(t *testing.T) {
	tests := []struct {
		input       string
		expected    Strategy
		expectError bool
	}{
		{input: "none", expected: StrategyNone},
		{input: "HASH", expected: StrategyHash},
		{input: "Range", expected: StrategyRange},
		{input: "even", expected: StrategyEven},
		// Random is an accepted alias of even.
		{input: "random", expected: StrategyEven},
		{input: "modulo", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			strategy, err := StrategyFromString(tt.input)
			if tt.expectError {
				assert.ErrorIs(t, err, types.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strategy)
		})
	}
}

func TestDistributionFactories(t *testing.T) {
	ref, err := FieldOf("user_id")
	require.NoError(t, err)

	even := Even(8, ref)
	assert.Equal(t, StrategyEven, even.Strategy())
	assert.Equal(t, 8, even.Number())
	require.Len(t, even.Expressions(), 1)
	assert.Equal(t, even.Expressions(), even.Children())

	hashed := HashDistribution(4, ref)
	assert.Equal(t, StrategyHash, hashed.Strategy())

	none := NoneDistribution()
	assert.Equal(t, StrategyNone, none.Strategy())
	assert.Zero(t, none.Number())
	assert.Empty(t, none.Expressions())
}

func TestDistributionFields(t *testing.T) {
	dist, err := DistributionFields(StrategyHash, 16, PathOf("id"), PathOf("meta", "region"))
	require.NoError(t, err)
	require.Len(t, dist.Expressions(), 2)

	ref, ok := dist.Expressions()[1].(NamedReference)
	require.True(t, ok)
	assert.Equal(t, []string{"meta", "region"}, ref.FieldName())

	_, err = DistributionFields(StrategyHash, 16, PathOf(""))
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestDistributionEqualityAndHash(t *testing.T) {
	ref, err := FieldOf("id")
	require.NoError(t, err)

	first := HashDistribution(4, ref)
	second := HashDistribution(4, ref)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Hash(), second.Hash())

	assert.False(t, first.Equal(HashDistribution(8, ref)))
	assert.False(t, first.Equal(Even(4, ref)))
	assert.False(t, first.Equal(HashDistribution(4)))
}
