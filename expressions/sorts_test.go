package expressions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlakehouse/catalog-go/types"
)

func TestSortDirectionFromString(t *testing.T) {
	direction, err := SortDirectionFromString("asc")
	require.NoError(t, err)
	assert.Equal(t, Asc, direction)

	direction, err = SortDirectionFromString("DESC")
	require.NoError(t, err)
	assert.Equal(t, Desc, direction)

	_, err = SortDirectionFromString("sideways")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestNullOrderingFromString(t *testing.T) {
	ordering, err := NullOrderingFromString("NULLS_FIRST")
	require.NoError(t, err)
	assert.Equal(t, NullsFirst, ordering)

	_, err = NullOrderingFromString("nulls_sometimes")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestDefaultNullOrdering(t *testing.T) {
	assert.Equal(t, NullsFirst, Asc.DefaultNullOrdering())
	assert.Equal(t, NullsLast, Desc.DefaultNullOrdering())
}

func TestSortOrders(t *testing.T) {
	ref, err := FieldOf("created_at")
	require.NoError(t, err)

	ascending := Ascending(ref)
	assert.Equal(t, Asc, ascending.Direction())
	assert.Equal(t, NullsFirst, ascending.NullOrdering())
	require.Len(t, ascending.Children(), 1)

	descending := Descending(ref)
	assert.Equal(t, Desc, descending.Direction())
	assert.Equal(t, NullsLast, descending.NullOrdering())

	// An explicit null ordering overrides the direction's default.
	custom := SortOrderOf(ref, Desc, NullsFirst)
	assert.Equal(t, NullsFirst, custom.NullOrdering())
	assert.False(t, descending.Equal(custom))
}

func TestSortOrderEqualityAndHash(t *testing.T) {
	ref, err := FieldOf("a")
	require.NoError(t, err)
	other, err := FieldOf("b")
	require.NoError(t, err)

	first := Ascending(ref)
	second := Ascending(ref)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Hash(), second.Hash())

	assert.False(t, first.Equal(Ascending(other)))
	assert.False(t, first.Equal(Descending(ref)))
}

func TestSortOrderString(t *testing.T) {
	ref, err := FieldOf("a")
	require.NoError(t, err)
	assert.Equal(t, "sort(a, asc, nulls_first)", Ascending(ref).String())
}
