package expressions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlakehouse/catalog-go/types"
)

func TestSingleFieldTransforms(t *testing.T) {
	tests := []struct {
		name      string
		construct func(fieldName ...string) (Transform, error)
		tag       string
	}{
		{"identity", func(f ...string) (Transform, error) { return Identity(f...) }, NameOfIdentity},
		{"year", func(f ...string) (Transform, error) { return Year(f...) }, NameOfYear},
		{"month", func(f ...string) (Transform, error) { return Month(f...) }, NameOfMonth},
		{"day", func(f ...string) (Transform, error) { return Day(f...) }, NameOfDay},
		{"hour", func(f ...string) (Transform, error) { return Hour(f...) }, NameOfHour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform, err := tt.construct("a")
			require.NoError(t, err)
			assert.Equal(t, tt.tag, transform.Name())

			args := transform.Arguments()
			require.Len(t, args, 1)
			ref, ok := args[0].(NamedReference)
			require.True(t, ok)
			assert.Equal(t, []string{"a"}, ref.FieldName())

			// Children defaults to the arguments, assignments to empty.
			assert.Equal(t, args, transform.Children())
			assert.Empty(t, transform.Assignments())

			// A bare name and a single-segment path build the same reference.
			same, err := tt.construct([]string{"a"}...)
			require.NoError(t, err)
			assert.True(t, TransformsEqual(transform, same))
			assert.Equal(t, transform.Hash(), same.Hash())

			nested, err := tt.construct("outer", "inner")
			require.NoError(t, err)
			assert.False(t, TransformsEqual(transform, nested))

			_, err = tt.construct()
			assert.ErrorIs(t, err, types.ErrInvalidArgument)
			_, err = tt.construct("")
			assert.ErrorIs(t, err, types.ErrInvalidArgument)
		})
	}
}

func TestTransformKindsAreDistinct(t *testing.T) {
	year, err := Year("ts")
	require.NoError(t, err)
	month, err := Month("ts")
	require.NoError(t, err)

	// Same field, different transform kind.
	assert.False(t, TransformsEqual(year, month))
	assert.NotEqual(t, year.Hash(), month.Hash())
}

func TestBucketTransform(t *testing.T) {
	bucket, err := Bucket(4, PathOf("x"), PathOf("y"))
	require.NoError(t, err)
	assert.Equal(t, NameOfBucket, bucket.Name())
	assert.Equal(t, 4, bucket.NumBuckets())
	assert.Equal(t, []string{"x", "y"}, bucket.FieldNames())

	// Arguments render as an integer literal followed by string literals of
	// the flattened field parts; equality runs off the raw key instead.
	args := bucket.Arguments()
	require.Len(t, args, 3)
	count, ok := args[0].(Literal)
	require.True(t, ok)
	assert.Equal(t, int32(4), count.Value())
	part, ok := args[1].(Literal)
	require.True(t, ok)
	assert.Equal(t, "x", part.Value())

	same, err := Bucket(4, PathOf("x"), PathOf("y"))
	require.NoError(t, err)
	assert.True(t, bucket.Equal(same))
	assert.Equal(t, bucket.Hash(), same.Hash())

	other, err := Bucket(8, PathOf("x"), PathOf("y"))
	require.NoError(t, err)
	assert.False(t, bucket.Equal(other))

	_, err = Bucket(0, PathOf("x"))
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	_, err = Bucket(-1, PathOf("x"))
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	_, err = Bucket(4)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	_, err = Bucket(4, PathOf(""))
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestTruncateTransform(t *testing.T) {
	truncate, err := Truncate(10, "name")
	require.NoError(t, err)
	assert.Equal(t, NameOfTruncate, truncate.Name())
	assert.Equal(t, 10, truncate.Width())
	assert.Equal(t, []string{"name"}, truncate.FieldName())

	args := truncate.Arguments()
	require.Len(t, args, 2)
	width, ok := args[0].(Literal)
	require.True(t, ok)
	assert.Equal(t, int32(10), width.Value())
	_, ok = args[1].(NamedReference)
	assert.True(t, ok)

	same, err := Truncate(10, "name")
	require.NoError(t, err)
	assert.True(t, truncate.Equal(same))
	assert.Equal(t, truncate.Hash(), same.Hash())

	_, err = Truncate(0, "name")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestListTransform(t *testing.T) {
	list, err := List([]FieldPath{PathOf("a"), PathOf("b")})
	require.NoError(t, err)
	assert.Equal(t, NameOfList, list.Name())
	assert.Equal(t, [][]string{{"a"}, {"b"}}, list.FieldNames())
	assert.Empty(t, list.Assignments())
	assert.Len(t, list.Arguments(), 2)

	// Explicit assignments are returned but do not affect equality.
	assigned, err := List([]FieldPath{PathOf("a"), PathOf("b")}, ListPartition{})
	require.NoError(t, err)
	assert.Len(t, assigned.Assignments(), 1)
	assert.True(t, list.Equal(assigned))
	assert.Equal(t, list.Hash(), assigned.Hash())

	_, err = List(nil)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	_, err = List([]FieldPath{PathOf("a"), PathOf("")})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestRangeTransform(t *testing.T) {
	rng, err := Range(PathOf("ts"))
	require.NoError(t, err)
	assert.Equal(t, NameOfRange, rng.Name())
	assert.Equal(t, []string{"ts"}, rng.FieldName())
	assert.Empty(t, rng.Assignments())

	assigned, err := Range(PathOf("ts"), RangePartition{})
	require.NoError(t, err)
	assert.Len(t, assigned.Assignments(), 1)
	assert.True(t, rng.Equal(assigned))

	_, err = Range(nil)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestApplyTransform(t *testing.T) {
	apply, err := Apply("f", IntegerLiteral(1), StringLiteral("x"))
	require.NoError(t, err)
	assert.Equal(t, "f", apply.Name())
	require.Len(t, apply.Arguments(), 2)

	// Argument order is part of the identity.
	reordered, err := Apply("f", StringLiteral("x"), IntegerLiteral(1))
	require.NoError(t, err)
	assert.False(t, apply.Equal(reordered))
	assert.NotEqual(t, apply.Hash(), reordered.Hash())

	same, err := Apply("f", IntegerLiteral(1), StringLiteral("x"))
	require.NoError(t, err)
	assert.True(t, apply.Equal(same))
	assert.Equal(t, apply.Hash(), same.Hash())

	// Arguments of equal textual value but different type stay distinct.
	typed, err := Apply("f", StringLiteral("1"), StringLiteral("x"))
	require.NoError(t, err)
	assert.False(t, apply.Equal(typed))

	ref, err := FieldOf("col")
	require.NoError(t, err)
	nested, err := Apply("wrap", ref)
	require.NoError(t, err)
	assert.Len(t, nested.Children(), 1)

	_, err = Apply("  ")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestAssignmentsAreNotShared(t *testing.T) {
	list, err := List([]FieldPath{PathOf("a")}, ListPartition{})
	require.NoError(t, err)

	first := list.Assignments()
	second := list.Assignments()
	require.Len(t, first, 1)
	// Mutating one returned slice must not leak into the next call.
	first[0] = nil
	assert.NotNil(t, second[0])
	assert.NotNil(t, list.Assignments()[0])
}
