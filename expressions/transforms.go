package expressions

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/openlakehouse/catalog-go/types"
	"github.com/openlakehouse/catalog-go/utils"
)

// Fixed lowercase tags of the named transform kinds.
const (
	NameOfIdentity = "identity"
	NameOfYear     = "year"
	NameOfMonth    = "month"
	NameOfDay      = "day"
	NameOfHour     = "hour"
	NameOfBucket   = "bucket"
	NameOfTruncate = "truncate"
	NameOfList     = "list"
	NameOfRange    = "range"
)

// Transform describes how a column's values map into partitions or derived
// values. The variant set is closed: every variant derives equality and
// hashing from one canonical key, so the Arguments() rendering can never
// drift from the equality semantics.
type Transform interface {
	Expression
	// Name returns the transform function name.
	Name() string
	// Arguments returns the arguments passed to the transform function.
	Arguments() []Expression
	// Assignments returns the preassigned partitions; empty for every
	// transform except list and range.
	Assignments() []Partition

	eqKey() exprKey
}

// TransformsEqual reports structural equality between two transforms of any
// variant.
func TransformsEqual(a, b Transform) bool {
	if a == nil || b == nil {
		return a == b
	}

	return reflect.DeepEqual(a.eqKey(), b.eqKey())
}

// singleFieldTransform carries the shared behavior of the transforms that
// wrap exactly one field reference.
type singleFieldTransform struct {
	name string
	ref  NamedReference
}

func newSingleFieldTransform(name string, fieldName []string) (singleFieldTransform, error) {
	ref, err := FieldOf(fieldName...)
	if err != nil {
		return singleFieldTransform{}, err
	}

	return singleFieldTransform{name: name, ref: ref}, nil
}

func (t singleFieldTransform) Name() string { return t.name }
func (t singleFieldTransform) Reference() NamedReference { return t.ref }
func (t singleFieldTransform) FieldName() []string { return t.ref.FieldName() }
func (t singleFieldTransform) Arguments() []Expression { return []Expression{t.ref} }
func (t singleFieldTransform) Children() []Expression { return t.Arguments() }
func (t singleFieldTransform) Assignments() []Partition { return nil }
func (t singleFieldTransform) Hash() uint64 { return utils.Hash(t.eqKey()) }
func (t singleFieldTransform) Equal(other Transform) bool { return TransformsEqual(t, other) }

func (t singleFieldTransform) eqKey() exprKey {
	return exprKey{Kind: t.name, Path: t.ref.fieldName}
}

// IdentityTransform partitions by the column value itself.
type IdentityTransform struct{ singleFieldTransform }

// YearTransform, MonthTransform, DayTransform and HourTransform partition by
// truncating a temporal column to the named unit.
type YearTransform struct{ singleFieldTransform }
type MonthTransform struct{ singleFieldTransform }
type DayTransform struct{ singleFieldTransform }
type HourTransform struct{ singleFieldTransform }

// Identity creates a transform that returns the input value. A bare column
// name is a single-segment path; multiple segments name a nested field.
func Identity(fieldName ...string) (IdentityTransform, error) {
	base, err := newSingleFieldTransform(NameOfIdentity, fieldName)
	return IdentityTransform{base}, err
}

// Year creates a transform that returns the year of the input value.
func Year(fieldName ...string) (YearTransform, error) {
	base, err := newSingleFieldTransform(NameOfYear, fieldName)
	return YearTransform{base}, err
}

// Month creates a transform that returns the month of the input value.
func Month(fieldName ...string) (MonthTransform, error) {
	base, err := newSingleFieldTransform(NameOfMonth, fieldName)
	return MonthTransform{base}, err
}

// Day creates a transform that returns the day of the input value.
func Day(fieldName ...string) (DayTransform, error) {
	base, err := newSingleFieldTransform(NameOfDay, fieldName)
	return DayTransform{base}, err
}

// Hour creates a transform that returns the hour of the input value.
func Hour(fieldName ...string) (HourTransform, error) {
	base, err := newSingleFieldTransform(NameOfHour, fieldName)
	return HourTransform{base}, err
}

// BucketTransform hashes one or more columns into a fixed number of buckets.
type BucketTransform struct {
	numBuckets int
	fields     []NamedReference
}

type bucketSpec struct {
	NumBuckets int `validate:"gt=0"`
	Fields     int `validate:"gt=0"`
}

// Bucket creates a transform that returns the bucket of the input value.
func Bucket(numBuckets int, fieldNames ...FieldPath) (BucketTransform, error) {
	if err := utils.Validate(bucketSpec{NumBuckets: numBuckets, Fields: len(fieldNames)}); err != nil {
		return BucketTransform{}, fmt.Errorf("%w: bucket requires a positive bucket count and at least one field, got %d buckets over %d fields",
			types.ErrInvalidArgument, numBuckets, len(fieldNames))
	}
	fields, err := fieldsOf(fieldNames)
	if err != nil {
		return BucketTransform{}, err
	}

	return BucketTransform{numBuckets: numBuckets, fields: fields}, nil
}

func (t BucketTransform) Name() string { return NameOfBucket }
func (t BucketTransform) NumBuckets() int { return t.numBuckets }

// FieldNames returns the flattened path segments of every field reference.
func (t BucketTransform) FieldNames() []string {
	var names []string
	for _, field := range t.fields {
		names = append(names, field.fieldName...)
	}

	return names
}

// Arguments renders the bucket count as an integer literal followed by one
// string literal per flattened field-name part. Equality and hashing use the
// raw (numBuckets, fieldNames) key instead; the two representations are not
// interchangeable.
func (t BucketTransform) Arguments() []Expression {
	args := []Expression{IntegerLiteral(int32(t.numBuckets))}
	for _, part := range t.FieldNames() {
		args = append(args, StringLiteral(part))
	}

	return args
}

func (t BucketTransform) Children() []Expression { return t.Arguments() }
func (t BucketTransform) Assignments() []Partition { return nil }
func (t BucketTransform) Hash() uint64 { return utils.Hash(t.eqKey()) }
func (t BucketTransform) Equal(other Transform) bool { return TransformsEqual(t, other) }

func (t BucketTransform) eqKey() exprKey {
	return exprKey{Kind: NameOfBucket, Num: t.numBuckets, Path: t.FieldNames()}
}

// TruncateTransform truncates a column value to the given width.
type TruncateTransform struct {
	width int
	field NamedReference
}

type truncateSpec struct {
	Width int `validate:"gt=0"`
}

// Truncate creates a transform that truncates the input value to width.
func Truncate(width int, fieldName ...string) (TruncateTransform, error) {
	if err := utils.Validate(truncateSpec{Width: width}); err != nil {
		return TruncateTransform{}, fmt.Errorf("%w: truncate width must be positive: %d", types.ErrInvalidArgument, width)
	}
	field, err := FieldOf(fieldName...)
	if err != nil {
		return TruncateTransform{}, err
	}

	return TruncateTransform{width: width, field: field}, nil
}

func (t TruncateTransform) Name() string { return NameOfTruncate }
func (t TruncateTransform) Width() int { return t.width }
func (t TruncateTransform) FieldName() []string { return t.field.FieldName() }

func (t TruncateTransform) Arguments() []Expression {
	return []Expression{IntegerLiteral(int32(t.width)), t.field}
}

func (t TruncateTransform) Children() []Expression { return t.Arguments() }
func (t TruncateTransform) Assignments() []Partition { return nil }
func (t TruncateTransform) Hash() uint64 { return utils.Hash(t.eqKey()) }
func (t TruncateTransform) Equal(other Transform) bool { return TransformsEqual(t, other) }

func (t TruncateTransform) eqKey() exprKey {
	return exprKey{Kind: NameOfTruncate, Num: t.width, Path: t.field.fieldName}
}

// ListTransform groups multiple fields into list partitioning.
type ListTransform struct {
	fields      []NamedReference
	assignments []ListPartition
}

// List creates a transform over the given fields with optional preassigned
// list partitions.
func List(fieldNames []FieldPath, assignments ...ListPartition) (ListTransform, error) {
	if len(fieldNames) == 0 {
		return ListTransform{}, fmt.Errorf("%w: list transform requires at least one field", types.ErrInvalidArgument)
	}
	fields, err := fieldsOf(fieldNames)
	if err != nil {
		return ListTransform{}, err
	}

	return ListTransform{fields: fields, assignments: append([]ListPartition(nil), assignments...)}, nil
}

func (t ListTransform) Name() string { return NameOfList }

// FieldNames returns one path per grouped field.
func (t ListTransform) FieldNames() [][]string {
	return utils.Map(t.fields, func(field NamedReference) []string { return field.FieldName() })
}

func (t ListTransform) Arguments() []Expression {
	return utils.Map(t.fields, func(field NamedReference) Expression { return field })
}

func (t ListTransform) Children() []Expression { return t.Arguments() }

// Assignments returns a fresh slice on every call; equality deliberately
// ignores assignments.
func (t ListTransform) Assignments() []Partition {
	return utils.Map(t.assignments, func(p ListPartition) Partition { return p })
}

func (t ListTransform) Hash() uint64 { return utils.Hash(t.eqKey()) }
func (t ListTransform) Equal(other Transform) bool { return TransformsEqual(t, other) }

func (t ListTransform) eqKey() exprKey {
	return exprKey{Kind: NameOfList, Args: utils.Map(t.fields, func(field NamedReference) exprKey { return keyOf(field) })}
}

// RangeTransform partitions a single field by pre-declared ranges.
type RangeTransform struct {
	field       NamedReference
	assignments []RangePartition
}

// Range creates a transform over the given field with optional preassigned
// range partitions.
func Range(fieldName FieldPath, assignments ...RangePartition) (RangeTransform, error) {
	field, err := FieldOf(fieldName...)
	if err != nil {
		return RangeTransform{}, err
	}

	return RangeTransform{field: field, assignments: append([]RangePartition(nil), assignments...)}, nil
}

func (t RangeTransform) Name() string { return NameOfRange }
func (t RangeTransform) FieldName() []string { return t.field.FieldName() }

func (t RangeTransform) Arguments() []Expression {
	return []Expression{t.field}
}

func (t RangeTransform) Children() []Expression { return t.Arguments() }

// Assignments returns a fresh slice on every call; equality deliberately
// ignores assignments.
func (t RangeTransform) Assignments() []Partition {
	return utils.Map(t.assignments, func(p RangePartition) Partition { return p })
}

func (t RangeTransform) Hash() uint64 { return utils.Hash(t.eqKey()) }
func (t RangeTransform) Equal(other Transform) bool { return TransformsEqual(t, other) }

func (t RangeTransform) eqKey() exprKey {
	return exprKey{Kind: NameOfRange, Path: t.field.fieldName}
}

// ApplyTransform applies an arbitrary named function to ordered arguments;
// the escape hatch for transforms without a dedicated variant.
type ApplyTransform struct {
	name string
	args []Expression
}

// Apply creates a transform that applies the named function to the given
// arguments, preserving their order.
func Apply(name string, arguments ...Expression) (ApplyTransform, error) {
	if strings.TrimSpace(name) == "" {
		return ApplyTransform{}, fmt.Errorf("%w: transform function name cannot be blank", types.ErrInvalidArgument)
	}

	return ApplyTransform{name: name, args: append([]Expression(nil), arguments...)}, nil
}

func (t ApplyTransform) Name() string { return t.name }

func (t ApplyTransform) Arguments() []Expression {
	return append([]Expression(nil), t.args...)
}

func (t ApplyTransform) Children() []Expression { return t.Arguments() }
func (t ApplyTransform) Assignments() []Partition { return nil }
func (t ApplyTransform) Hash() uint64 { return utils.Hash(t.eqKey()) }
func (t ApplyTransform) Equal(other Transform) bool { return TransformsEqual(t, other) }

func (t ApplyTransform) eqKey() exprKey {
	return exprKey{Kind: "apply", Name: t.name, Args: utils.Map(t.args, keyOf)}
}
