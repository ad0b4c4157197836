package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/openlakehouse/catalog-go/constants"
	"github.com/openlakehouse/catalog-go/utils"
)

// Name tags every catalog data type with a closed identifier.
type Name string

const (
	NameNull         Name = "null"
	NameBoolean      Name = "boolean"
	NameByte         Name = "byte"
	NameShort        Name = "short"
	NameInteger      Name = "integer"
	NameLong         Name = "long"
	NameFloat        Name = "float"
	NameDouble       Name = "double"
	NameDecimal      Name = "decimal"
	NameDate         Name = "date"
	NameTime         Name = "time"
	NameTimestamp    Name = "timestamp"
	NameIntervalYear Name = "interval_year"
	NameIntervalDay  Name = "interval_day"
	NameString       Name = "string"
	NameUUID         Name = "uuid"
	NameFixed        Name = "fixed"
	NameVarChar      Name = "varchar"
	NameFixedChar    Name = "fixedchar"
	NameBinary       Name = "binary"
	NameStruct       Name = "struct"
	NameList         Name = "list"
	NameMap          Name = "map"
	NameUnion        Name = "union"
	NameUnparsed     Name = "unparsed"
	NameExternal     Name = "external"
)

// Type is a catalog data type. Implementations are immutable values and safe
// to share once constructed.
type Type interface {
	Name() Name
	SimpleString() string
}

// Equal reports whether two types are structurally identical.
func Equal(a, b Type) bool {
	return reflect.DeepEqual(a, b)
}

// HashType returns a stable hash of a type, derived from its canonical simple
// string so that structurally equal types always hash alike.
func HashType(t Type) uint64 {
	return utils.Hash(struct{ Simple string }{t.SimpleString()})
}

type NullType struct{}

func (NullType) Name() Name { return NameNull }
func (NullType) SimpleString() string { return "null" }

type BooleanType struct{}

func (BooleanType) Name() Name { return NameBoolean }
func (BooleanType) SimpleString() string { return "boolean" }

// Integral types default to signed; the zero value of each struct is the
// signed variant.

type ByteType struct{ unsigned bool }

func UnsignedByteType() ByteType { return ByteType{unsigned: true} }
func (t ByteType) Signed() bool { return !t.unsigned }
func (ByteType) Name() Name { return NameByte }
func (t ByteType) SimpleString() string {
	return integralSimpleString("byte", t.unsigned)
}

type ShortType struct{ unsigned bool }

func UnsignedShortType() ShortType { return ShortType{unsigned: true} }
func (t ShortType) Signed() bool { return !t.unsigned }
func (ShortType) Name() Name { return NameShort }
func (t ShortType) SimpleString() string {
	return integralSimpleString("short", t.unsigned)
}

type IntegerType struct{ unsigned bool }

func UnsignedIntegerType() IntegerType { return IntegerType{unsigned: true} }
func (t IntegerType) Signed() bool { return !t.unsigned }
func (IntegerType) Name() Name { return NameInteger }
func (t IntegerType) SimpleString() string {
	return integralSimpleString("integer", t.unsigned)
}

type LongType struct{ unsigned bool }

func UnsignedLongType() LongType { return LongType{unsigned: true} }
func (t LongType) Signed() bool { return !t.unsigned }
func (LongType) Name() Name { return NameLong }
func (t LongType) SimpleString() string {
	return integralSimpleString("long", t.unsigned)
}

func integralSimpleString(base string, unsigned bool) string {
	if unsigned {
		return base + " unsigned"
	}
	return base
}

type FloatType struct{}

func (FloatType) Name() Name { return NameFloat }
func (FloatType) SimpleString() string { return "float" }

type DoubleType struct{}

func (DoubleType) Name() Name { return NameDouble }
func (DoubleType) SimpleString() string { return "double" }

// DecimalType is a fixed-point type with explicit precision and scale.
type DecimalType struct {
	precision int32
	scale     int32
}

func NewDecimalType(precision, scale int32) (DecimalType, error) {
	if err := CheckPrecisionScale(precision, scale); err != nil {
		return DecimalType{}, err
	}

	return DecimalType{precision: precision, scale: scale}, nil
}

// CheckPrecisionScale enforces the catalog bounds on a decimal declaration:
// precision in [1, 38] and scale in [0, precision].
func CheckPrecisionScale(precision, scale int32) error {
	if precision < constants.MinDecimalPrecision || precision > constants.MaxDecimalPrecision {
		return fmt.Errorf("%w: decimal precision must be in range [%d, %d]: %d",
			ErrInvalidArgument, constants.MinDecimalPrecision, constants.MaxDecimalPrecision, precision)
	}
	if scale < constants.MinDecimalScale || scale > precision {
		return fmt.Errorf("%w: decimal scale must be in range [%d, precision (%d)]: %d",
			ErrInvalidArgument, constants.MinDecimalScale, precision, scale)
	}

	return nil
}

func (t DecimalType) Precision() int32 { return t.precision }
func (t DecimalType) Scale() int32 { return t.scale }
func (DecimalType) Name() Name { return NameDecimal }
func (t DecimalType) SimpleString() string {
	return fmt.Sprintf("decimal(%d,%d)", t.precision, t.scale)
}

type DateType struct{}

func (DateType) Name() Name { return NameDate }
func (DateType) SimpleString() string { return "date" }

type TimeType struct{}

func (TimeType) Name() Name { return NameTime }
func (TimeType) SimpleString() string { return "time" }

type TimestampType struct{ withTimeZone bool }

func TimestampTypeWithTimeZone() TimestampType { return TimestampType{withTimeZone: true} }
func TimestampTypeWithoutTimeZone() TimestampType { return TimestampType{} }
func (t TimestampType) HasTimeZone() bool { return t.withTimeZone }
func (TimestampType) Name() Name { return NameTimestamp }
func (t TimestampType) SimpleString() string {
	if t.withTimeZone {
		return "timestamp_tz"
	}
	return "timestamp"
}

type IntervalYearType struct{}

func (IntervalYearType) Name() Name { return NameIntervalYear }
func (IntervalYearType) SimpleString() string { return "interval_year" }

type IntervalDayType struct{}

func (IntervalDayType) Name() Name { return NameIntervalDay }
func (IntervalDayType) SimpleString() string { return "interval_day" }

type StringType struct{}

func (StringType) Name() Name { return NameString }
func (StringType) SimpleString() string { return "string" }

type UUIDType struct{}

func (UUIDType) Name() Name { return NameUUID }
func (UUIDType) SimpleString() string { return "uuid" }

type lengthSpec struct {
	Length int32 `validate:"gte=0"`
}

// FixedType is a fixed-length binary type.
type FixedType struct{ length int32 }

func NewFixedType(length int32) (FixedType, error) {
	if err := utils.Validate(lengthSpec{Length: length}); err != nil {
		return FixedType{}, fmt.Errorf("%w: fixed length must be non-negative: %d", ErrInvalidArgument, length)
	}

	return FixedType{length: length}, nil
}

func (t FixedType) Length() int32 { return t.length }
func (FixedType) Name() Name { return NameFixed }
func (t FixedType) SimpleString() string {
	return fmt.Sprintf("fixed(%d)", t.length)
}

type VarCharType struct{ length int32 }

func NewVarCharType(length int32) (VarCharType, error) {
	if err := utils.Validate(lengthSpec{Length: length}); err != nil {
		return VarCharType{}, fmt.Errorf("%w: varchar length must be non-negative: %d", ErrInvalidArgument, length)
	}

	return VarCharType{length: length}, nil
}

func (t VarCharType) Length() int32 { return t.length }
func (VarCharType) Name() Name { return NameVarChar }
func (t VarCharType) SimpleString() string {
	return fmt.Sprintf("varchar(%d)", t.length)
}

type FixedCharType struct{ length int32 }

func NewFixedCharType(length int32) (FixedCharType, error) {
	if err := utils.Validate(lengthSpec{Length: length}); err != nil {
		return FixedCharType{}, fmt.Errorf("%w: char length must be non-negative: %d", ErrInvalidArgument, length)
	}

	return FixedCharType{length: length}, nil
}

func (t FixedCharType) Length() int32 { return t.length }
func (FixedCharType) Name() Name { return NameFixedChar }
func (t FixedCharType) SimpleString() string {
	return fmt.Sprintf("char(%d)", t.length)
}

type BinaryType struct{}

func (BinaryType) Name() Name { return NameBinary }
func (BinaryType) SimpleString() string { return "binary" }

// StructField is one named member of a StructType. The comment is optional
// and participates in equality but not in the rendered NULL marker.
type StructField struct {
	name      string
	fieldType Type
	nullable  bool
	comment   string
}

func NewStructField(name string, fieldType Type, nullable bool, comment string) (StructField, error) {
	if name == "" {
		return StructField{}, fmt.Errorf("%w: struct field name cannot be empty", ErrInvalidArgument)
	}
	if fieldType == nil {
		return StructField{}, fmt.Errorf("%w: struct field type cannot be nil", ErrInvalidArgument)
	}

	return StructField{name: name, fieldType: fieldType, nullable: nullable, comment: comment}, nil
}

func NullableField(name string, fieldType Type, comment string) (StructField, error) {
	return NewStructField(name, fieldType, true, comment)
}

func NotNullField(name string, fieldType Type, comment string) (StructField, error) {
	return NewStructField(name, fieldType, false, comment)
}

func (f StructField) FieldName() string { return f.name }
func (f StructField) FieldType() Type { return f.fieldType }
func (f StructField) Nullable() bool { return f.nullable }
func (f StructField) Comment() string { return f.comment }

func (f StructField) SimpleString() string {
	nullable := "NOT NULL"
	if f.nullable {
		nullable = "NULL"
	}
	if f.comment != "" {
		return fmt.Sprintf("%s: %s %s COMMENT '%s'", f.name, f.fieldType.SimpleString(), nullable, f.comment)
	}

	return fmt.Sprintf("%s: %s %s", f.name, f.fieldType.SimpleString(), nullable)
}

type StructType struct{ fields []StructField }

func NewStructType(fields ...StructField) (StructType, error) {
	if len(fields) == 0 {
		return StructType{}, fmt.Errorf("%w: struct type requires at least one field", ErrInvalidArgument)
	}

	return StructType{fields: append([]StructField(nil), fields...)}, nil
}

func (t StructType) Fields() []StructField {
	return append([]StructField(nil), t.fields...)
}

func (StructType) Name() Name { return NameStruct }

func (t StructType) SimpleString() string {
	parts := utils.Map(t.fields, func(f StructField) string { return f.SimpleString() })
	return fmt.Sprintf("struct<%s>", strings.Join(parts, ", "))
}

type ListType struct {
	elementType     Type
	elementNullable bool
}

func NewListType(elementType Type, elementNullable bool) (ListType, error) {
	if elementType == nil {
		return ListType{}, fmt.Errorf("%w: list element type cannot be nil", ErrInvalidArgument)
	}

	return ListType{elementType: elementType, elementNullable: elementNullable}, nil
}

func (t ListType) ElementType() Type { return t.elementType }
func (t ListType) ElementNullable() bool { return t.elementNullable }
func (ListType) Name() Name { return NameList }

func (t ListType) SimpleString() string {
	if t.elementNullable {
		return fmt.Sprintf("list<%s>", t.elementType.SimpleString())
	}
	return fmt.Sprintf("list<%s, NOT NULL>", t.elementType.SimpleString())
}

type MapType struct {
	keyType       Type
	valueType     Type
	valueNullable bool
}

func NewMapType(keyType, valueType Type, valueNullable bool) (MapType, error) {
	if keyType == nil || valueType == nil {
		return MapType{}, fmt.Errorf("%w: map key and value types cannot be nil", ErrInvalidArgument)
	}

	return MapType{keyType: keyType, valueType: valueType, valueNullable: valueNullable}, nil
}

func (t MapType) KeyType() Type { return t.keyType }
func (t MapType) ValueType() Type { return t.valueType }
func (t MapType) ValueNullable() bool { return t.valueNullable }
func (MapType) Name() Name { return NameMap }

func (t MapType) SimpleString() string {
	return fmt.Sprintf("map<%s, %s>", t.keyType.SimpleString(), t.valueType.SimpleString())
}

type UnionType struct{ types []Type }

func NewUnionType(unionedTypes ...Type) UnionType {
	return UnionType{types: append([]Type(nil), unionedTypes...)}
}

func (t UnionType) Types() []Type {
	return append([]Type(nil), t.types...)
}

func (UnionType) Name() Name { return NameUnion }

func (t UnionType) SimpleString() string {
	parts := utils.Map(t.types, func(member Type) string { return member.SimpleString() })
	return fmt.Sprintf("union<%s>", strings.Join(parts, ", "))
}

// UnparsedType round-trips a type string the client could not interpret.
type UnparsedType struct{ raw string }

func NewUnparsedType(raw string) UnparsedType { return UnparsedType{raw: raw} }

func (t UnparsedType) UnparsedType() string { return t.raw }
func (UnparsedType) Name() Name { return NameUnparsed }
func (t UnparsedType) SimpleString() string {
	return fmt.Sprintf("unparsed(%s)", t.raw)
}

// ExternalType carries a type representation owned by an external catalog.
type ExternalType struct{ catalogString string }

func NewExternalType(catalogString string) ExternalType {
	return ExternalType{catalogString: catalogString}
}

func (t ExternalType) CatalogString() string { return t.catalogString }
func (ExternalType) Name() Name { return NameExternal }
func (t ExternalType) SimpleString() string {
	return fmt.Sprintf("external(%s)", t.catalogString)
}

// AllowAutoIncrement reports whether a column of the given type may be
// declared auto-increment.
func AllowAutoIncrement(t Type) bool {
	switch t.(type) {
	case IntegerType, LongType:
		return true
	default:
		return false
	}
}
