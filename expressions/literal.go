package expressions

import (
	"fmt"
	"time"

	"github.com/openlakehouse/catalog-go/types"
	"github.com/openlakehouse/catalog-go/utils/logger"
)

// Literal is a constant expression value paired with its catalog type.
type Literal struct {
	value    any
	dataType types.Type
}

func newLiteral(value any, dataType types.Type) Literal {
	return Literal{value: value, dataType: dataType}
}

func NullLiteral() Literal { return newLiteral(nil, types.NullType{}) }
func BooleanLiteral(value bool) Literal { return newLiteral(value, types.BooleanType{}) }
func ByteLiteral(value int8) Literal { return newLiteral(value, types.ByteType{}) }
func ShortLiteral(value int16) Literal { return newLiteral(value, types.ShortType{}) }
func IntegerLiteral(value int32) Literal { return newLiteral(value, types.IntegerType{}) }
func LongLiteral(value int64) Literal { return newLiteral(value, types.LongType{}) }
func FloatLiteral(value float32) Literal { return newLiteral(value, types.FloatType{}) }
func DoubleLiteral(value float64) Literal { return newLiteral(value, types.DoubleType{}) }
func StringLiteral(value string) Literal { return newLiteral(value, types.StringType{}) }
func DateLiteral(value time.Time) Literal { return newLiteral(value, types.DateType{}) }
func TimeLiteral(value time.Time) Literal { return newLiteral(value, types.TimeType{}) }

func TimestampLiteral(value time.Time) Literal {
	return newLiteral(value, types.TimestampTypeWithoutTimeZone())
}

// DecimalLiteral types the literal with the decimal's own precision and
// scale.
func DecimalLiteral(value types.Decimal) Literal {
	dataType, err := types.NewDecimalType(value.Precision(), value.Scale())
	if err != nil {
		// A constructed Decimal always carries valid precision and scale.
		logger.Fatalf("failed to derive decimal type from %s: %s", value, err)
	}

	return newLiteral(value, dataType)
}

func VarCharLiteral(length int32, value string) (Literal, error) {
	dataType, err := types.NewVarCharType(length)
	if err != nil {
		return Literal{}, err
	}

	return newLiteral(value, dataType), nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// TimestampLiteralFromString parses an ISO-8601 timestamp.
func TimestampLiteralFromString(value string) (Literal, error) {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return TimestampLiteral(parsed), nil
		}
	}

	return Literal{}, fmt.Errorf("%w: malformed timestamp literal %q", types.ErrInvalidArgument, value)
}

func (l Literal) Value() any { return l.value }
func (l Literal) DataType() types.Type { return l.dataType }
func (l Literal) Children() []Expression { return nil }

// typeString tolerates the zero Literal, whose type is nil, so that hashing
// or comparing a discarded value never panics.
func (l Literal) typeString() string {
	if l.dataType == nil {
		return "invalid"
	}

	return l.dataType.SimpleString()
}

func (l Literal) Equal(other Literal) bool {
	return expressionsEqual(l, other)
}

func (l Literal) Hash() uint64 {
	return hashExpression(l)
}

func (l Literal) String() string {
	return fmt.Sprintf("literal(%v, %s)", l.value, l.typeString())
}
