package types

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openlakehouse/catalog-go/utils"
)

// Decimal is an immutable fixed-point value with explicit precision and
// scale, used to represent a DecimalType value.
type Decimal struct {
	value     decimal.Decimal
	precision int32
	scale     int32
}

// ParseDecimal parses s and derives precision and scale from its textual
// form: scale is the number of digits after the decimal point, precision the
// number of significant digits with trailing zeros included, so "123.450"
// yields precision 6 and scale 3.
func ParseDecimal(s string) (Decimal, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: malformed decimal literal %q: %s", ErrInvalidArgument, s, err)
	}

	return NewDecimal(value)
}

// ParseDecimalWithScale parses s and stores it with the requested precision
// and scale, rounding half-up to scale fractional digits.
func ParseDecimalWithScale(s string, precision, scale int32) (Decimal, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: malformed decimal literal %q: %s", ErrInvalidArgument, s, err)
	}

	return NewDecimalWithScale(value, precision, scale)
}

// NewDecimal derives precision and scale from the value's own representation.
// Values carried with a positive exponent ("1e3") are rescaled to exponent
// zero first, so they derive scale 0 rather than a negative scale.
func NewDecimal(value decimal.Decimal) (Decimal, error) {
	if value.Exponent() > 0 {
		value = value.Round(0)
	}
	scale := -value.Exponent()
	precision := int32(value.NumDigits())
	if scale > precision {
		precision = scale
	}

	return NewDecimalWithScale(value, precision, scale)
}

// NewDecimalWithScale validates the requested precision and scale against the
// catalog decimal bounds, rejects values whose integer part does not fit in
// the precision, and rounds the value half-up to exactly scale fractional
// digits before storing it.
func NewDecimalWithScale(value decimal.Decimal, precision, scale int32) (Decimal, error) {
	if err := CheckPrecisionScale(precision, scale); err != nil {
		return Decimal{}, err
	}

	// shopspring Round is half away from zero, which matches half-up on the
	// exact decimal representation. Rounding runs before the magnitude check
	// so that carries into a new integer digit ("999.6" at scale 0 becomes
	// "1000") cannot slip past the precision.
	rounded := value.Round(scale)
	if digits := integerDigits(rounded); digits > precision {
		return Decimal{}, fmt.Errorf("%w: integer part of %s requires %d digits, exceeding precision %d",
			ErrInvalidArgument, rounded.String(), digits, precision)
	}

	return Decimal{value: rounded, precision: precision, scale: scale}, nil
}

func integerDigits(value decimal.Decimal) int32 {
	truncated := value.Truncate(0)
	if truncated.IsZero() {
		return 0
	}

	return int32(truncated.NumDigits())
}

func (d Decimal) Value() decimal.Decimal { return d.value }
func (d Decimal) Precision() int32 { return d.precision }
func (d Decimal) Scale() int32 { return d.scale }
func (d Decimal) String() string { return d.value.String() }

// Equal compares the rounded value and the scale only; precision is excluded.
func (d Decimal) Equal(other Decimal) bool {
	return d.scale == other.scale && d.value.Equal(other.value)
}

// Hash covers value, precision and scale. Two decimals that differ only in
// precision therefore compare equal but hash differently; both behaviors are
// part of the public contract.
func (d Decimal) Hash() uint64 {
	return utils.Hash(struct {
		Value     string
		Precision int32
		Scale     int32
	}{d.value.String(), d.precision, d.scale})
}
