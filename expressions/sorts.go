package expressions

import (
	"fmt"
	"strings"

	"github.com/openlakehouse/catalog-go/types"
	"github.com/openlakehouse/catalog-go/utils"
)

// NullOrdering places null values relative to non-null values in a sort.
type NullOrdering string

const (
	NullsFirst NullOrdering = "nulls_first"
	NullsLast  NullOrdering = "nulls_last"
)

func NullOrderingFromString(s string) (NullOrdering, error) {
	switch strings.ToLower(s) {
	case string(NullsFirst):
		return NullsFirst, nil
	case string(NullsLast):
		return NullsLast, nil
	default:
		return "", fmt.Errorf("%w: invalid null ordering: %s", types.ErrInvalidArgument, s)
	}
}

func (o NullOrdering) String() string { return string(o) }

// SortDirection is the direction of a sort order.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

func SortDirectionFromString(s string) (SortDirection, error) {
	switch strings.ToLower(s) {
	case string(Asc):
		return Asc, nil
	case string(Desc):
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: unexpected sort direction: %s", types.ErrInvalidArgument, s)
	}
}

// DefaultNullOrdering returns the ordering implied by the direction:
// ascending sorts nulls first, descending sorts nulls last.
func (d SortDirection) DefaultNullOrdering() NullOrdering {
	if d == Asc {
		return NullsFirst
	}
	return NullsLast
}

func (d SortDirection) String() string { return string(d) }

// SortOrder pairs an expression with a direction and a null ordering.
type SortOrder struct {
	expression   Expression
	direction    SortDirection
	nullOrdering NullOrdering
}

// Ascending builds an ascending sort order with the default null ordering.
func Ascending(expression Expression) SortOrder {
	return SortOrderOf(expression, Asc)
}

// Descending builds a descending sort order with the default null ordering.
func Descending(expression Expression) SortOrder {
	return SortOrderOf(expression, Desc)
}

// SortOrderOf builds a sort order; when no explicit null ordering is given,
// the direction's default applies.
func SortOrderOf(expression Expression, direction SortDirection, nullOrdering ...NullOrdering) SortOrder {
	ordering := direction.DefaultNullOrdering()
	if len(nullOrdering) > 0 {
		ordering = nullOrdering[0]
	}

	return SortOrder{expression: expression, direction: direction, nullOrdering: ordering}
}

func (s SortOrder) Expression() Expression { return s.expression }
func (s SortOrder) Direction() SortDirection { return s.direction }
func (s SortOrder) NullOrdering() NullOrdering { return s.nullOrdering }

func (s SortOrder) Children() []Expression {
	return []Expression{s.expression}
}

func (s SortOrder) Equal(other SortOrder) bool {
	return s.direction == other.direction &&
		s.nullOrdering == other.nullOrdering &&
		expressionsEqual(s.expression, other.expression)
}

func (s SortOrder) Hash() uint64 {
	var expr exprKey
	if s.expression != nil {
		expr = keyOf(s.expression)
	}

	return utils.Hash(struct {
		Expr      exprKey
		Direction string
		Ordering  string
	}{expr, string(s.direction), string(s.nullOrdering)})
}

func (s SortOrder) String() string {
	return fmt.Sprintf("sort(%v, %s, %s)", s.expression, s.direction, s.nullOrdering)
}
