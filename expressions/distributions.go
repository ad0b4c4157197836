package expressions

import (
	"fmt"
	"strings"

	"github.com/openlakehouse/catalog-go/types"
	"github.com/openlakehouse/catalog-go/utils"
)

// Strategy defines how data is distributed across partitions.
type Strategy string

const (
	// StrategyNone leaves allocation to the underlying system.
	StrategyNone Strategy = "none"
	// StrategyHash distributes by the hash value of the expressions.
	StrategyHash Strategy = "hash"
	// StrategyRange distributes by value ranges of the expressions.
	StrategyRange Strategy = "range"
	// StrategyEven distributes data evenly across partitions.
	StrategyEven Strategy = "even"
)

var strategies = []Strategy{StrategyNone, StrategyHash, StrategyRange, StrategyEven}

// StrategyFromString resolves a strategy name in any case; "random" is an
// accepted alias of even.
func StrategyFromString(name string) (Strategy, error) {
	candidate := Strategy(strings.ToLower(name))
	if candidate == "random" {
		return StrategyEven, nil
	}
	if utils.ExistInArray(strategies, candidate) {
		return candidate, nil
	}

	return "", fmt.Errorf("%w: invalid distribution strategy %q, valid values are: %v", types.ErrInvalidArgument, name, strategies)
}

func (s Strategy) String() string { return string(s) }

// Distribution describes how rows spread over a number of partitions, driven
// by a strategy applied to a list of expressions.
type Distribution struct {
	strategy    Strategy
	number      int
	expressions []Expression
}

// DistributionOf builds a distribution from a strategy, a partition count and
// the driving expressions.
func DistributionOf(strategy Strategy, number int, expressions ...Expression) Distribution {
	return Distribution{strategy: strategy, number: number, expressions: append([]Expression(nil), expressions...)}
}

// Even distributes data evenly over number partitions.
func Even(number int, expressions ...Expression) Distribution {
	return DistributionOf(StrategyEven, number, expressions...)
}

// HashDistribution distributes by hashing the expressions over number
// partitions.
func HashDistribution(number int, expressions ...Expression) Distribution {
	return DistributionOf(StrategyHash, number, expressions...)
}

// NoneDistribution leaves the allocation to the underlying system.
func NoneDistribution() Distribution {
	return DistributionOf(StrategyNone, 0)
}

// DistributionFields builds a distribution driven by field references, one
// per path.
func DistributionFields(strategy Strategy, number int, fieldNames ...FieldPath) (Distribution, error) {
	fields, err := fieldsOf(fieldNames)
	if err != nil {
		return Distribution{}, err
	}
	expressions := utils.Map(fields, func(field NamedReference) Expression { return field })

	return DistributionOf(strategy, number, expressions...), nil
}

func (d Distribution) Strategy() Strategy { return d.strategy }
func (d Distribution) Number() int { return d.number }

func (d Distribution) Expressions() []Expression {
	return append([]Expression(nil), d.expressions...)
}

func (d Distribution) Children() []Expression {
	return d.Expressions()
}

func (d Distribution) Equal(other Distribution) bool {
	if d.strategy != other.strategy || d.number != other.number || len(d.expressions) != len(other.expressions) {
		return false
	}
	for idx := range d.expressions {
		if !expressionsEqual(d.expressions[idx], other.expressions[idx]) {
			return false
		}
	}

	return true
}

func (d Distribution) Hash() uint64 {
	return utils.Hash(struct {
		Strategy string
		Number   int
		Args     []exprKey
	}{string(d.strategy), d.number, utils.Map(d.expressions, keyOf)})
}

func (d Distribution) String() string {
	return fmt.Sprintf("distribution(%s, %d, %v)", d.strategy, d.number, d.expressions)
}
