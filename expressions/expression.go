// Package expressions models the declarative expressions a metadata catalog
// accepts when describing tables: field references, literal values, partition
// transforms, sort orders and distributions. Everything here is an immutable
// value; construction either fully succeeds or fails with
// types.ErrInvalidArgument, so an invalid expression never exists.
package expressions

import (
	"fmt"
	"reflect"

	"github.com/openlakehouse/catalog-go/utils"
)

// Expression is a node in a reference/transform tree.
type Expression interface {
	// Children returns the sub-expressions of this node, empty for leaves.
	Children() []Expression
	// Hash returns a stable hash of the expression's canonical key.
	Hash() uint64
}

// exprKey is the canonical, fully exported form of an expression. Equality
// and hashing both run off this one representation, so the two can never
// drift apart for any expression kind.
type exprKey struct {
	Kind  string
	Path  []string
	Value string
	Type  string
	Name  string
	Num   int
	Args  []exprKey
}

func keyOf(e Expression) exprKey {
	switch v := e.(type) {
	case NamedReference:
		return exprKey{Kind: "reference", Path: v.fieldName}
	case Literal:
		return exprKey{Kind: "literal", Value: fmt.Sprint(v.value), Type: v.typeString()}
	case Transform:
		return v.eqKey()
	default:
		return exprKey{Kind: fmt.Sprintf("%T", e), Value: fmt.Sprint(e)}
	}
}

func expressionsEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}

	return reflect.DeepEqual(keyOf(a), keyOf(b))
}

func hashExpression(e Expression) uint64 {
	return utils.Hash(keyOf(e))
}
