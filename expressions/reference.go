package expressions

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/openlakehouse/catalog-go/types"
)

// FieldPath names a possibly nested column as an ordered list of path
// segments, outermost first.
type FieldPath []string

func PathOf(segments ...string) FieldPath {
	return FieldPath(segments)
}

// NamedReference is an immutable reference to a (possibly nested) field.
// References may be shared freely across transforms.
type NamedReference struct {
	fieldName []string
}

// FieldOf builds a reference from path segments. The path must contain at
// least one segment and no blank segments; violations of every segment are
// collected before failing.
func FieldOf(fieldName ...string) (NamedReference, error) {
	if len(fieldName) == 0 {
		return NamedReference{}, fmt.Errorf("%w: field reference requires at least one path segment", types.ErrInvalidArgument)
	}

	var segErrs *multierror.Error
	for idx, segment := range fieldName {
		if strings.TrimSpace(segment) == "" {
			segErrs = multierror.Append(segErrs, fmt.Errorf("path segment %d is blank", idx))
		}
	}
	if err := segErrs.ErrorOrNil(); err != nil {
		return NamedReference{}, fmt.Errorf("%w: malformed field path %v: %s", types.ErrInvalidArgument, fieldName, err)
	}

	return NamedReference{fieldName: append([]string(nil), fieldName...)}, nil
}

// fieldsOf builds one reference per path, collecting the validation errors of
// every malformed path before failing.
func fieldsOf(fieldNames []FieldPath) ([]NamedReference, error) {
	refs := make([]NamedReference, 0, len(fieldNames))
	var refErrs *multierror.Error
	for _, path := range fieldNames {
		ref, err := FieldOf(path...)
		if err != nil {
			refErrs = multierror.Append(refErrs, err)
			continue
		}
		refs = append(refs, ref)
	}

	return refs, refErrs.ErrorOrNil()
}

// FieldName returns the path segments of the referenced field.
func (r NamedReference) FieldName() []string {
	return append([]string(nil), r.fieldName...)
}

func (r NamedReference) Children() []Expression { return nil }

func (r NamedReference) Equal(other NamedReference) bool {
	return slices.Equal(r.fieldName, other.fieldName)
}

func (r NamedReference) Hash() uint64 {
	return hashExpression(r)
}

func (r NamedReference) String() string {
	return strings.Join(r.fieldName, ".")
}
