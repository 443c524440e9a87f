package coax

import (
	"context"

	"github.com/coaxlib/coax/i18n"
)

// Constructor assembles the final domain value from resolved field results.
// The map always contains every declared field name as a key, including
// fields that resolved via fallback or null, so constructors can index by
// name unconditionally. A constructor signals recoverable failure by
// returning an error wrapping one of the recognized sentinels.
type Constructor[T any] func(ctx context.Context, fields map[string]any) (T, error)

// Schema validates a whole mapping into one domain value: an ordered list of
// fields plus a constructor. Immutable after construction and safe to share.
type Schema[T any] struct {
	fields []AnyField
	ctor   Constructor[T]
}

// NewSchema builds a schema from a constructor and fields in declaration
// order.
func NewSchema[T any](ctor Constructor[T], fields ...AnyField) Schema[T] {
	return Schema[T]{fields: append([]AnyField(nil), fields...), ctor: ctor}
}

// Validate validates a raw decoded mapping at the document root.
func (s Schema[T]) Validate(ctx context.Context, raw any) (T, error) {
	return s.ValidateValueAt(ctx, ValueOf(raw), Root())
}

// ValidateValueAt validates a normalized value at an explicit path. Fields
// resolve in declaration order; the first failure aborts and fields after it
// never run.
func (s Schema[T]) ValidateValueAt(ctx context.Context, val Value, p Path) (T, error) {
	var zero T
	if val.Kind != KindObject {
		return zero, &Issue{
			Code:    CodeInvalidType,
			Path:    p,
			Message: i18n.T(CodeInvalidType, map[string]string{"expected": "object", "got": val.Kind.String()}),
			Value:   val.Interface(),
		}
	}
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		fv, err := f.resolve(ctx, val.Obj, p)
		if err != nil {
			return zero, err
		}
		out[f.name] = fv
	}
	t, err := s.ctor(ctx, out)
	if err != nil {
		// Constructor failures attribute to the whole object, not a field.
		if _, ok := AsIssue(err); ok {
			return zero, err
		}
		if recognizedForeign(err) {
			return zero, &Issue{Code: CodeConstraint, Path: p, Message: err.Error(), Value: val.Interface(), Cause: err}
		}
		return zero, err
	}
	return t, nil
}

// ValidateList validates a root-level sequence of mappings. A bare string is
// rejected even though it is iterable; each element validates at $[i] and the
// first failure aborts.
func (s Schema[T]) ValidateList(ctx context.Context, raw any) ([]T, error) {
	val := ValueOf(raw)
	if val.Kind != KindArray {
		return nil, &Issue{
			Code:    CodeInvalidType,
			Path:    Root(),
			Message: i18n.T(CodeInvalidType, map[string]string{"expected": "array", "got": val.Kind.String()}),
			Value:   val.Interface(),
		}
	}
	res := make([]T, 0, len(val.Arr))
	for i := range val.Arr {
		t, err := s.ValidateValueAt(ctx, val.Arr[i], Root().Index(i))
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

// ValidateMap validates a root-level string-keyed mapping of mappings. Values
// validate in ascending key order at $.key; the first failure aborts.
func (s Schema[T]) ValidateMap(ctx context.Context, raw any) (map[string]T, error) {
	val := ValueOf(raw)
	if val.Kind != KindObject {
		return nil, &Issue{
			Code:    CodeInvalidType,
			Path:    Root(),
			Message: i18n.T(CodeInvalidType, map[string]string{"expected": "object", "got": val.Kind.String()}),
			Value:   val.Interface(),
		}
	}
	res := make(map[string]T, len(val.Obj))
	for _, k := range sortedKeys(val.Obj) {
		t, err := s.ValidateValueAt(ctx, val.Obj[k], Root().Field(k))
		if err != nil {
			return nil, err
		}
		res[k] = t
	}
	return res, nil
}

// Validator lifts the schema into a Validator so nested objects are ordinary
// fields; this also makes Schema a Builder usable directly in F.
func (s Schema[T]) Validator() Validator[T] {
	return NewValidator(func(ctx context.Context, val Value, p Path) (T, error) {
		return s.ValidateValueAt(ctx, val, p)
	})
}
