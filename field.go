package coax

import "context"

// Field binds a Validator to one named mapping entry. Lookup tries the
// primary name first, then each alias in declared order; error paths always
// use the primary name regardless of which alias matched.
type Field[T any] struct {
	name      string
	aliases   []string
	validator Validator[T]
}

// NewField pairs a name (plus optional aliases) with a validator or builder.
func NewField[T any](name string, b Builder[T], aliases ...string) Field[T] {
	return Field[T]{
		name:      name,
		aliases:   append([]string(nil), aliases...),
		validator: b.Validator(),
	}
}

// Name returns the primary lookup name.
func (f Field[T]) Name() string { return f.name }

// Aliases returns the alternative lookup names in declared order.
func (f Field[T]) Aliases() []string { return append([]string(nil), f.aliases...) }

// Extract locates the entry in the mapping. A key holding an explicit null is
// present; only a missing key is absent.
func (f Field[T]) Extract(obj map[string]Value) Input {
	if v, ok := obj[f.name]; ok {
		return Input{Value: v, Present: true}
	}
	for _, a := range f.aliases {
		if v, ok := obj[a]; ok {
			return Input{Value: v, Present: true}
		}
	}
	return Input{}
}

// Resolve extracts and validates the entry, descending the path through the
// primary name.
func (f Field[T]) Resolve(ctx context.Context, obj map[string]Value, p Path) (T, error) {
	out, err := f.validator.ValidateAt(ctx, f.Extract(obj), p.Field(f.name))
	if err != nil {
		// Tag the innermost field only; issues from nested fields keep theirs.
		if is, ok := AsIssue(err); ok && is.Field == "" {
			is.Field = f.name
		}
		var zero T
		return zero, err
	}
	return out, nil
}

// AnyField erases a Field's value type so a Schema can hold heterogeneous
// fields behind one resolution closure.
type AnyField struct {
	name    string
	resolve func(ctx context.Context, obj map[string]Value, p Path) (any, error)
}

// F builds a type-erased field from a name, a validator (or dsl builder, or a
// nested Schema) and optional aliases.
func F[T any](name string, b Builder[T], aliases ...string) AnyField {
	f := NewField(name, b, aliases...)
	return AnyField{
		name: name,
		resolve: func(ctx context.Context, obj map[string]Value, p Path) (any, error) {
			return f.Resolve(ctx, obj, p)
		},
	}
}

// Name returns the primary lookup name.
func (af AnyField) Name() string { return af.name }
