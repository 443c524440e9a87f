package coax

import (
	"context"

	"github.com/coaxlib/coax/i18n"
)

// ConvertFunc turns a present, non-null Value into a T or fails. The Path
// locates the value for diagnostics; conversion functions thread it into any
// Issue they produce and descend it when they recurse.
type ConvertFunc[T any] func(ctx context.Context, v Value, p Path) (T, error)

type fallbackKind int

const (
	fallbackNone fallbackKind = iota
	fallbackStatic
	fallbackBuilder
)

// fallback is a tagged variant {none, static, builder}; the tag makes the
// static-value/builder mutual exclusivity a structural invariant.
type fallback[T any] struct {
	kind  fallbackKind
	value T
	build func() T
}

func (fb fallback[T]) apply() (T, bool) {
	switch fb.kind {
	case fallbackStatic:
		return fb.value, true
	case fallbackBuilder:
		// Invoked fresh per call so mutable defaults are never shared.
		return fb.build(), true
	default:
		var zero T
		return zero, false
	}
}

// Validator is an immutable description of how one raw value becomes a T:
// a conversion function plus fallback policy and nullability. It holds no
// mutable state and is safe to reuse across calls and goroutines.
type Validator[T any] struct {
	convert  ConvertFunc[T]
	fb       fallback[T]
	nullable bool
}

// NewValidator wraps a conversion function as a required, non-nullable
// validator with no fallback.
func NewValidator[T any](fn ConvertFunc[T]) Validator[T] {
	return Validator[T]{convert: fn}
}

// Builder is anything that can produce a Validator[T]. The dsl builders
// implement it so they drop straight into F without a terminal build call;
// Validator implements it trivially.
type Builder[T any] interface {
	Validator() Validator[T]
}

// Validator returns the validator itself, making Validator a Builder.
func (v Validator[T]) Validator() Validator[T] { return v }

// Default returns a copy carrying a static fallback for absent input,
// replacing any previously set fallback function.
func (v Validator[T]) Default(d T) Validator[T] {
	v.fb = fallback[T]{kind: fallbackStatic, value: d}
	return v
}

// DefaultFunc returns a copy carrying a fallback-computing function, replacing
// any previously set static fallback. The function runs once per call that
// needs the fallback.
func (v Validator[T]) DefaultFunc(f func() T) Validator[T] {
	v.fb = fallback[T]{kind: fallbackBuilder, build: f}
	return v
}

// Validate validates a possibly-absent raw value at the document root.
func (v Validator[T]) Validate(ctx context.Context, in Input) (T, error) {
	return v.ValidateAt(ctx, in, Root())
}

// ValidateAt resolves the input against the precedence chain:
//
//	absent        -> fallback, else null (when nullable), else required failure
//	present null  -> null (when nullable), else fallback, else required failure
//	present value -> conversion function, foreign failures rewrapped at p
func (v Validator[T]) ValidateAt(ctx context.Context, in Input, p Path) (T, error) {
	var zero T
	if !in.Present {
		if out, ok := v.fb.apply(); ok {
			return out, nil
		}
		if v.nullable {
			return zero, nil
		}
		return zero, &Issue{Code: CodeRequired, Path: p, Message: i18n.T(CodeRequired, nil)}
	}
	if in.Value.Kind == KindNull {
		if v.nullable {
			return zero, nil
		}
		if out, ok := v.fb.apply(); ok {
			return out, nil
		}
		return zero, &Issue{Code: CodeRequired, Path: p, Message: i18n.T(CodeRequired, nil)}
	}
	return v.convertAt(ctx, in.Value, p)
}

// convertAt runs the conversion function and normalizes recognized foreign
// failures into constraint Issues at p. An *Issue coming back already carries
// the deepest path and passes through untouched; unrecognized errors
// propagate as-is.
func (v Validator[T]) convertAt(ctx context.Context, val Value, p Path) (T, error) {
	out, err := v.convert(ctx, val, p)
	if err == nil {
		return out, nil
	}
	var zero T
	if _, ok := AsIssue(err); ok {
		return zero, err
	}
	if recognizedForeign(err) {
		return zero, &Issue{Code: CodeConstraint, Path: p, Message: err.Error(), Value: val.Interface(), Cause: err}
	}
	return zero, err
}

// Optional lifts the validator to a nullable *T. Absent input resolves, in
// order: the wrapped validator's own fallback (lifted), then nil. Present
// null short-circuits to nil before the conversion function ever runs.
// Present non-null values behave exactly as in the wrapped validator.
func (v Validator[T]) Optional() Validator[*T] {
	return Validator[*T]{
		nullable: true,
		fb:       liftFallback(v.fb),
		convert: func(ctx context.Context, val Value, p Path) (*T, error) {
			if val.Kind == KindNull {
				return nil, nil
			}
			out, err := v.convertAt(ctx, val, p)
			if err != nil {
				return nil, err
			}
			return &out, nil
		},
	}
}

func liftFallback[T any](fb fallback[T]) fallback[*T] {
	switch fb.kind {
	case fallbackStatic:
		d := fb.value
		return fallback[*T]{kind: fallbackStatic, value: &d}
	case fallbackBuilder:
		build := fb.build
		return fallback[*T]{kind: fallbackBuilder, build: func() *T {
			d := build()
			return &d
		}}
	default:
		return fallback[*T]{}
	}
}

// List derives a validator over ordered sequences of the element type. The
// optional fallback applies when the whole entry is absent. Elements validate
// in sequence order at the indexed path; the first failure aborts with no
// partial result. An empty sequence coerces into an empty list of any element
// type.
func (v Validator[T]) List(fb ...[]T) Validator[[]T] {
	out := Validator[[]T]{
		convert: func(ctx context.Context, val Value, p Path) ([]T, error) {
			if val.Kind != KindArray {
				return nil, &Issue{
					Code:    CodeInvalidType,
					Path:    p,
					Message: i18n.T(CodeInvalidType, map[string]string{"expected": "array", "got": val.Kind.String()}),
					Value:   val.Interface(),
				}
			}
			res := make([]T, 0, len(val.Arr))
			for i := range val.Arr {
				ev, err := v.convertAt(ctx, val.Arr[i], p.Index(i))
				if err != nil {
					return nil, err
				}
				res = append(res, ev)
			}
			return res, nil
		},
	}
	if len(fb) > 0 {
		out.fb = fallback[[]T]{kind: fallbackStatic, value: fb[len(fb)-1]}
	}
	return out
}

// Map derives a validator over string-keyed mappings of the element type.
// Values validate in ascending key order so failure attribution is
// deterministic; the first failure aborts.
func (v Validator[T]) Map(fb ...map[string]T) Validator[map[string]T] {
	out := Validator[map[string]T]{
		convert: func(ctx context.Context, val Value, p Path) (map[string]T, error) {
			if val.Kind != KindObject {
				return nil, &Issue{
					Code:    CodeInvalidType,
					Path:    p,
					Message: i18n.T(CodeInvalidType, map[string]string{"expected": "object", "got": val.Kind.String()}),
					Value:   val.Interface(),
				}
			}
			res := make(map[string]T, len(val.Obj))
			for _, k := range sortedKeys(val.Obj) {
				ev, err := v.convertAt(ctx, val.Obj[k], p.Field(k))
				if err != nil {
					return nil, err
				}
				res[k] = ev
			}
			return res, nil
		},
	}
	if len(fb) > 0 {
		out.fb = fallback[map[string]T]{kind: fallbackStatic, value: fb[len(fb)-1]}
	}
	return out
}
