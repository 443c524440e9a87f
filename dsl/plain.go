package dsl

import (
	"context"

	coax "github.com/coaxlib/coax"
)

// Bool returns a checked pass-through validator for booleans.
func Bool() coax.Validator[bool] {
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (bool, error) {
		if v.Kind != coax.KindBool {
			return false, typeIssue(p, "boolean", v)
		}
		return v.Bool, nil
	})
}

// Float returns a checked pass-through validator for numbers as float64.
func Float() coax.Validator[float64] {
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (float64, error) {
		if v.Kind != coax.KindNumber {
			return 0, typeIssue(p, "number", v)
		}
		f, err := v.Num.Float64()
		if err != nil {
			return 0, typeIssue(p, "number", v)
		}
		return f, nil
	})
}

// Any returns a pass-through validator that accepts any present value with no
// conversion.
func Any() coax.Validator[any] {
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (any, error) {
		return v.Interface(), nil
	})
}

// Custom wraps a fully user-supplied conversion function. Errors wrapping
// coax.ErrInvalidArgument, coax.ErrMalformedInput or coax.ErrTypeMismatch
// surface as constraint Issues at the call path; any other error propagates
// untouched.
func Custom[T any](fn coax.ConvertFunc[T]) coax.Validator[T] {
	return coax.NewValidator(fn)
}
