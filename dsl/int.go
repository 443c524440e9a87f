package dsl

import (
	"context"
	"math"
	"strconv"

	coax "github.com/coaxlib/coax"
	"github.com/coaxlib/coax/i18n"
)

// IntBuilder exposes chaining options for integer validators.
type IntBuilder struct {
	hasMin, hasMax bool
	min, max       int64
}

// Int returns an integer builder. The built validator accepts native
// integers, floats (floored toward negative infinity) and strings parseable
// as an integer or as a float-then-floored.
func Int() IntBuilder { return IntBuilder{} }

// Min sets the inclusive lower bound.
func (b IntBuilder) Min(n int64) IntBuilder { b.hasMin = true; b.min = n; return b }

// Max sets the inclusive upper bound.
func (b IntBuilder) Max(n int64) IntBuilder { b.hasMax = true; b.max = n; return b }

// Validator builds the validator.
func (b IntBuilder) Validator() coax.Validator[int64] {
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (int64, error) {
		n, err := intFromValue(v, p)
		if err != nil {
			return 0, err
		}
		if b.hasMin && n < b.min {
			return 0, &coax.Issue{
				Code:    coax.CodeTooSmall,
				Path:    p,
				Message: i18n.T(coax.CodeTooSmall, map[string]string{"min": strconv.FormatInt(b.min, 10)}),
				Value:   v.Interface(),
			}
		}
		if b.hasMax && n > b.max {
			return 0, &coax.Issue{
				Code:    coax.CodeTooBig,
				Path:    p,
				Message: i18n.T(coax.CodeTooBig, map[string]string{"max": strconv.FormatInt(b.max, 10)}),
				Value:   v.Interface(),
			}
		}
		return n, nil
	})
}

// Optional builds the validator lifted to a nullable *int64.
func (b IntBuilder) Optional() coax.Validator[*int64] { return b.Validator().Optional() }

// Default builds the validator with a static fallback.
func (b IntBuilder) Default(n int64) coax.Validator[int64] { return b.Validator().Default(n) }

// List builds a validator over sequences of integers.
func (b IntBuilder) List(fb ...[]int64) coax.Validator[[]int64] { return b.Validator().List(fb...) }

func intFromValue(v coax.Value, p coax.Path) (int64, error) {
	switch v.Kind {
	case coax.KindNumber:
		if n, err := v.Num.Int64(); err == nil {
			return n, nil
		}
		if f, err := v.Num.Float64(); err == nil {
			return int64(math.Floor(f)), nil
		}
		return 0, typeIssue(p, "integer", v)
	case coax.KindString:
		if n, err := strconv.ParseInt(v.Str, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(v.Str, 64); err == nil {
			return int64(math.Floor(f)), nil
		}
		return 0, typeIssue(p, "integer", v)
	default:
		return 0, typeIssue(p, "integer", v)
	}
}
