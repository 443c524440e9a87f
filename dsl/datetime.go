package dsl

import (
	"context"
	"math"
	"strconv"
	"time"

	coax "github.com/coaxlib/coax"
	"github.com/coaxlib/coax/i18n"
)

// TimeBuilder exposes chaining options for timestamp validators. The built
// validator accepts native time.Time values, numbers as seconds since the
// Unix epoch (converted at microsecond precision), and strings — tried first
// as RFC3339, then re-interpreted as a numeric epoch string. Each string and
// number pathway can be toggled off independently.
type TimeBuilder struct {
	noString       bool
	noNumber       bool
	hasMin, hasMax bool
	min, max       time.Time
}

// Time returns a timestamp builder with both input pathways enabled.
func Time() TimeBuilder { return TimeBuilder{} }

// AllowString toggles parsing of RFC3339 strings.
func (b TimeBuilder) AllowString(v bool) TimeBuilder { b.noString = !v; return b }

// AllowNumber toggles numeric seconds-since-epoch input (including numeric
// strings).
func (b TimeBuilder) AllowNumber(v bool) TimeBuilder { b.noNumber = !v; return b }

// Min sets the inclusive earliest accepted instant.
func (b TimeBuilder) Min(t time.Time) TimeBuilder { b.hasMin = true; b.min = t; return b }

// Max sets the inclusive latest accepted instant.
func (b TimeBuilder) Max(t time.Time) TimeBuilder { b.hasMax = true; b.max = t; return b }

// Validator builds the validator.
func (b TimeBuilder) Validator() coax.Validator[time.Time] {
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (time.Time, error) {
		var t time.Time
		switch v.Kind {
		case coax.KindTime:
			t = v.Time
		case coax.KindNumber:
			if b.noNumber {
				return time.Time{}, typeIssue(p, "timestamp", v)
			}
			f, err := v.Num.Float64()
			if err != nil {
				return time.Time{}, typeIssue(p, "timestamp", v)
			}
			t = fromEpochSeconds(f)
		case coax.KindString:
			tt, ok := b.parseString(v.Str)
			if !ok {
				return time.Time{}, &coax.Issue{
					Code:    coax.CodeInvalidFormat,
					Path:    p,
					Message: i18n.T(coax.CodeInvalidFormat, map[string]string{"detail": "malformed timestamp"}),
					Value:   v.Str,
				}
			}
			t = tt
		default:
			return time.Time{}, typeIssue(p, "timestamp", v)
		}
		if b.hasMin && t.Before(b.min) {
			return time.Time{}, &coax.Issue{
				Code:    coax.CodeTooSmall,
				Path:    p,
				Message: i18n.T(coax.CodeTooSmall, map[string]string{"min": b.min.Format(time.RFC3339)}),
				Value:   v.Interface(),
			}
		}
		if b.hasMax && t.After(b.max) {
			return time.Time{}, &coax.Issue{
				Code:    coax.CodeTooBig,
				Path:    p,
				Message: i18n.T(coax.CodeTooBig, map[string]string{"max": b.max.Format(time.RFC3339)}),
				Value:   v.Interface(),
			}
		}
		return t, nil
	})
}

// Optional builds the validator lifted to a nullable *time.Time.
func (b TimeBuilder) Optional() coax.Validator[*time.Time] { return b.Validator().Optional() }

// Default builds the validator with a static fallback.
func (b TimeBuilder) Default(t time.Time) coax.Validator[time.Time] {
	return b.Validator().Default(t)
}

func (b TimeBuilder) parseString(s string) (time.Time, bool) {
	if !b.noString {
		if t, err := parseRFC3339(s); err == nil {
			return t, true
		}
	}
	if !b.noNumber {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return fromEpochSeconds(f), true
		}
	}
	return time.Time{}, false
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional).
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func fromEpochSeconds(f float64) time.Time {
	return time.UnixMicro(int64(math.Round(f * 1e6))).UTC()
}
