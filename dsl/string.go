package dsl

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	coax "github.com/coaxlib/coax"
	"github.com/coaxlib/coax/i18n"
)

type caseMode int

const (
	caseNone caseMode = iota
	caseLower
	caseUpper
)

// StringBuilder exposes chaining options for string validators. Checks apply
// in a fixed order: trim, then case transform, then length, pattern and
// option-set membership against the transformed value.
type StringBuilder struct {
	coerce         bool
	trim           bool
	cmode          caseMode
	hasMin, hasMax bool
	min, max       int
	pattern        *regexp.Regexp
	options        []string
}

// String returns a string builder.
func String() StringBuilder { return StringBuilder{} }

// Coerce makes the validator stringify any non-string input instead of
// rejecting it.
func (b StringBuilder) Coerce() StringBuilder { b.coerce = true; return b }

// Trim strips surrounding whitespace before all other checks.
func (b StringBuilder) Trim() StringBuilder { b.trim = true; return b }

// Lower lowercases the value after trimming.
func (b StringBuilder) Lower() StringBuilder { b.cmode = caseLower; return b }

// Upper uppercases the value after trimming.
func (b StringBuilder) Upper() StringBuilder { b.cmode = caseUpper; return b }

// Min sets the inclusive minimum length in runes.
func (b StringBuilder) Min(n int) StringBuilder { b.hasMin = true; b.min = n; return b }

// Max sets the inclusive maximum length in runes.
func (b StringBuilder) Max(n int) StringBuilder { b.hasMax = true; b.max = n; return b }

// Pattern requires the transformed value to match expr. The expression is a
// construction-time constant; a bad expression panics like regexp.MustCompile.
func (b StringBuilder) Pattern(expr string) StringBuilder {
	b.pattern = regexp.MustCompile(expr)
	return b
}

// OneOf restricts the transformed value to a fixed option set (exact string
// equality).
func (b StringBuilder) OneOf(options ...string) StringBuilder {
	b.options = append([]string(nil), options...)
	return b
}

// Validator builds the validator.
func (b StringBuilder) Validator() coax.Validator[string] {
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (string, error) {
		var s string
		switch {
		case v.Kind == coax.KindString:
			s = v.Str
		case b.coerce:
			s = stringify(v)
		default:
			return "", typeIssue(p, "string", v)
		}
		if b.trim {
			s = strings.TrimSpace(s)
		}
		switch b.cmode {
		case caseLower:
			s = strings.ToLower(s)
		case caseUpper:
			s = strings.ToUpper(s)
		}
		n := utf8.RuneCountInString(s)
		if b.hasMin && n < b.min {
			return "", &coax.Issue{
				Code:    coax.CodeTooShort,
				Path:    p,
				Message: i18n.T(coax.CodeTooShort, map[string]string{"min": strconv.Itoa(b.min)}),
				Value:   s,
			}
		}
		if b.hasMax && n > b.max {
			return "", &coax.Issue{
				Code:    coax.CodeTooLong,
				Path:    p,
				Message: i18n.T(coax.CodeTooLong, map[string]string{"max": strconv.Itoa(b.max)}),
				Value:   s,
			}
		}
		if b.pattern != nil && !b.pattern.MatchString(s) {
			return "", &coax.Issue{
				Code:    coax.CodePattern,
				Path:    p,
				Message: i18n.T(coax.CodePattern, map[string]string{"pattern": b.pattern.String()}),
				Value:   s,
			}
		}
		if len(b.options) > 0 && !containsString(b.options, s) {
			return "", &coax.Issue{
				Code:    coax.CodeInvalidEnum,
				Path:    p,
				Message: i18n.T(coax.CodeInvalidEnum, map[string]string{"options": strings.Join(b.options, ", ")}),
				Value:   s,
			}
		}
		return s, nil
	})
}

// Optional builds the validator lifted to a nullable *string.
func (b StringBuilder) Optional() coax.Validator[*string] { return b.Validator().Optional() }

// Default builds the validator with a static fallback.
func (b StringBuilder) Default(s string) coax.Validator[string] { return b.Validator().Default(s) }

// List builds a validator over sequences of strings.
func (b StringBuilder) List(fb ...[]string) coax.Validator[[]string] {
	return b.Validator().List(fb...)
}

func stringify(v coax.Value) string {
	switch v.Kind {
	case coax.KindNumber:
		return v.Num.String()
	case coax.KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return fmt.Sprint(v.Interface())
	}
}

func containsString(opts []string, s string) bool {
	for _, o := range opts {
		if o == s {
			return true
		}
	}
	return false
}
