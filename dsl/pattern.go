package dsl

import (
	"context"
	"regexp"
	"strings"

	coax "github.com/coaxlib/coax"
	"github.com/coaxlib/coax/i18n"
)

// PatternBuilder exposes chaining options for validators that compile their
// input strings into regular expressions. Go's regexp engine is always
// Unicode-aware; the toggles map to the (?i) and (?m) flags.
type PatternBuilder struct {
	caseInsensitive bool
	multiline       bool
	anchored        bool
}

// Pattern returns a pattern builder.
func Pattern() PatternBuilder { return PatternBuilder{} }

// CaseInsensitive compiles with the (?i) flag.
func (b PatternBuilder) CaseInsensitive() PatternBuilder { b.caseInsensitive = true; return b }

// Multiline compiles with the (?m) flag.
func (b PatternBuilder) Multiline() PatternBuilder { b.multiline = true; return b }

// Anchored prepends "^" and appends "$" to the expression unless already
// present, so re-anchoring never duplicates anchors.
func (b PatternBuilder) Anchored() PatternBuilder { b.anchored = true; return b }

// Validator builds the validator. A string that fails to compile yields an
// invalid_format Issue, never a panic.
func (b PatternBuilder) Validator() coax.Validator[*regexp.Regexp] {
	var flags string
	if b.caseInsensitive && b.multiline {
		flags = "(?im)"
	} else if b.caseInsensitive {
		flags = "(?i)"
	} else if b.multiline {
		flags = "(?m)"
	}
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (*regexp.Regexp, error) {
		if v.Kind != coax.KindString {
			return nil, typeIssue(p, "string", v)
		}
		expr := v.Str
		if b.anchored {
			expr = anchorExpr(expr)
		}
		re, err := regexp.Compile(flags + expr)
		if err != nil {
			return nil, &coax.Issue{
				Code:    coax.CodeInvalidFormat,
				Path:    p,
				Message: i18n.T(coax.CodeInvalidFormat, map[string]string{"detail": err.Error()}),
				Value:   v.Str,
				Cause:   err,
			}
		}
		return re, nil
	})
}

// Optional builds the validator lifted to a nullable **regexp.Regexp.
func (b PatternBuilder) Optional() coax.Validator[**regexp.Regexp] { return b.Validator().Optional() }

func anchorExpr(expr string) string {
	if !strings.HasPrefix(expr, "^") {
		expr = "^" + expr
	}
	if !strings.HasSuffix(expr, "$") {
		expr += "$"
	}
	return expr
}
