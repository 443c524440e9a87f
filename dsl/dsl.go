package dsl

import (
	coax "github.com/coaxlib/coax"
	"github.com/coaxlib/coax/i18n"
)

// typeIssue reports a wrong-input-shape failure naming the expected kind.
func typeIssue(p coax.Path, expected string, v coax.Value) *coax.Issue {
	return &coax.Issue{
		Code:    coax.CodeInvalidType,
		Path:    p,
		Message: i18n.T(coax.CodeInvalidType, map[string]string{"expected": expected, "got": v.Kind.String()}),
		Value:   v.Interface(),
	}
}
