package dsl

import (
	"context"
	"strings"

	coax "github.com/coaxlib/coax"
	"github.com/coaxlib/coax/i18n"
)

// EnumBuilder accumulates a fixed name-to-value table in declaration order.
type EnumBuilder[T any] struct {
	keys            []string
	table           map[string]T
	caseInsensitive bool
}

// Enum returns an empty enumeration builder.
func Enum[T any]() EnumBuilder[T] { return EnumBuilder[T]{} }

// Value adds one name-to-value entry. Declaration order is preserved for
// error listings.
func (b EnumBuilder[T]) Value(name string, v T) EnumBuilder[T] {
	keys := make([]string, len(b.keys), len(b.keys)+1)
	copy(keys, b.keys)
	table := make(map[string]T, len(b.table)+1)
	for k, tv := range b.table {
		table[k] = tv
	}
	table[name] = v
	b.keys = append(keys, name)
	b.table = table
	return b
}

// CaseInsensitive makes lookups ignore case.
func (b EnumBuilder[T]) CaseInsensitive() EnumBuilder[T] { b.caseInsensitive = true; return b }

// Validator builds the validator. With CaseInsensitive set the table is
// pre-normalized to lowercase keys and lookups lowercase the input.
func (b EnumBuilder[T]) Validator() coax.Validator[T] {
	table := b.table
	if b.caseInsensitive {
		table = make(map[string]T, len(b.table))
		for _, k := range b.keys {
			table[strings.ToLower(k)] = b.table[k]
		}
	}
	keys := append([]string(nil), b.keys...)
	insensitive := b.caseInsensitive
	return coax.NewValidator(func(ctx context.Context, v coax.Value, p coax.Path) (T, error) {
		var zero T
		if v.Kind != coax.KindString {
			return zero, typeIssue(p, "string", v)
		}
		key := v.Str
		if insensitive {
			key = strings.ToLower(key)
		}
		if out, ok := table[key]; ok {
			return out, nil
		}
		return zero, &coax.Issue{
			Code:    coax.CodeInvalidEnum,
			Path:    p,
			Message: i18n.T(coax.CodeInvalidEnum, map[string]string{"options": strings.Join(keys, ", ")}),
			Value:   v.Str,
		}
	})
}

// Optional builds the validator lifted to a nullable *T.
func (b EnumBuilder[T]) Optional() coax.Validator[*T] { return b.Validator().Optional() }

// Default builds the validator with a static fallback.
func (b EnumBuilder[T]) Default(v T) coax.Validator[T] { return b.Validator().Default(v) }
