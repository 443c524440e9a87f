package coax_test

import (
	"testing"

	coax "github.com/coaxlib/coax"
)

func TestPathRendering(t *testing.T) {
	if got := coax.Root().String(); got != "$" {
		t.Fatalf("root: got %q", got)
	}
	p := coax.Root().Field("user").Field("address").Index(0).Field("zip")
	if got := p.String(); got != "$.user.address[0].zip" {
		t.Fatalf("nested: got %q", got)
	}
}

func TestPathQuotesHostileNames(t *testing.T) {
	cases := map[string]string{
		"odd name": "$.'odd name'",
		"":         "$.''",
		"a.b":      "$.'a.b'",
		"x[0]":     "$.'x[0]'",
		"it's":     "$.'it\\'s'",
		"plain":    "$.plain",
	}
	for name, want := range cases {
		if got := coax.Root().Field(name).String(); got != want {
			t.Fatalf("field %q: got %q, want %q", name, got, want)
		}
	}
}

func TestPathImmutableOnSharedPrefix(t *testing.T) {
	base := coax.Root().Field("user")
	a := base.Field("name")
	b := base.Index(3)
	if got := base.String(); got != "$.user" {
		t.Fatalf("base mutated: %q", got)
	}
	if got := a.String(); got != "$.user.name" {
		t.Fatalf("branch a: %q", got)
	}
	if got := b.String(); got != "$.user[3]" {
		t.Fatalf("branch b: %q", got)
	}
}
