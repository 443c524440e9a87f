package coax_test

import (
	"context"
	"testing"

	coax "github.com/coaxlib/coax"
)

func objOf(t *testing.T, raw map[string]any) map[string]coax.Value {
	t.Helper()
	v := coax.ValueOf(raw)
	if v.Kind != coax.KindObject {
		t.Fatalf("not an object: %v", v.Kind)
	}
	return v.Obj
}

func TestFieldPrimaryBeatsAliases(t *testing.T) {
	f := coax.NewField("user_id", upper(), "userId", "uid")
	obj := objOf(t, map[string]any{"user_id": "a", "userId": "b", "uid": "c"})
	got, err := f.Resolve(context.Background(), obj, coax.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A" {
		t.Fatalf("got %q", got)
	}
}

func TestFieldAliasOrder(t *testing.T) {
	f := coax.NewField("user_id", upper(), "userId", "uid")
	obj := objOf(t, map[string]any{"uid": "c", "userId": "b"})
	got, err := f.Resolve(context.Background(), obj, coax.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "B" {
		t.Fatalf("got %q", got)
	}
}

func TestFieldErrorPathUsesPrimaryName(t *testing.T) {
	f := coax.NewField("user_id", upper(), "userId")
	obj := objOf(t, map[string]any{"userId": 42})
	_, err := f.Resolve(context.Background(), obj, coax.Root())
	is, ok := coax.AsIssue(err)
	if !ok {
		t.Fatalf("expected issue, got %v", err)
	}
	if is.Path.String() != "$.user_id" {
		t.Fatalf("path: %q", is.Path)
	}
	if is.Field != "user_id" {
		t.Fatalf("field: %q", is.Field)
	}
}

func TestFieldPresentNullIsPresent(t *testing.T) {
	// An explicit null key is present: a nullable validator yields nil rather
	// than its fallback, while a missing key takes the fallback.
	f := coax.NewField("nick", upper().Default("anon").Optional())
	ctx := context.Background()

	got, err := f.Resolve(ctx, objOf(t, map[string]any{"nick": nil}), coax.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("explicit null: got %v", *got)
	}

	got, err = f.Resolve(ctx, objOf(t, map[string]any{"other": "x"}), coax.Root())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "anon" {
		t.Fatalf("absent: got %v", got)
	}
}

func TestFieldExtract(t *testing.T) {
	f := coax.NewField("a", upper(), "b")
	if in := f.Extract(objOf(t, map[string]any{"c": 1})); in.Present {
		t.Fatalf("absent key extracted as present")
	}
	in := f.Extract(objOf(t, map[string]any{"b": nil}))
	if !in.Present || in.Value.Kind != coax.KindNull {
		t.Fatalf("alias null: %#v", in)
	}
}
