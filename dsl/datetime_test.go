package dsl_test

import (
	"context"
	"testing"
	"time"

	coax "github.com/coaxlib/coax"
	"github.com/coaxlib/coax/dsl"
)

func TestTimeAcceptsNativeTime(t *testing.T) {
	want := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	got, err := dsl.Time().Validator().Validate(context.Background(), coax.Present(want))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v", got)
	}
}

func TestTimeFromEpochSeconds(t *testing.T) {
	v := dsl.Time().Validator()
	ctx := context.Background()
	got, err := v.Validate(ctx, coax.Present(1714564800))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	// Fractional seconds survive at microsecond precision.
	got, err = v.Validate(ctx, coax.Present(1714564800.25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want.Add(250 * time.Millisecond)) {
		t.Fatalf("fractional: got %v", got)
	}
}

func TestTimeFromStrings(t *testing.T) {
	v := dsl.Time().Validator()
	ctx := context.Background()
	got, err := v.Validate(ctx, coax.Present("2024-05-01T12:00:00Z"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v", got)
	}
	// Nanosecond fractions and offsets also parse.
	if _, err := v.Validate(ctx, coax.Present("2024-05-01T12:00:00.123456789+09:00")); err != nil {
		t.Fatalf("nano: %v", err)
	}
	// A numeric string falls back to the epoch pathway.
	got, err = v.Validate(ctx, coax.Present("1714564800"))
	if err != nil {
		t.Fatalf("numeric string: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("numeric string: got %v", got)
	}
}

func TestTimeMalformedString(t *testing.T) {
	_, err := dsl.Time().Validator().Validate(context.Background(), coax.Present("yesterday"))
	if is, ok := coax.AsIssue(err); !ok || is.Code != coax.CodeInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestTimePathwayToggles(t *testing.T) {
	ctx := context.Background()
	_, err := dsl.Time().AllowNumber(false).Validator().Validate(ctx, coax.Present(1714564800))
	if is, ok := coax.AsIssue(err); !ok || is.Code != coax.CodeInvalidType {
		t.Fatalf("numbers off: %v", err)
	}
	// With numbers off a numeric string no longer falls back.
	_, err = dsl.Time().AllowNumber(false).Validator().Validate(ctx, coax.Present("1714564800"))
	if is, ok := coax.AsIssue(err); !ok || is.Code != coax.CodeInvalidFormat {
		t.Fatalf("numeric string with numbers off: %v", err)
	}
	_, err = dsl.Time().AllowString(false).Validator().Validate(ctx, coax.Present("2024-05-01T12:00:00Z"))
	if is, ok := coax.AsIssue(err); !ok || is.Code != coax.CodeInvalidFormat {
		t.Fatalf("strings off: %v", err)
	}
	// Native time.Time always passes.
	if _, err := dsl.Time().AllowString(false).AllowNumber(false).Validator().Validate(ctx, coax.Present(time.Now())); err != nil {
		t.Fatalf("native: %v", err)
	}
}

func TestTimeRange(t *testing.T) {
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	v := dsl.Time().Min(min).Max(max).Validator()
	ctx := context.Background()
	if _, err := v.Validate(ctx, coax.Present("2024-06-01T00:00:00Z")); err != nil {
		t.Fatalf("in range: %v", err)
	}
	_, err := v.Validate(ctx, coax.Present("2023-06-01T00:00:00Z"))
	if is, ok := coax.AsIssue(err); !ok || is.Code != coax.CodeTooSmall {
		t.Fatalf("before min: %v", err)
	}
	_, err = v.Validate(ctx, coax.Present("2025-06-01T00:00:00Z"))
	if is, ok := coax.AsIssue(err); !ok || is.Code != coax.CodeTooBig {
		t.Fatalf("after max: %v", err)
	}
}
