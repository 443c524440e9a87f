// Package dsl provides the leaf validation strategies as chainable builders:
// Int, Float, Bool, String, Time, Enum, Pattern, Any and Custom. Every
// builder implements coax.Builder, so it can be handed to coax.F directly:
//
//	schema := coax.NewSchema(newUser,
//		coax.F("name", dsl.String().Trim().Min(1)),
//		coax.F("age", dsl.Int().Min(0).Max(150)),
//	)
//
// Builders are immutable values; each chaining call returns a copy.
package dsl
