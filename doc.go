package coax

// Package coax converts loosely-typed decoded input trees (JSON, YAML) into
// strongly-typed domain values with path-qualified diagnostics.
//
// The core building block is Validator[T], an immutable description of how a
// single raw value becomes a T. Validators compose: Optional lifts a
// Validator[T] to a nullable Validator[*T], List and Map distribute it over
// sequences and string-keyed mappings. Field binds a validator to a named
// mapping entry with alias fallbacks, and Schema[T] assembles an ordered set
// of fields into one constructed domain value. A Schema is itself liftable to
// a Validator, which is how nesting composes to arbitrary depth.
//
// Design policy:
// - Keep the engine (Path, Value, Validator, Field, Schema, Issue) in the root package.
// - Place leaf strategies and builder sugar under dsl/, input decoding under source/.
// - Prefer black-box testing against public APIs.
//
// Validation is fail-fast: the first failure anywhere aborts the call and is
// reported as a single *Issue carrying the exact location, rendered in
// $.user.address[0].zip notation.
//
// Typical usage:
//
//	s := buildSchema()
//	tree, err := source.JSON(data)
//	v, err := s.Validate(ctx, tree)
