// Package schema declares the legal shape of EFA query parameters and responses.
//
// Two kinds of schema are provided:
//   - ParamSchema: the parameters a request may carry, with required keys, defaults,
//     enumerations, ranges and date formats. ParamSchema.Validate checks an ordered
//     Params set and returns a copy extended with defaults.
//   - Shape: a response shape built with the goskema dsl (objects, arrays, required
//     members, unknown members stripped). ValidateResponse parses a decoded document
//     against it and maps goskema issues to Issues.
//
// Leaf checks (oneof, gte/lte, datetime, boolean) are expressed as go-playground/validator
// tags and evaluated with Validate.Var, so the constraint vocabulary matches the struct tags
// used for configuration. On response shapes they run as goskema refinements built by Leaves.
//
// Both validators are all-or-nothing: on failure they return Issues describing each
// violation and leave their input untouched.
package schema
