// Package hcl implements the HCL declaration loader. It is the only
// package that touches HCL syntax; everything downstream consumes the
// format-agnostic model types. Shape validation of the author shorthand
// tuples (goals, overrides, config terms) happens here, at the boundary,
// so malformed input never reaches the resolution path.
package hcl
