// Package model holds the format-agnostic domain model for release
// resolution: the world of discovered application packages, release
// declarations, per-application overrides, resolved application specs,
// and the error taxonomy of the resolution pipeline.
//
// Nothing in this package knows about HCL or any other configuration
// format; boundary parsers translate into these types.
package model
