// Package resolve implements the release resolution core: the
// dependency-closure walk over the world, exclusion filtering, spec
// normalization against author overrides, runtime realization, and the
// orchestrator that sequences them into one release-resolution
// operation.
//
// Resolution is a pure, synchronous computation over immutable inputs
// plus one ordered mutation pass over the build state. Failures are
// immediate and terminal for the attempt; there is no retry and no
// partial result.
package resolve
