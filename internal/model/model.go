package model

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// PackageInfo describes one discovered application package in the world.
// Records are produced by the discovery collaborator already validated:
// name and version are set, and the dependency name lists are complete.
// PackageInfo values are never mutated after loading.
type PackageInfo struct {
	Name    string
	Version string

	// Applications lists the names of direct runtime dependencies, in
	// the order the package declares them.
	Applications []string

	// IncludedApplications lists applications pulled in for loading
	// only, not started as part of this package's lifecycle.
	IncludedApplications []string
}

// Goal is one requested top-level application. An empty Version means
// any version of the name satisfies the goal.
type Goal struct {
	Name    string
	Version string
}

// Pinned reports whether the goal requires an exact version.
func (g Goal) Pinned() bool {
	return g.Version != ""
}

// ConfigTerm is a single release-scoped configuration term. Terms are
// folded into the build state strictly in declared order; later terms
// may override the effects of earlier ones.
type ConfigTerm struct {
	Key   string
	Value cty.Value
}

// Document is the unified result of loading declaration files: every
// release declared plus every world entry encountered, in file order.
type Document struct {
	Releases []*ReleaseDraft
	World    []PackageInfo
}

// Loader is the interface for a format-specific declaration loader.
type Loader interface {
	// Load reads declarations from the given paths (files or
	// directories) and translates them into the format-agnostic
	// document.
	Load(ctx context.Context, paths ...string) (*Document, error)
}
