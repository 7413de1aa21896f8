// Package registry wraps the loaded world — the universe of discovered
// application packages — behind the lookup operations the resolver
// needs. The registry never discovers packages itself; it trusts the
// records the loader hands it.
package registry

import (
	"github.com/Masterminds/semver/v3"

	"github.com/relforge/relforge/internal/model"
)

// Registry indexes the world by application name while preserving the
// original entry order.
type Registry struct {
	world  []model.PackageInfo
	byName map[string][]model.PackageInfo

	includedNames map[string]struct{}
}

// New builds a registry over the given world. The slice is referenced,
// not copied; world records are immutable by contract.
func New(world []model.PackageInfo) *Registry {
	r := &Registry{
		world:  world,
		byName: make(map[string][]model.PackageInfo),
	}
	for _, pkg := range world {
		r.byName[pkg.Name] = append(r.byName[pkg.Name], pkg)
	}
	return r
}

// Len returns the number of world entries.
func (r *Registry) Len() int {
	return len(r.world)
}

// Find locates a package by name alone. A world normally carries at most
// one version of a name; when several are present the highest version
// wins, ordered by semver where the version strings parse and lexically
// otherwise (parseable versions sort above unparseable ones).
func (r *Registry) Find(name string) (model.PackageInfo, bool) {
	pkgs := r.byName[name]
	switch len(pkgs) {
	case 0:
		return model.PackageInfo{}, false
	case 1:
		return pkgs[0], true
	}

	best := pkgs[0]
	for _, pkg := range pkgs[1:] {
		if versionLess(best.Version, pkg.Version) {
			best = pkg
		}
	}
	return best, true
}

// FindVersion locates a package by exact name and version match.
func (r *Registry) FindVersion(name, version string) (model.PackageInfo, bool) {
	for _, pkg := range r.byName[name] {
		if pkg.Version == version {
			return pkg, true
		}
	}
	return model.PackageInfo{}, false
}

// IncludedNames returns the union, over all world entries, of their
// included_applications lists. The set drives the load-vs-permanent
// default during spec normalization and is computed once.
func (r *Registry) IncludedNames() map[string]struct{} {
	if r.includedNames != nil {
		return r.includedNames
	}
	names := make(map[string]struct{})
	for _, pkg := range r.world {
		for _, name := range pkg.IncludedApplications {
			names[name] = struct{}{}
		}
	}
	r.includedNames = names
	return names
}

// versionLess orders two version strings: semver comparison when both
// parse, parseable above unparseable, plain string order otherwise.
func versionLess(a, b string) bool {
	av, aErr := semver.NewVersion(a)
	bv, bErr := semver.NewVersion(b)
	switch {
	case aErr == nil && bErr == nil:
		return av.LessThan(bv)
	case aErr == nil:
		return false
	case bErr == nil:
		return true
	default:
		return a < b
	}
}
