package registry

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/relforge/relforge/internal/ctxlog"
)

// Validate checks the integrity of the loaded world. Exact duplicate
// (name, version) records are an error: lookup would silently shadow one
// of them. Version strings that do not parse as semver are tolerated —
// lookup falls back to exact string matching — but logged, since they
// disable highest-version selection for that name.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]struct{}, len(r.world))
	for _, pkg := range r.world {
		key := pkg.Name + "-" + pkg.Version
		if _, dup := seen[key]; dup {
			return fmt.Errorf("world contains duplicate entries for %s %s", pkg.Name, pkg.Version)
		}
		seen[key] = struct{}{}

		if _, err := semver.NewVersion(pkg.Version); err != nil {
			logger.Warn("World entry version is not semver; version ordering disabled for this name.",
				"app", pkg.Name, "version", pkg.Version)
		}
	}
	return nil
}
