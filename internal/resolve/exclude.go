package resolve

import (
	"github.com/relforge/relforge/internal/model"
)

// Exclude removes explicitly excluded applications from a resolved set.
// For each excluded name the first matching entry is removed (the walk
// already deduplicates, so at most one exists); names with no match are
// silently ignored, and the order of the survivors is preserved.
//
// Exclusion runs after closure resolution, so an excluded application's
// own transitive dependents stay in the set — exclusion is not
// transitive.
func Exclude(apps []model.PackageInfo, names []string) []model.PackageInfo {
	out := make([]model.PackageInfo, len(apps))
	copy(out, apps)

	for _, name := range names {
		for i, pkg := range out {
			if pkg.Name == name {
				out = append(out[:i], out[i+1:]...)
				break
			}
		}
	}
	return out
}
