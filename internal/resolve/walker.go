package resolve

import (
	"context"

	"github.com/relforge/relforge/internal/ctxlog"
	"github.com/relforge/relforge/internal/model"
	"github.com/relforge/relforge/internal/registry"
)

// Walk expands a set of top-level goals into the full ordered set of
// packages the release requires.
//
// The queue is an index cursor over a growable slice rather than a
// conventional level-order BFS: newly discovered dependency names are
// appended to the tail (direct dependencies first, then included
// applications), so siblings declared later interleave with the first
// goal's transitive dependents. The resulting first-discovery order is
// an observable contract — it becomes the start order of the deployed
// release.
//
// Each name is resolved at most once; re-enqueued names are dropped on
// sight, which guarantees termination. An unresolvable name aborts the
// walk immediately.
func Walk(ctx context.Context, goals []model.Goal, reg *registry.Registry) ([]model.PackageInfo, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Closure walk started.", "goals", len(goals))

	queue := make([]model.Goal, len(goals))
	copy(queue, goals)

	seen := make(map[string]struct{})
	var out []model.PackageInfo

	for i := 0; i < len(queue); i++ {
		goal := queue[i]
		if _, done := seen[goal.Name]; done {
			continue
		}

		var pkg model.PackageInfo
		var found bool
		if goal.Pinned() {
			pkg, found = reg.FindVersion(goal.Name, goal.Version)
		} else {
			pkg, found = reg.Find(goal.Name)
		}
		if !found {
			return nil, &model.AppNotFoundError{Name: goal.Name}
		}

		out = append(out, pkg)
		seen[goal.Name] = struct{}{}

		for _, dep := range pkg.Applications {
			queue = append(queue, model.Goal{Name: dep})
		}
		for _, dep := range pkg.IncludedApplications {
			queue = append(queue, model.Goal{Name: dep})
		}
	}

	logger.Debug("Closure walk finished.", "resolved", len(out), "visited", len(queue))
	return out, nil
}
