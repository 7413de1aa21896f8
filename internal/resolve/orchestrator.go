package resolve

import (
	"context"

	"github.com/google/uuid"

	"github.com/relforge/relforge/internal/ctxlog"
	"github.com/relforge/relforge/internal/model"
	"github.com/relforge/relforge/internal/registry"
	"github.com/relforge/relforge/internal/state"
)

// Resolver turns release drafts into realized releases against one
// world. Resolvers are stateless across resolutions; each call threads
// its own build state.
type Resolver struct {
	reg *registry.Registry
}

// New creates a resolver over the given world registry.
func New(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve runs the full resolution sequence for one draft: config
// folding, goal validation, closure walk, exclusion, per-app spec
// normalization, runtime realization. The first failing step aborts the
// attempt with its error — config-folding errors propagate unwrapped —
// and no partial release is ever returned.
func (r *Resolver) Resolve(ctx context.Context, draft *model.ReleaseDraft, st *state.State) (*model.ResolvedRelease, error) {
	logger := ctxlog.FromContext(ctx).With(
		"release", draft.Name,
		"version", draft.Version,
		"resolution_id", uuid.NewString(),
	)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Release resolution started.")

	st.SeedExcludes(draft.ExcludeApps)
	for _, term := range draft.Config {
		if err := st.FoldConfig(term); err != nil {
			return nil, err
		}
	}
	logger.Debug("Config terms folded.", "terms", len(draft.Config))

	if len(draft.Goals) == 0 {
		return nil, &model.NoGoalsError{Release: draft.Name, Version: draft.Version}
	}

	apps, err := Walk(ctx, draft.Goals, r.reg)
	if err != nil {
		return nil, err
	}

	apps = Exclude(apps, st.ExcludeApps())
	logger.Debug("Exclusions applied.", "remaining", len(apps))

	includedNames := r.reg.IncludedNames()
	specs := make([]model.ApplicationSpec, 0, len(apps))
	for _, pkg := range apps {
		spec, err := NormalizeSpec(overrideFor(draft.Overrides, pkg.Name), pkg, includedNames)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	rel := &model.ResolvedRelease{
		ReleaseDraft: *draft,
		AppSpecs:     specs,
		AppDetail:    apps,
	}

	rel, err = Realize(ctx, rel, st.RuntimeSelector())
	if err != nil {
		return nil, err
	}

	rel.Realized = true
	st.AddRealizedRelease(rel)
	logger.Info("Release resolved.", "applications", len(rel.AppSpecs), "runtime", rel.RuntimeVersion)
	return rel, nil
}

// overrideFor finds the first override declared for the given name.
func overrideFor(overrides []model.OverrideEntry, name string) *model.OverrideEntry {
	for i := range overrides {
		if overrides[i].Name == name {
			return &overrides[i]
		}
	}
	return nil
}
