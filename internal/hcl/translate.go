package hcl

import (
	"fmt"

	"github.com/relforge/relforge/internal/model"
	"github.com/relforge/relforge/internal/schema"
)

// translateRelease converts an HCL release block into a model draft,
// running the shorthand tuple parsers over its raw expressions.
func (l *Loader) translateRelease(rel *schema.Release) (*model.ReleaseDraft, error) {
	goalsVal, diags := rel.Goals.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating goals: %w", diags)
	}
	goals, err := parseGoals(goalsVal)
	if err != nil {
		return nil, err
	}

	var overrides []model.OverrideEntry
	if rel.Overrides != nil {
		overridesVal, diags := rel.Overrides.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating overrides: %w", diags)
		}
		if !overridesVal.IsNull() {
			overrides, err = parseOverrides(overridesVal)
			if err != nil {
				return nil, err
			}
		}
	}

	var config []model.ConfigTerm
	if rel.Config != nil {
		configVal, diags := rel.Config.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating config: %w", diags)
		}
		if !configVal.IsNull() {
			config, err = parseConfigTerms(configVal)
			if err != nil {
				return nil, err
			}
		}
	}

	return &model.ReleaseDraft{
		Name:        rel.Name,
		Version:     rel.Version,
		Goals:       goals,
		Overrides:   overrides,
		Config:      config,
		ExcludeApps: rel.ExcludeApps,
	}, nil
}

// translateApp converts an HCL app block into a world entry.
func (l *Loader) translateApp(app *schema.App) model.PackageInfo {
	return model.PackageInfo{
		Name:                 app.Name,
		Version:              app.Version,
		Applications:         app.Applications,
		IncludedApplications: app.IncludedApplications,
	}
}
