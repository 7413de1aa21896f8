package resolve

import (
	"github.com/relforge/relforge/internal/model"
)

// NormalizeSpec reconciles one (possibly absent) override entry against
// the resolved package and produces the canonical application spec.
//
// The default start type is load when the application's name appears in
// some world entry's included_applications, permanent otherwise. A spec
// whose resolved type is permanent carries an empty Type, keeping the
// default path terse in rendered output.
//
// When the override supplies an explicit start type, a version it also
// supplies is trusted as-is and NOT cross-checked against the resolved
// package's version. The bare (name, version) shape is the exception:
// there the version must match the resolved package or the entry is
// rejected as an invalid shape.
func NormalizeSpec(override *model.OverrideEntry, pkg model.PackageInfo, includedNames map[string]struct{}) (model.ApplicationSpec, error) {
	defaultType := model.StartPermanent
	if _, included := includedNames[pkg.Name]; included {
		defaultType = model.StartLoad
	}

	if override == nil {
		override = &model.OverrideEntry{Name: pkg.Name}
	}

	spec := model.ApplicationSpec{Name: pkg.Name}

	switch {
	case !override.HasType && !override.HasIncluded:
		if override.Version != "" && override.Version != pkg.Version {
			return model.ApplicationSpec{}, &model.InvalidOverrideShapeError{
				Name: pkg.Name,
				Raw:  "version " + override.Version + " does not match resolved version " + pkg.Version,
			}
		}
		spec.Version = pkg.Version
		spec.Type = defaultType

	case override.HasType && override.HasIncluded:
		spec.Version = override.Version
		if spec.Version == "" {
			spec.Version = pkg.Version
		}
		spec.Type = override.Type
		spec.Included = override.Included
		spec.HasIncluded = true

	case override.HasType:
		spec.Version = override.Version
		if spec.Version == "" {
			spec.Version = pkg.Version
		}
		spec.Type = override.Type

	default: // included list only
		spec.Version = pkg.Version
		spec.Type = defaultType
		spec.Included = override.Included
		spec.HasIncluded = true
	}

	if spec.Type == model.StartPermanent {
		spec.Type = ""
	}
	return spec, nil
}
