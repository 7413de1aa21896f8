// Package render serializes realized releases into the YAML release
// descriptor consumed by deployment tooling.
package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/relforge/relforge/internal/model"
)

type descriptor struct {
	Release releaseDoc `yaml:"release"`
}

type releaseDoc struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Runtime      string   `yaml:"runtime,omitempty"`
	Applications []appDoc `yaml:"applications"`
}

type appDoc struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	// Type is omitted for permanent, the default.
	Type string `yaml:"type,omitempty"`
	// Included is a pointer so an explicit empty override still renders
	// as an empty list instead of disappearing.
	Included *[]string `yaml:"included_applications,omitempty"`
}

// Render produces the YAML descriptor for a realized release. An
// unrealized release is a contract violation and yields an error, never
// a partial document.
func Render(rel *model.ResolvedRelease) ([]byte, error) {
	meta, err := rel.Metadata()
	if err != nil {
		return nil, fmt.Errorf("rendering release %s-%s: %w", rel.Name, rel.Version, err)
	}

	doc := descriptor{
		Release: releaseDoc{
			Name:         meta.Name,
			Version:      meta.Version,
			Runtime:      meta.RuntimeVersion,
			Applications: make([]appDoc, 0, len(meta.AppSpecs)),
		},
	}
	for _, spec := range meta.AppSpecs {
		app := appDoc{
			Name:    spec.Name,
			Version: spec.Version,
			Type:    string(spec.Type),
		}
		if spec.HasIncluded {
			included := spec.Included
			if included == nil {
				included = []string{}
			}
			app.Included = &included
		}
		doc.Release.Applications = append(doc.Release.Applications, app)
	}

	return yaml.Marshal(&doc)
}
