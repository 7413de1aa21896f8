// Package schema defines the HCL-facing structure of declaration files.
// These structs carry hcl tags only; translation into the domain model
// lives in the hcl package.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Release represents one `release` block from a declaration file.
//
// The goals, overrides and config attributes are kept as raw expressions
// because their values are heterogeneous tuples (the author shorthand
// shapes); a dedicated parser validates and normalizes them at load time.
type Release struct {
	Name    string `hcl:"name,label"`
	Version string `hcl:"version,label"`

	Goals       hcl.Expression `hcl:"goals"`
	Overrides   hcl.Expression `hcl:"overrides,optional"`
	ExcludeApps []string       `hcl:"exclude_apps,optional"`
	Config      hcl.Expression `hcl:"config,optional"`
}

// App represents one `app` block: a single world entry as produced by
// the discovery collaborator.
type App struct {
	Name    string `hcl:"name,label"`
	Version string `hcl:"version,label"`

	Applications         []string `hcl:"applications,optional"`
	IncludedApplications []string `hcl:"included_applications,optional"`
}

// File is the top-level structure of one declaration file. Release and
// app blocks may be mixed freely in a file.
type File struct {
	Releases []*Release `hcl:"release,block"`
	Apps     []*App     `hcl:"app,block"`
	Body     hcl.Body   `hcl:",remain"`
}
