package model

// OverrideEntry is the canonical form of one per-release, per-application
// configuration entry. Authors express overrides in several looser tuple
// shapes; the boundary parser normalizes all of them into this one form,
// so no shape ambiguity survives past loading.
//
// HasType distinguishes "author picked a start type" from "use the
// default for this application"; HasIncluded likewise distinguishes an
// explicit (possibly empty) included-applications override from none.
type OverrideEntry struct {
	Name    string
	Version string

	Type    StartType
	HasType bool

	Included    []string
	HasIncluded bool
}

// ApplicationSpec is the resolved, unambiguous spec for one application
// in the release descriptor. An empty Type means permanent and is
// omitted from rendered output.
type ApplicationSpec struct {
	Name    string
	Version string
	Type    StartType

	Included    []string
	HasIncluded bool
}
