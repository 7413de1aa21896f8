package model

// ReleaseDraft is one declared release before resolution. A draft is
// constructed once per release-build request and consumed by the
// resolver; it is never mutated after construction.
type ReleaseDraft struct {
	Name    string
	Version string

	Goals       []Goal
	Overrides   []OverrideEntry
	Config      []ConfigTerm
	ExcludeApps []string
}

// ResolvedRelease is the realized form of a draft: the full ordered
// application spec list plus the runtime tag. Values are immutable once
// returned by the resolver and are cached by the caller under their
// (name, version) key.
type ResolvedRelease struct {
	ReleaseDraft

	// RuntimeVersion is the realized runtime tag, or empty when the
	// release ships without a bundled runtime.
	RuntimeVersion string

	// AppSpecs is the ordered, deduplicated application spec list.
	// Order is significant: it is the start order at deployment time.
	AppSpecs []ApplicationSpec

	// AppDetail carries the world records backing AppSpecs, in the
	// same order.
	AppDetail []PackageInfo

	Realized bool
}

// Metadata is the descriptor surface consumed by downstream serializers.
type Metadata struct {
	Name           string
	Version        string
	RuntimeVersion string
	AppSpecs       []ApplicationSpec
}

// Metadata returns the serializable descriptor for a realized release.
// Requesting metadata on an unrealized release is a contract violation
// and returns ErrNotRealized rather than a partial descriptor.
func (r *ResolvedRelease) Metadata() (Metadata, error) {
	if !r.Realized {
		return Metadata{}, ErrNotRealized
	}
	return Metadata{
		Name:           r.Name,
		Version:        r.Version,
		RuntimeVersion: r.RuntimeVersion,
		AppSpecs:       r.AppSpecs,
	}, nil
}

// RuntimeKind selects how the runtime tag of a release is realized.
type RuntimeKind int

const (
	// RuntimeNone leaves the runtime tag unset; the deployed release
	// uses whatever runtime the host provides. No filesystem access.
	RuntimeNone RuntimeKind = iota
	// RuntimeHost assigns the running system's own runtime version.
	RuntimeHost
	// RuntimeDir scans a supplied directory for a bundled runtime.
	RuntimeDir
)

// RuntimeSelector is the runtime-inclusion setting taken from the build
// state: host runtime, no runtime, or a directory to scan.
type RuntimeSelector struct {
	Kind RuntimeKind
	Dir  string
}
