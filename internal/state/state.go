// Package state implements the mutable build state threaded through a
// release resolution: the key/value store that release-scoped config
// terms are folded into, plus the cache of realized releases.
//
// A State serves exactly one resolution and is mutated sequentially by
// it; resolving several releases in parallel means giving each its own
// State. Only the realized-release cache is guarded for readers that
// outlive the resolution.
package state

import (
	"fmt"
	"sync"

	"github.com/zclconf/go-cty/cty"

	"github.com/relforge/relforge/internal/model"
)

// Recognized config term keys. Anything else is stored opaquely.
const (
	// KeyExcludeApps appends application names to the exclusion list.
	KeyExcludeApps = "exclude_apps"
	// KeyIncludeERTS selects how the runtime tag is realized: true for
	// the host runtime, false for none, or a directory path to scan.
	KeyIncludeERTS = "include_erts"
)

// State is the explicit build-state object passed by reference through
// the orchestrator's steps.
type State struct {
	values      map[string]cty.Value
	excludeApps []string

	mu       sync.RWMutex
	realized map[string]*model.ResolvedRelease
}

// New creates an empty build state.
func New() *State {
	return &State{
		values:   make(map[string]cty.Value),
		realized: make(map[string]*model.ResolvedRelease),
	}
}

// SeedExcludes adds the draft-level exclusions before any config term
// is folded, so folded exclude_apps terms accumulate on top of them.
func (s *State) SeedExcludes(names []string) {
	s.excludeApps = append(s.excludeApps, names...)
}

// FoldConfig applies one config term. Terms must be folded in declared
// order: later terms overwrite the stored value of earlier ones for the
// same key (exclude_apps accumulates instead). A term whose value does
// not fit its recognized key fails the fold.
func (s *State) FoldConfig(term model.ConfigTerm) error {
	switch term.Key {
	case KeyExcludeApps:
		names, err := stringSlice(term.Value)
		if err != nil {
			return fmt.Errorf("config term %s: %w", term.Key, err)
		}
		s.excludeApps = append(s.excludeApps, names...)
	case KeyIncludeERTS:
		if term.Value.IsNull() {
			return fmt.Errorf("config term %s: value must not be null", term.Key)
		}
		if ty := term.Value.Type(); ty != cty.Bool && ty != cty.String {
			return fmt.Errorf("config term %s: want bool or directory path, got %s", term.Key, ty.FriendlyName())
		}
	}
	s.values[term.Key] = term.Value
	return nil
}

// Get returns the stored value for key, or def when the key was never
// folded.
func (s *State) Get(key string, def cty.Value) cty.Value {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// ExcludeApps returns the accumulated exclusion list: draft seeds first,
// then folded terms in fold order.
func (s *State) ExcludeApps() []string {
	return s.excludeApps
}

// RuntimeSelector derives the runtime-inclusion setting from the folded
// include_erts term. Never folded or folded false both mean: ship no
// bundled runtime.
func (s *State) RuntimeSelector() model.RuntimeSelector {
	v, ok := s.values[KeyIncludeERTS]
	if !ok || v.IsNull() {
		return model.RuntimeSelector{Kind: model.RuntimeNone}
	}
	if v.Type() == cty.Bool {
		if v.True() {
			return model.RuntimeSelector{Kind: model.RuntimeHost}
		}
		return model.RuntimeSelector{Kind: model.RuntimeNone}
	}
	return model.RuntimeSelector{Kind: model.RuntimeDir, Dir: v.AsString()}
}

// AddRealizedRelease caches a realized release under its (name, version)
// key.
func (s *State) AddRealizedRelease(rel *model.ResolvedRelease) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.realized[releaseKey(rel.Name, rel.Version)] = rel
}

// RealizedRelease looks up a previously realized release.
func (s *State) RealizedRelease(name, version string) (*model.ResolvedRelease, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rel, ok := s.realized[releaseKey(name, version)]
	return rel, ok
}

func releaseKey(name, version string) string {
	return name + "-" + version
}

// stringSlice unpacks a cty list or tuple of strings.
func stringSlice(v cty.Value) ([]string, error) {
	if v.IsNull() || !v.CanIterateElements() {
		return nil, fmt.Errorf("want a list of names, got %s", v.GoString())
	}
	elems := v.AsValueSlice()
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if e.IsNull() || e.Type() != cty.String {
			return nil, fmt.Errorf("want a list of names, got %s", v.GoString())
		}
		out = append(out, e.AsString())
	}
	return out, nil
}
