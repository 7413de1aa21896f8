package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/relforge/relforge/internal/model"
)

// The author shorthand for goals, overrides and config terms is a
// heterogeneous tuple: strings mixed with nested tuples. The helpers
// below take the evaluated cty values apart; each parser owns the shape
// rules for its attribute.

// elements unpacks a tuple or list value into its element values.
func elements(v cty.Value) ([]cty.Value, bool) {
	if v.IsNull() || !v.CanIterateElements() {
		return nil, false
	}
	return v.AsValueSlice(), true
}

// stringVal extracts a non-null string.
func stringVal(v cty.Value) (string, bool) {
	if v.IsNull() || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

// stringList extracts a (possibly empty) sequence of strings.
func stringList(v cty.Value) ([]string, bool) {
	elems, ok := elements(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		s, ok := stringVal(e)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// parseGoals parses the goals attribute: each entry is either a bare
// application name or a [name, version] pair pinning an exact version.
func parseGoals(v cty.Value) ([]model.Goal, error) {
	entries, ok := elements(v)
	if !ok {
		return nil, fmt.Errorf("goals must be a list of names or [name, version] pairs")
	}

	goals := make([]model.Goal, 0, len(entries))
	for _, entry := range entries {
		if name, ok := stringVal(entry); ok {
			goals = append(goals, model.Goal{Name: name})
			continue
		}
		pair, ok := elements(entry)
		if ok && len(pair) == 2 {
			name, nameOK := stringVal(pair[0])
			version, versionOK := stringVal(pair[1])
			if nameOK && versionOK {
				goals = append(goals, model.Goal{Name: name, Version: version})
				continue
			}
		}
		return nil, fmt.Errorf("invalid goal entry %s: want a name or a [name, version] pair", entry.GoString())
	}
	return goals, nil
}

// parseOverrides parses the overrides attribute into canonical entries.
func parseOverrides(v cty.Value) ([]model.OverrideEntry, error) {
	entries, ok := elements(v)
	if !ok {
		return nil, &model.InvalidOverrideShapeError{Raw: v.GoString()}
	}

	overrides := make([]model.OverrideEntry, 0, len(entries))
	for _, entry := range entries {
		override, err := parseOverride(entry)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, override)
	}
	return overrides, nil
}

// parseOverride normalizes one author-shaped override entry:
//
//	"name"
//	["name", "version"]
//	["name", "type"]
//	["name", "version", "type"]
//	["name", ["included", ...]]
//	["name", "version", "type", ["included", ...]]
//
// A second string element that reads as one of the five start type atoms
// is a type, not a version; versions named exactly like a start type are
// therefore inexpressible in the 2-element shape, matching the reference
// shorthand where types and versions are distinct kinds.
func parseOverride(v cty.Value) (model.OverrideEntry, error) {
	if name, ok := stringVal(v); ok {
		return model.OverrideEntry{Name: name}, nil
	}

	elems, ok := elements(v)
	if !ok || len(elems) < 2 || len(elems) > 4 {
		return model.OverrideEntry{}, &model.InvalidOverrideShapeError{Raw: v.GoString()}
	}
	name, ok := stringVal(elems[0])
	if !ok {
		return model.OverrideEntry{}, &model.InvalidOverrideShapeError{Raw: v.GoString()}
	}
	invalid := &model.InvalidOverrideShapeError{Name: name, Raw: v.GoString()}

	switch len(elems) {
	case 2:
		if s, ok := stringVal(elems[1]); ok {
			if t, isType := model.ParseStartType(s); isType {
				return model.OverrideEntry{Name: name, Type: t, HasType: true}, nil
			}
			return model.OverrideEntry{Name: name, Version: s}, nil
		}
		if included, ok := stringList(elems[1]); ok {
			return model.OverrideEntry{Name: name, Included: included, HasIncluded: true}, nil
		}
	case 3:
		version, versionOK := stringVal(elems[1])
		typeStr, typeStrOK := stringVal(elems[2])
		if versionOK && typeStrOK {
			if t, isType := model.ParseStartType(typeStr); isType {
				return model.OverrideEntry{Name: name, Version: version, Type: t, HasType: true}, nil
			}
		}
	case 4:
		version, versionOK := stringVal(elems[1])
		typeStr, typeStrOK := stringVal(elems[2])
		included, includedOK := stringList(elems[3])
		if versionOK && typeStrOK && includedOK {
			if t, isType := model.ParseStartType(typeStr); isType {
				return model.OverrideEntry{
					Name: name, Version: version,
					Type: t, HasType: true,
					Included: included, HasIncluded: true,
				}, nil
			}
		}
	}
	return model.OverrideEntry{}, invalid
}

// parseConfigTerms parses the config attribute: an ordered sequence of
// [key, value] pairs. Values stay as raw cty values; interpreting them
// is the build state's concern during folding.
func parseConfigTerms(v cty.Value) ([]model.ConfigTerm, error) {
	entries, ok := elements(v)
	if !ok {
		return nil, fmt.Errorf("config must be a list of [key, value] pairs")
	}

	terms := make([]model.ConfigTerm, 0, len(entries))
	for _, entry := range entries {
		pair, ok := elements(entry)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("invalid config term %s: want a [key, value] pair", entry.GoString())
		}
		key, ok := stringVal(pair[0])
		if !ok {
			return nil, fmt.Errorf("invalid config term %s: key must be a string", entry.GoString())
		}
		terms = append(terms, model.ConfigTerm{Key: key, Value: pair[1]})
	}
	return terms, nil
}
