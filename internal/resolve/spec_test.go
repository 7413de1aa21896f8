package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relforge/relforge/internal/model"
)

func TestNormalizeSpec(t *testing.T) {
	resolved := pkg("myapp", "2.0", nil, nil)
	noIncluded := map[string]struct{}{}
	asIncluded := map[string]struct{}{"myapp": {}}

	testCases := []struct {
		name     string
		override *model.OverrideEntry
		included map[string]struct{}
		expected model.ApplicationSpec
	}{
		{
			name:     "absent override behaves as bare name",
			override: nil,
			included: noIncluded,
			expected: model.ApplicationSpec{Name: "myapp", Version: "2.0"},
		},
		{
			name:     "bare name takes resolved version and default type",
			override: &model.OverrideEntry{Name: "myapp"},
			included: noIncluded,
			expected: model.ApplicationSpec{Name: "myapp", Version: "2.0"},
		},
		{
			name:     "default type is load for included-only apps",
			override: &model.OverrideEntry{Name: "myapp"},
			included: asIncluded,
			expected: model.ApplicationSpec{Name: "myapp", Version: "2.0", Type: model.StartLoad},
		},
		{
			name:     "matching version with default type",
			override: &model.OverrideEntry{Name: "myapp", Version: "2.0"},
			included: noIncluded,
			expected: model.ApplicationSpec{Name: "myapp", Version: "2.0"},
		},
		{
			name:     "explicit type takes resolved version",
			override: &model.OverrideEntry{Name: "myapp", Type: model.StartTransient, HasType: true},
			included: noIncluded,
			expected: model.ApplicationSpec{Name: "myapp", Version: "2.0", Type: model.StartTransient},
		},
		{
			name:     "explicit permanent type is omitted from output",
			override: &model.OverrideEntry{Name: "myapp", Type: model.StartPermanent, HasType: true},
			included: asIncluded,
			expected: model.ApplicationSpec{Name: "myapp", Version: "2.0"},
		},
		{
			name:     "version and type used as-is, version not cross-checked",
			override: &model.OverrideEntry{Name: "myapp", Version: "9.9", Type: model.StartLoad, HasType: true},
			included: noIncluded,
			expected: model.ApplicationSpec{Name: "myapp", Version: "9.9", Type: model.StartLoad},
		},
		{
			name: "full shape used as-is",
			override: &model.OverrideEntry{
				Name: "myapp", Version: "9.9",
				Type: model.StartNone, HasType: true,
				Included: []string{"inner"}, HasIncluded: true,
			},
			included: noIncluded,
			expected: model.ApplicationSpec{
				Name: "myapp", Version: "9.9", Type: model.StartNone,
				Included: []string{"inner"}, HasIncluded: true,
			},
		},
		{
			name:     "included list only takes resolved version and default type",
			override: &model.OverrideEntry{Name: "myapp", Included: []string{"inner"}, HasIncluded: true},
			included: asIncluded,
			expected: model.ApplicationSpec{
				Name: "myapp", Version: "2.0", Type: model.StartLoad,
				Included: []string{"inner"}, HasIncluded: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := NormalizeSpec(tc.override, resolved, tc.included)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, spec)
		})
	}

	t.Run("bare version mismatch is an invalid shape", func(t *testing.T) {
		override := &model.OverrideEntry{Name: "myapp", Version: "1.0"}
		_, err := NormalizeSpec(override, resolved, noIncluded)
		var invalid *model.InvalidOverrideShapeError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "myapp", invalid.Name)
	})
}
