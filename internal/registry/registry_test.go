package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relforge/relforge/internal/ctxlog"
	"github.com/relforge/relforge/internal/model"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func entry(name, version string) model.PackageInfo {
	return model.PackageInfo{Name: name, Version: version}
}

func TestFind(t *testing.T) {
	t.Run("single version", func(t *testing.T) {
		reg := New([]model.PackageInfo{entry("kernel", "1.0")})

		pkg, ok := reg.Find("kernel")
		require.True(t, ok)
		assert.Equal(t, "1.0", pkg.Version)

		_, ok = reg.Find("missing")
		assert.False(t, ok)
	})

	t.Run("multiple versions prefer the highest semver", func(t *testing.T) {
		reg := New([]model.PackageInfo{
			entry("kernel", "1.9.0"),
			entry("kernel", "1.10.0"),
			entry("kernel", "1.2.0"),
		})

		pkg, ok := reg.Find("kernel")
		require.True(t, ok)
		assert.Equal(t, "1.10.0", pkg.Version)
	})

	t.Run("parseable versions sort above unparseable ones", func(t *testing.T) {
		reg := New([]model.PackageInfo{
			entry("kernel", "weird"),
			entry("kernel", "0.1.0"),
		})

		pkg, ok := reg.Find("kernel")
		require.True(t, ok)
		assert.Equal(t, "0.1.0", pkg.Version)
	})
}

func TestFindVersion(t *testing.T) {
	reg := New([]model.PackageInfo{
		entry("kernel", "1.0"),
		entry("kernel", "2.0"),
	})

	pkg, ok := reg.FindVersion("kernel", "2.0")
	require.True(t, ok)
	assert.Equal(t, "2.0", pkg.Version)

	_, ok = reg.FindVersion("kernel", "3.0")
	assert.False(t, ok)

	_, ok = reg.FindVersion("missing", "1.0")
	assert.False(t, ok)
}

func TestIncludedNames(t *testing.T) {
	reg := New([]model.PackageInfo{
		{Name: "a", Version: "1.0", IncludedApplications: []string{"x", "y"}},
		{Name: "b", Version: "1.0", IncludedApplications: []string{"y", "z"}},
		{Name: "c", Version: "1.0"},
	})

	names := reg.IncludedNames()
	assert.Len(t, names, 3)
	for _, want := range []string{"x", "y", "z"} {
		assert.Contains(t, names, want)
	}

	// Memoized: repeated calls return the same set.
	again := reg.IncludedNames()
	assert.Equal(t, names, again)
}

func TestValidate(t *testing.T) {
	t.Run("duplicate name and version is an error", func(t *testing.T) {
		reg := New([]model.PackageInfo{
			entry("kernel", "1.0"),
			entry("kernel", "1.0"),
		})
		err := reg.Validate(testContext(t))
		require.Error(t, err)
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("distinct versions of one name pass", func(t *testing.T) {
		reg := New([]model.PackageInfo{
			entry("kernel", "1.0"),
			entry("kernel", "2.0"),
		})
		assert.NoError(t, reg.Validate(testContext(t)))
	})

	t.Run("non-semver versions pass with a warning", func(t *testing.T) {
		reg := New([]model.PackageInfo{entry("kernel", "r16b03")})
		assert.NoError(t, reg.Validate(testContext(t)))
	})
}
