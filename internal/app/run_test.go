package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/relforge/relforge/internal/model"
)

const worldHCL = `
app "kernel" "1.0" {}

app "myapp" "2.0" {
  applications = ["kernel"]
}
`

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, contents := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	}
	return dir
}

func TestRun_EndToEnd(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"release.hcl": `
release "myrel" "0.1.0" {
  goals = ["myapp"]
}
` + worldHCL,
	})

	testApp, out, _ := SetupAppTest(t, &Config{ConfigPath: dir, LogFormat: "text"})
	require.NoError(t, testApp.Run(context.Background()))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	release := doc["release"].(map[string]any)
	assert.Equal(t, "myrel", release["name"])

	apps := release["applications"].([]any)
	require.Len(t, apps, 2)
	assert.Equal(t, "myapp", apps[0].(map[string]any)["name"])
	assert.Equal(t, "kernel", apps[1].(map[string]any)["name"])
}

func TestRun_SeparateWorldPath(t *testing.T) {
	relDir := writeFiles(t, map[string]string{
		"release.hcl": `
release "myrel" "0.1.0" {
  goals = ["myapp"]
}
`,
	})
	worldDir := writeFiles(t, map[string]string{"world.hcl": worldHCL})

	testApp, out, _ := SetupAppTest(t, &Config{
		ConfigPath: relDir,
		WorldPaths: []string{worldDir},
		LogFormat:  "text",
	})
	require.NoError(t, testApp.Run(context.Background()))
	assert.Contains(t, out.String(), "name: myrel")
}

func TestRun_ReleaseSelection(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"release.hcl": `
release "alpha" "1.0.0" {
  goals = ["myapp"]
}

release "beta" "1.0.0" {
  goals = ["kernel"]
}
` + worldHCL,
	})

	t.Run("by name", func(t *testing.T) {
		testApp, out, _ := SetupAppTest(t, &Config{ConfigPath: dir, Release: "beta", LogFormat: "text"})
		require.NoError(t, testApp.Run(context.Background()))
		assert.Contains(t, out.String(), "name: beta")
		assert.NotContains(t, out.String(), "name: alpha")
	})

	t.Run("by name and version", func(t *testing.T) {
		testApp, out, _ := SetupAppTest(t, &Config{ConfigPath: dir, Release: "alpha:1.0.0", LogFormat: "text"})
		require.NoError(t, testApp.Run(context.Background()))
		assert.Contains(t, out.String(), "name: alpha")
	})

	t.Run("unknown release identity", func(t *testing.T) {
		testApp, _, _ := SetupAppTest(t, &Config{ConfigPath: dir, Release: "ghost:9.9.9", LogFormat: "text"})
		err := testApp.Run(context.Background())
		var notFound *model.ReleaseNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.EqualError(t, err, "No release named ghost of version 9.9.9 found in configuration")
	})

	t.Run("all releases by default", func(t *testing.T) {
		testApp, out, _ := SetupAppTest(t, &Config{ConfigPath: dir, LogFormat: "text"})
		require.NoError(t, testApp.Run(context.Background()))
		assert.Contains(t, out.String(), "name: alpha")
		assert.Contains(t, out.String(), "name: beta")
	})
}

func TestRun_OutputFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"release.hcl": `
release "myrel" "0.1.0" {
  goals = ["kernel"]
}
` + worldHCL,
	})
	outPath := filepath.Join(t.TempDir(), "descriptor.yaml")

	testApp, out, _ := SetupAppTest(t, &Config{ConfigPath: dir, OutputPath: outPath, LogFormat: "text"})
	require.NoError(t, testApp.Run(context.Background()))

	assert.Empty(t, out.String(), "descriptor goes to the file, not stdout")
	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "name: myrel")
}

func TestRun_ResolutionFailureAborts(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"release.hcl": `
release "myrel" "0.1.0" {
  goals = ["ghost"]
}
` + worldHCL,
	})

	testApp, out, _ := SetupAppTest(t, &Config{ConfigPath: dir, LogFormat: "text"})
	err := testApp.Run(context.Background())
	var notFound *model.AppNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Empty(t, out.String(), "no partial descriptor on failure")
}
