package metafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/buildbeaver/yamato/common/gerror"
	"github.com/buildbeaver/yamato/common/logger"
)

func TestLoadGlobMergesAllFormats(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	meta, err := loader.LoadGlob("testdata/config/*")
	require.NoError(t, err)

	require.Len(t, meta.Packages, 3)
	require.Equal(t, "core", meta.Packages[0].ID)
	require.Equal(t, "com.unity.render-pipelines.core", meta.Packages[0].PackageName)
	require.Equal(t, []string{}, meta.Packages[0].Dependencies)
	require.False(t, meta.Packages[0].NeedsCoDependencyStaging())
	require.Equal(t, []string{"core", "shadergraph"}, meta.Packages[1].Dependencies)
	require.True(t, meta.Packages[1].NeedsCoDependencyStaging())
	require.Equal(t, 1, meta.Packages[1].HasCoDependencies)
	require.False(t, meta.Packages[2].NeedsCoDependencyStaging(), "explicit null counts as absent")

	require.Len(t, meta.Platforms, 2)
	require.Equal(t, "Win", meta.Platforms[0].Name)
	require.Equal(t, "windows", meta.Platforms[0].OS)
	require.Equal(t, "Unity::VM", meta.Platforms[0].Agent["type"])
	require.Equal(t, `.Editor\Unity.exe`, meta.Platforms[0].EditorPath)

	require.Len(t, meta.Editors, 2)
	require.Equal(t, "2020.1", meta.Editors[0].Version)
	require.Equal(t, "trunk", meta.Editors[1].Version)
}

func TestLoadGlobNoMatches(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	_, err := loader.LoadGlob(filepath.Join(t.TempDir(), "*.metafile"))
	require.True(t, gerror.IsNotFound(err))
}

func TestLoadFileUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0644))
	_, err := NewLoader(logger.NoOpLogFactory).LoadFile(path)
	require.True(t, gerror.IsUnsupportedFormat(err))
}

func TestParseCoDependencyPresence(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	for _, value := range []string{"true", "false", "0", `""`} {
		meta, err := loader.Parse([]byte(`
packages:
  - id: p1
    name: Core
    packagename: com.unity.core
    hascodependencies: `+value), FormatYAML, "test.metafile")
		require.NoError(t, err)
		require.True(t, meta.Packages[0].NeedsCoDependencyStaging(), "value %s", value)
	}
}

func TestParseKeepsAgentValueTypes(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	meta, err := loader.Parse([]byte(`
platforms:
  - name: win
    os: windows
    editorpath: .Editor
    agent:
      type: Unity::VM
      cpus: 4
      gpu: true
      ratio: 0.5
      labels:
        pool: 2
`), FormatYAML, "platforms.metafile")
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{
		"type":   "Unity::VM",
		"cpus":   4,
		"gpu":    true,
		"ratio":  0.5,
		"labels": map[string]interface{}{"pool": 2},
	}, meta.Platforms[0].Agent)

	meta, err = loader.Parse([]byte(`{"platforms": [{"name": "win", "os": "windows", "editorpath": ".Editor",
		"agent": {"cpus": 4, "gpu": false}}]}`), FormatJSON, "platforms.json")
	require.NoError(t, err)
	require.Equal(t, float64(4), meta.Platforms[0].Agent["cpus"])
	require.Equal(t, false, meta.Platforms[0].Agent["gpu"])
}

func TestParseFormatsScalarStringFields(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	meta, err := loader.Parse([]byte(`
editors:
  - version: 2021.1
packages:
  - id: 7
    name: true
    packagename: com.unity.core
    dependencies: [1, core]
`), FormatYAML, "scalars.metafile")
	require.NoError(t, err)
	require.Equal(t, "2021.1", meta.Editors[0].Version)
	require.Equal(t, "7", meta.Packages[0].ID)
	require.Equal(t, "true", meta.Packages[0].Name)
	require.Equal(t, []string{"1", "core"}, meta.Packages[0].Dependencies)
}

func TestParseReportsEveryMissingField(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	_, err := loader.Parse([]byte(`
editors:
  - {}
platforms:
  - name: win
    os: windows
    agent: Unity::VM
packages:
  - id: p1
    name: Core
    dependencies: p0
`), FormatYAML, "broken.metafile")
	require.Error(t, err)
	require.True(t, gerror.IsMissingField(err))

	msg := err.Error()
	require.Contains(t, msg, `Missing required field "version" [field=version, record=editor at index 0]`)
	require.Contains(t, msg, `Expected field "agent" to be an object but found: string [field=agent, record=platform win]`)
	require.Contains(t, msg, `Missing required field "editorpath" [field=editorpath, record=platform win]`)
	require.Contains(t, msg, `Missing required field "packagename" [field=packagename, record=package p1]`)
	require.Contains(t, msg, `Expected field "dependencies" to be a list but found: string [field=dependencies, record=package p1]`)
}

func TestParseRejectsNonObjectDocuments(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	_, err := loader.Parse([]byte(`- a`), FormatYAML, "list.metafile")
	require.Error(t, err)

	_, err = loader.Parse([]byte(`packages: p1`), FormatYAML, "scalar.metafile")
	require.True(t, gerror.IsInvalidField(err))

	meta, err := loader.Parse([]byte(``), FormatYAML, "empty.metafile")
	require.NoError(t, err)
	require.Empty(t, meta.Packages)
}

func TestParseInvalidSyntax(t *testing.T) {
	loader := NewLoader(logger.NoOpLogFactory)
	_, err := loader.Parse([]byte(`{"packages": [`), FormatJSON, "bad.json")
	require.Error(t, err)
	_, err = loader.Parse([]byte(`{ editors: [ }`), FormatJSONNET, "bad.jsonnet")
	require.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	require.Equal(t, FormatYAML, FormatFromPath("config/_packages.metafile"))
	require.Equal(t, FormatYAML, FormatFromPath("a.YML"))
	require.Equal(t, FormatJSON, FormatFromPath("a.json"))
	require.Equal(t, FormatJSONNET, FormatFromPath("a.jsonnet"))
	require.Equal(t, FormatUnknown, FormatFromPath("a.txt"))
	require.False(t, FormatUnknown.Valid())
}
