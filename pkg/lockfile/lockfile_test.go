// pkg/lockfile/lockfile_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test lock file parsing into per-framework package versions

package lockfile

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAssets = `{
  "version": 3,
  "targets": {},
  "project": {
    "version": "1.0.0",
    "frameworks": {
      "net6.0": {
        "targetAlias": "net6.0",
        "dependencies": {
          "Newtonsoft.Json": {
            "target": "Package",
            "version": "[13.0.1, )"
          },
          "Serilog": {
            "target": "Package",
            "version": "[2.12.0, )"
          },
          "Microsoft.NETCore.App.Ref": {
            "target": "Project",
            "version": "[6.0.0, )"
          }
        },
        "frameworkReferences": {
          "Microsoft.NETCore.App": {
            "privateAssets": "all"
          }
        }
      },
      "netstandard2.0": {
        "dependencies": {
          "NETStandard.Library": {
            "suppressParent": "All",
            "target": "Reference"
          }
        }
      }
    }
  }
}`

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		rng     string
		want    string
		wantErr bool
	}{
		{"minimum_only", "[1.2.3, )", "1.2.3", false},
		{"no_space", "[13.0.1,)", "13.0.1", false},
		{"prerelease", "[2.0.0-beta.1, )", "2.0.0-beta.1", false},
		{"missing_bracket", "1.2.3, )", "", true},
		{"missing_comma", "[1.2.3]", "", true},
		{"bare_version", "1.2.3", "", true},
		{"upper_bound", "[1.0.0, 2.0.0)", "", true},
		{"inclusive_upper_bound", "[1.0.0, 2.0.0]", "", true},
		{"empty_lower_bound", "[, 2.0.0)", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.rng)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrVersionFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	deps, err := Parse([]byte(sampleAssets))
	require.NoError(t, err)

	want := types.DependencyMap{
		"net6.0": {
			"Newtonsoft.Json": "13.0.1",
			"Serilog":         "2.12.0",
		},
		"netstandard2.0": {},
	}
	if diff := cmp.Diff(want, deps); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NonPackageEntriesNeverAppear(t *testing.T) {
	deps, err := Parse([]byte(sampleAssets))
	require.NoError(t, err)

	for _, fw := range deps.Frameworks() {
		assert.NotContains(t, deps[fw], "Microsoft.NETCore.App.Ref")
		assert.NotContains(t, deps[fw], "NETStandard.Library")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.ErrorCode
	}{
		{"malformed_json", `{"project": {`, errors.ErrLockFileParse},
		{"bad_version", `{"project": {"frameworks": {"net6.0": {"dependencies": {
			"Foo": {"target": "Package", "version": "1.0.0"}}}}}}`, errors.ErrVersionFormat},
		{"pinned_version", `{"project": {"frameworks": {"net6.0": {"dependencies": {
			"Foo": {"target": "Package", "version": "[1.0.0]"}}}}}}`, errors.ErrVersionFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestParse_MissingSections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no_project", `{"version": 3, "targets": {}}`},
		{"null_project", `{"version": 3, "project": null}`},
		{"no_frameworks", `{"version": 3, "project": {"version": "1.0.0"}}`},
		{"null_frameworks", `{"project": {"frameworks": null}}`},
		{"no_target", `{"project": {"frameworks": {"net6.0": {"dependencies": {
			"Foo": {"version": "[1.0.0, )"}}}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrLockFileParse))
		})
	}
}

func TestParse_EmptyFrameworks(t *testing.T) {
	deps, err := Parse([]byte(`{"version": 3, "project": {"frameworks": {}}}`))
	require.NoError(t, err)
	assert.NotNil(t, deps)
	assert.Empty(t, deps)
}

func TestParse_ByteOrderMark(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleAssets)...)

	deps, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, deps.PackageCount())
}

func TestExtract(t *testing.T) {
	fsys := filesystem.NewMemory()
	projectDir := "/solution/src/Foo"
	require.NoError(t, fsys.MkdirAll(filepath.Join(projectDir, "obj"), 0755))
	require.NoError(t, fsys.WriteFile(PathFor(projectDir), []byte(sampleAssets), 0644))

	deps, err := Extract(fsys, projectDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"net6.0", "netstandard2.0"}, deps.Frameworks())
	assert.Equal(t, []string{"Newtonsoft.Json", "Serilog"}, deps.Packages("net6.0"))
}

func TestExtract_NotFound(t *testing.T) {
	fsys := filesystem.NewMemory()

	_, err := Extract(fsys, "/solution/src/Foo")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLockFileNotFound))
	assert.Equal(t, filepath.Join("/solution/src/Foo", "obj", "project.assets.json"),
		errors.GetErrorDetails(err)["path"])
}

func TestExtract_VersionErrorCarriesPath(t *testing.T) {
	fsys := filesystem.NewMemory()
	projectDir := "/solution/src/Foo"
	require.NoError(t, fsys.MkdirAll(filepath.Join(projectDir, "obj"), 0755))
	require.NoError(t, fsys.WriteFile(PathFor(projectDir), []byte(`{"project": {"frameworks": {
		"net6.0": {"dependencies": {"Foo": {"target": "Package", "version": "(1.0.0, )"}}}}}}`), 0644))

	_, err := Extract(fsys, projectDir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVersionFormat))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, PathFor(projectDir), details["path"])
	assert.Equal(t, "Foo", details["package"])
	assert.Equal(t, "net6.0", details["framework"])
}
