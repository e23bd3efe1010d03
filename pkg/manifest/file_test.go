// pkg/manifest/file_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS
// PURPOSE: Test reading and writing manifests through the filesystem abstraction

package manifest

import (
	"testing"

	"github.com/arthur-debert/nuspecmaker/pkg/errors"
	"github.com/arthur-debert/nuspecmaker/pkg/filesystem"
	"github.com/arthur-debert/nuspecmaker/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestPath = "/solution/src/Foo/Foo.nuspec"

func TestLoadSave(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/solution/src/Foo", 0755))
	require.NoError(t, fsys.WriteFile(manifestPath, []byte(skeleton), 0644))

	m, err := Load(fsys, manifestPath)
	require.NoError(t, err)

	m.SetDependencies(types.DependencyMap{"net6.0": {"Newtonsoft.Json": "13.0.1"}})
	require.NoError(t, Save(fsys, manifestPath, m))

	reloaded, err := Load(fsys, manifestPath)
	require.NoError(t, err)
	assert.Equal(t, types.DependencyMap{"net6.0": {"Newtonsoft.Json": "13.0.1"}}, reloaded.Dependencies())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filesystem.NewMemory(), manifestPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	assert.Equal(t, manifestPath, errors.GetErrorDetails(err)["path"])
}

func TestLoad_Malformed(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/solution/src/Foo", 0755))
	require.NoError(t, fsys.WriteFile(manifestPath, []byte("<package>"), 0644))

	_, err := Load(fsys, manifestPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	assert.Equal(t, manifestPath, errors.GetErrorDetails(err)["path"])
}

func TestSave_WriteFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, manifestPath, []byte(skeleton), 0644))
	fsys := filesystem.NewAferoFS(afero.NewReadOnlyFs(base))

	m, err := Load(fsys, manifestPath)
	require.NoError(t, err)

	err = Save(fsys, manifestPath, m)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestWrite))

	data, err := afero.ReadFile(base, manifestPath)
	require.NoError(t, err)
	assert.Equal(t, skeleton, string(data))
}
