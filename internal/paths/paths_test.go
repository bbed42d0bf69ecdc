package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveHome()
	require.NoError(t, err)
	assert.Equal(t, home, got)
	assert.Equal(t, home, Home())
}

func TestResolveHome_Unset(t *testing.T) {
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")
	t.Setenv("home", "")

	_, err := ResolveHome()
	if err == nil {
		t.Skip("platform resolved a home directory without HOME")
	}
	assert.ErrorIs(t, err, ErrHomeDirNotFound)
	assert.Empty(t, Home())
}

func TestConfigLocations(t *testing.T) {
	assert.True(t, filepath.IsAbs(ConfigHome()), "ConfigHome() = %q", ConfigHome())
	assert.Equal(t, filepath.Join(ConfigHome(), AppName), ConfigDir())
	assert.Equal(t, []string{".", ConfigDir()}, ConfigSearchPaths())
}

func TestEnsureDir(t *testing.T) {
	root := t.TempDir()

	t.Run("default permissions", func(t *testing.T) {
		path := filepath.Join(root, "reports")
		require.NoError(t, EnsureDir(path, 0))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(DefaultDirPerm), info.Mode().Perm())
	})

	t.Run("nested", func(t *testing.T) {
		path := filepath.Join(root, "docs", "man", "man1")
		require.NoError(t, EnsureDir(path, 0o755))
		assert.DirExists(t, path)
	})

	t.Run("existing directory", func(t *testing.T) {
		path := filepath.Join(root, "existing")
		require.NoError(t, os.Mkdir(path, 0o755))
		assert.NoError(t, EnsureDir(path, 0o700))
	})

	t.Run("file in the way", func(t *testing.T) {
		path := filepath.Join(root, "file")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		assert.Error(t, EnsureDir(path, 0))
	})
}
