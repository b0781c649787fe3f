package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/casset/internal/adapters/fs"
)

func TestMapFS_Glob(t *testing.T) {
	mfs := fs.NewMapFS(fstest.MapFS{
		"assets/css/a.css":        {Data: []byte("a{}")},
		"assets/css/b.css":        {Data: []byte("b{}")},
		"assets/css/vendor/c.css": {Data: []byte("c{}")},
		"assets/js/app.js":        {Data: []byte("var a;")},
	})

	t.Run("single star", func(t *testing.T) {
		got, err := mfs.Glob("assets/css/*.css")
		require.NoError(t, err)
		assert.Equal(t, []string{"assets/css/a.css", "assets/css/b.css"}, got)
	})

	t.Run("double star", func(t *testing.T) {
		got, err := mfs.Glob("assets/css/**/*.css")
		require.NoError(t, err)
		assert.Equal(t, []string{"assets/css/a.css", "assets/css/b.css", "assets/css/vendor/c.css"}, got)
	})

	t.Run("dot prefix", func(t *testing.T) {
		got, err := mfs.Glob("./assets/js/app.js")
		require.NoError(t, err)
		assert.Equal(t, []string{"assets/js/app.js"}, got)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := mfs.Glob("assets/img/*.png")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMapFS_ReadAndStat(t *testing.T) {
	mfs := fs.NewMapFS(fstest.MapFS{
		"a.css": {Data: []byte("a{}")},
	})

	data, err := mfs.ReadFile("a.css")
	require.NoError(t, err)
	assert.Equal(t, "a{}", string(data))

	info, err := mfs.Stat("/a.css")
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	_, err = mfs.ReadFile("missing.css")
	require.Error(t, err)
}

func TestOSFS_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "css", "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "css", "a.css"), []byte("a{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "css", "nested", "b.css"), []byte("b{}"), 0o600))

	osfs := fs.NewOSFS()
	root := filepath.ToSlash(tmpDir)

	got, err := osfs.Glob(root + "/css/**/*.css")
	require.NoError(t, err)
	assert.Equal(t, []string{root + "/css/a.css", root + "/css/nested/b.css"}, got)

	data, err := osfs.ReadFile(root + "/css/a.css")
	require.NoError(t, err)
	assert.Equal(t, "a{}", string(data))
}
