package artifacts

import (
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestNewSetCreatesFourFiles(t *testing.T) {
	set, err := NewSet(t.TempDir(), hclog.NewNullLogger())
	assert.NoError(t, err)
	defer set.Release()

	assert.Equal(t, 4, set.Held())
	for _, kind := range []Kind{GeneratedScript, ColorScheme, StdinChannel, StdoutChannel} {
		path := set.Path(kind)
		assert.NotEmpty(t, path, "missing path for %s", kind)
		_, err := os.Stat(path)
		assert.NoError(t, err, "artifact %s should exist on disk", kind)
	}
}

func TestSetPathsAreUnique(t *testing.T) {
	tmpDir := t.TempDir()
	seen := map[string]bool{}

	for i := 0; i < 16; i++ {
		set, err := NewSet(tmpDir, hclog.NewNullLogger())
		assert.NoError(t, err)
		defer set.Release()

		for _, kind := range []Kind{GeneratedScript, ColorScheme, StdinChannel, StdoutChannel} {
			path := set.Path(kind)
			assert.False(t, seen[path], "path %s issued twice", path)
			seen[path] = true
		}
	}
}

func TestReleaseRemovesEverything(t *testing.T) {
	set, err := NewSet(t.TempDir(), hclog.NewNullLogger())
	assert.NoError(t, err)

	dir := set.Dir()
	set.Release()

	assert.Equal(t, 0, set.Held())
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "session dir should be gone after release")
}

func TestDoubleReleaseIsNoOp(t *testing.T) {
	set, err := NewSet(t.TempDir(), hclog.NewNullLogger())
	assert.NoError(t, err)

	set.Release()
	set.Release()
	assert.Equal(t, 0, set.Held())
}

func TestReleaseToleratesMissingFiles(t *testing.T) {
	set, err := NewSet(t.TempDir(), hclog.NewNullLogger())
	assert.NoError(t, err)

	// Simulate an engine crash that never produced the script.
	assert.NoError(t, os.Remove(set.Path(GeneratedScript)))

	set.Release()
	assert.Equal(t, 0, set.Held())
}
