package asset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-stroll/animation"
)

func TestEmbeddedAssetsLoad(t *testing.T) {
	l, err := NewLoader("", nil)
	require.NoError(t, err)

	m, err := l.Character()
	require.NoError(t, err)
	assert.Greater(t, m.Height, 0.0)

	for _, name := range []string{animation.ClipGreeting, animation.ClipIdle, animation.ClipSlowRun, animation.ClipFastRun} {
		c, err := l.Clip(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name)
		assert.NotEmpty(t, c.Frames, name)
		assert.True(t, c.Loop, name)
	}

	logos, err := l.Logos()
	require.NoError(t, err)
	assert.NotEmpty(t, logos)
}

func TestDirectoryOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models", "character.yaml"),
		[]byte("name: custom\nheight: 3\n"), 0o644))

	l, err := NewLoader(dir, nil)
	require.NoError(t, err)

	m, err := l.Character()
	require.NoError(t, err)
	assert.Equal(t, "custom", m.Name)

	// Files missing from the directory still come from the built-in set
	_, err = l.Clip(animation.ClipIdle)
	assert.NoError(t, err)
}

func TestNewLoaderRejectsMissingDir(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestNotFound(t *testing.T) {
	l := NewLoaderFS(nil, fstest.MapFS{})
	_, err := l.Clip(animation.ClipIdle)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = l.Logos()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidAssets(t *testing.T) {
	l := NewLoaderFS(nil, fstest.MapFS{
		"models/character.yaml":    {Data: []byte("height: 0\n")},
		"models/logos.yaml":        {Data: []byte("logos:\n  - name: x\n")},
		"animations/idle.yaml":     {Data: []byte("name: idle\nduration: -1\n")},
		"animations/greeting.yaml": {Data: []byte("name: wave\nduration: 1\n")},
		"animations/slow-run.yaml": {Data: []byte("{not yaml")},
	})

	_, err := l.Character()
	assert.Error(t, err)
	_, err = l.Logos()
	assert.Error(t, err)
	_, err = l.Clip(animation.ClipIdle)
	assert.Error(t, err)
	_, err = l.Clip(animation.ClipGreeting)
	assert.Error(t, err)
	_, err = l.Clip(animation.ClipSlowRun)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestClipNameDefaultsToPath(t *testing.T) {
	l := NewLoaderFS(nil, fstest.MapFS{
		"animations/idle.yaml": {Data: []byte("duration: 1\nframes:\n  - ['x']\n")},
	})
	c, err := l.Clip(animation.ClipIdle)
	require.NoError(t, err)
	assert.Equal(t, animation.ClipIdle, c.Name)
}

func TestFuturePollAndWait(t *testing.T) {
	release := make(chan struct{})
	f := Go(func() (int, error) {
		<-release
		return 42, nil
	})

	_, ready, _ := f.Poll()
	assert.False(t, ready)

	close(release)
	v, err := f.Wait()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, ready, err = f.Poll()
	assert.True(t, ready)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestFutureCarriesError(t *testing.T) {
	f := Go(func() (string, error) { return "", ErrNotFound })
	require.Eventually(t, func() bool {
		_, ready, _ := f.Poll()
		return ready
	}, 2*time.Second, time.Millisecond)
	_, _, err := f.Poll()
	assert.ErrorIs(t, err, ErrNotFound)

	_, ready, err := Resolved(1, nil).Poll()
	assert.True(t, ready)
	assert.NoError(t, err)
}
