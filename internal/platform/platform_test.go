package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/config"
)

// writeSound creates an empty sound file and returns its path.
func writeSound(t *testing.T, folder, name string) string {
	t.Helper()

	path := filepath.Join(folder, name)
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

	return path
}

// TestSettingsSourceReadsFresh verifies the default locator follows the
// settings file between calls.
func TestSettingsSourceReadsFresh(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	source := NewSettingsSource(path)

	// No settings file yet: no default.
	_, ok := source.DefaultAlarmSound()
	require.False(t, ok)

	cfg := &config.Config{
		MediaFolder:       "/tmp/ringtones",
		DefaultAlarmSound: "file:///tmp/ringtones/beep.ogg",
	}
	require.NoError(t, config.Save(path, cfg))

	locator, ok := source.DefaultAlarmSound()
	require.True(t, ok)
	require.Equal(t, cfg.DefaultAlarmSound, locator)

	// A changed file takes effect on the very next call.
	cfg.DefaultAlarmSound = "file:///tmp/ringtones/chime.ogg"
	require.NoError(t, config.Save(path, cfg))

	locator, ok = source.DefaultAlarmSound()
	require.True(t, ok)
	require.Equal(t, "file:///tmp/ringtones/chime.ogg", locator)
}

// TestStaticSource verifies the fixed source and its empty-locator case.
func TestStaticSource(t *testing.T) {
	t.Parallel()

	locator, ok := StaticSource{Locator: "file:///a.ogg"}.DefaultAlarmSound()
	require.True(t, ok)
	require.Equal(t, "file:///a.ogg", locator)

	_, ok = StaticSource{}.DefaultAlarmSound()
	require.False(t, ok)
}

// TestMediaLibraryTitle verifies filename-derived titles for absolute,
// file-scheme and bare locators.
func TestMediaLibraryTitle(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	path := writeSound(t, folder, "gentle_sunrise.ogg")

	library := NewMediaLibrary(folder)
	ctx := context.Background()

	title, err := library.Title(ctx, path)
	require.NoError(t, err)
	require.Equal(t, "Gentle Sunrise", title)

	title, err = library.Title(ctx, "file://"+path)
	require.NoError(t, err)
	require.Equal(t, "Gentle Sunrise", title)

	title, err = library.Title(ctx, "gentle_sunrise.ogg")
	require.NoError(t, err)
	require.Equal(t, "Gentle Sunrise", title)
}

// TestMediaLibraryTitleFaults verifies missing files, directories and
// canceled contexts are reported as errors.
func TestMediaLibraryTitleFaults(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	library := NewMediaLibrary(folder)

	_, err := library.Title(context.Background(), "missing.ogg")
	require.Error(t, err)

	_, err = library.Title(context.Background(), folder)
	require.ErrorIs(t, err, ErrNotASound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = library.Title(ctx, "anything.ogg")
	require.ErrorIs(t, err, context.Canceled)
}

// TestMediaLibraryRequiredAudioServer verifies the audio gate fails lookups
// when no matching daemon is running.
func TestMediaLibraryRequiredAudioServer(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	writeSound(t, folder, "beep.ogg")

	library := NewMediaLibrary(folder,
		WithRequiredAudioServers("no-such-audio-daemon-"+time.Now().Format("150405")))

	_, err := library.Title(context.Background(), "beep.ogg")
	require.ErrorIs(t, err, ErrAudioServerDown)
}

// TestMediaLibraryList verifies folder listing skips directories and
// produces file-scheme locators.
func TestMediaLibraryList(t *testing.T) {
	t.Parallel()

	folder := t.TempDir()
	writeSound(t, folder, "beep.ogg")
	writeSound(t, folder, "chime.ogg")
	require.NoError(t, os.Mkdir(filepath.Join(folder, "subdir"), 0o700))

	library := NewMediaLibrary(folder)

	locators, err := library.List()
	require.NoError(t, err)
	require.Len(t, locators, 2)

	for _, locator := range locators {
		require.Contains(t, locator, "file://")
	}
}

// TestTitleFromFilename verifies the humanization rules.
func TestTitleFromFilename(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"gentle_sunrise.ogg":     "Gentle Sunrise",
		"/abs/path/oxygen.ogg":   "Oxygen",
		"morning-glory.mp3":      "Morning Glory",
		"already Titled.wav":     "Already Titled",
		"many___underscores.oga": "Many Underscores",
	}

	for path, want := range cases {
		require.Equal(t, want, TitleFromFilename(path), path)
	}
}
