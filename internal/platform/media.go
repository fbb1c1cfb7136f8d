package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const fileScheme = "file://"

var (
	// ErrNotASound is returned when a locator points at something that is
	// not a readable sound file.
	ErrNotASound = errors.New("locator does not name a sound file")
	// ErrAudioServerDown is returned when the library is configured to
	// require a running audio daemon and none was found.
	ErrAudioServerDown = errors.New("no audio server is running")
)

// MediaLibrary resolves ringtone titles from sound files in a local folder.
// It implements the title-lookup collaborator of the ringtone package.
type MediaLibrary struct {
	// folder is the directory holding ringtone files; bare filenames in
	// locators are resolved against it.
	folder string
	// requiredServers, when non-empty, lists audio daemons one of which
	// must be running for lookups to succeed.
	requiredServers []string
}

// MediaOption configures a MediaLibrary.
type MediaOption func(*MediaLibrary)

// WithRequiredAudioServers makes lookups fail with ErrAudioServerDown
// unless one of the named daemons is running.
func WithRequiredAudioServers(names ...string) MediaOption {
	return func(m *MediaLibrary) {
		m.requiredServers = names
	}
}

// NewMediaLibrary returns a library over the provided folder.
func NewMediaLibrary(folder string, opts ...MediaOption) *MediaLibrary {
	m := &MediaLibrary{
		folder: filepath.Clean(folder),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Title resolves a locator to a display title derived from the filename.
// The file must exist; a missing or unreadable file is an ordinary fault
// the caller is expected to degrade on.
func (m *MediaLibrary) Title(ctx context.Context, locator string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(m.requiredServers) > 0 {
		if _, ok := detectProcess(m.requiredServers); !ok {
			return "", ErrAudioServerDown
		}
	}

	path := strings.TrimPrefix(locator, fileScheme)
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.folder, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat sound file: %w", err)
	}

	if info.IsDir() {
		return "", ErrNotASound
	}

	return TitleFromFilename(path), nil
}

// List returns the locators of every sound file in the folder,
// sorted by filename.
func (m *MediaLibrary) List() ([]string, error) {
	entries, err := os.ReadDir(m.folder)
	if err != nil {
		return nil, fmt.Errorf("read media folder: %w", err)
	}

	locators := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		locators = append(locators, fileScheme+filepath.Join(m.folder, entry.Name()))
	}

	return locators, nil
}

// TitleFromFilename derives a human-readable title from a sound file path:
// "gentle_sunrise.ogg" becomes "Gentle Sunrise".
func TitleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)

	words := strings.Fields(name)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
