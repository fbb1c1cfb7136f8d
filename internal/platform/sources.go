package platform

import (
	"github.com/oshokin/alarm-clock/internal/config"
)

// SettingsSource resolves the platform default-alarm locator from the
// settings file. The file is re-read on every call on purpose: the codec's
// contract is that the well-known default is computed fresh, so an edited
// settings file takes effect immediately.
type SettingsSource struct {
	// path is the settings file location, empty for the default filename.
	path string
}

// NewSettingsSource returns a source backed by the settings file at path.
func NewSettingsSource(path string) *SettingsSource {
	return &SettingsSource{
		path: path,
	}
}

// DefaultAlarmSound reads the settings file and returns the configured
// default-alarm locator. Any read failure counts as "no default".
func (s *SettingsSource) DefaultAlarmSound() (string, bool) {
	cfg, err := config.Load(s.path)
	if err != nil || cfg.DefaultAlarmSound == "" {
		return "", false
	}

	return cfg.DefaultAlarmSound, true
}

// StaticSource is a DefaultSoundSource with a fixed locator, for wiring
// code that already loaded its configuration once and for tests.
type StaticSource struct {
	// Locator is the default-alarm locator; empty means none configured.
	Locator string
}

// DefaultAlarmSound returns the fixed locator.
func (s StaticSource) DefaultAlarmSound() (string, bool) {
	return s.Locator, s.Locator != ""
}
