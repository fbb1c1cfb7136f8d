// Package config defines local settings used by the alarm-clock binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the media folder, the platform default-alarm locator
// and the title lookup timeout.
package config
