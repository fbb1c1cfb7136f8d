package ringtone

import "strings"

const (
	// LocatorSilent is the reserved literal exchanged with the picker for
	// an explicit "no sound" choice.
	LocatorSilent = "silent"

	// LocatorDefault is the reserved literal some pickers return for the
	// platform default sound.
	LocatorDefault = "default"

	// defaultMarker annotates a default locator so a picker result can be
	// told apart from the plain system default when it comes back.
	defaultMarker = "default=true"
)

// DefaultSoundSource resolves the platform's well-known default-alarm-sound
// locator. The second return is false when no default is configured.
//
// Implementations are queried on every Encode/Decode call rather than
// cached, so a platform-side change of the default is picked up immediately.
type DefaultSoundSource interface {
	DefaultAlarmSound() (string, bool)
}

// Encode maps an identity to the locator exchanged with the native picker.
// defaultContext is true while editing an alarm, where Default keeps its
// own meaning; elsewhere Default degrades to the system default.
//
// The second return is false when no locator can be produced, which only
// happens for the default-backed variants on a platform with no default
// sound configured.
func Encode(id Identity, defaults DefaultSoundSource, defaultContext bool) (string, bool) {
	switch v := id.(type) {
	case Silent:
		return LocatorSilent, true
	case SystemDefault:
		return defaults.DefaultAlarmSound()
	case Default:
		locator, ok := defaults.DefaultAlarmSound()
		if !ok {
			return "", false
		}

		if !defaultContext {
			return locator, true
		}

		return withDefaultMarker(locator), true
	case Sound:
		return v.URI, true
	}

	// The interface is sealed; no fifth variant exists.
	return "", false
}

// Decode maps a picker-result locator back to an identity. It is total:
// every input, including garbage, maps to some variant.
//
// The branch order is load-bearing. The marker check must run before the
// literal comparisons so an annotated default locator is recognized as
// Default instead of leaking through to Sound, and before the fresh
// default-locator comparison for the same reason.
func Decode(defaults DefaultSoundSource, locator string) Identity {
	switch {
	case locator == "":
		return Silent{}
	case strings.Contains(locator, defaultMarker):
		return Default{}
	case locator == LocatorSilent:
		return Silent{}
	case locator == LocatorDefault:
		return SystemDefault{}
	}

	if def, ok := defaults.DefaultAlarmSound(); ok && locator == def {
		return SystemDefault{}
	}

	return Sound{URI: locator}
}

// withDefaultMarker appends the default annotation as a query parameter.
func withDefaultMarker(locator string) string {
	if strings.Contains(locator, "?") {
		return locator + "&" + defaultMarker
	}

	return locator + "?" + defaultMarker
}
