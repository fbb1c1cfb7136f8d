package ringtone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// staticSource is a DefaultSoundSource with a fixed answer.
type staticSource struct {
	// locator is the default-alarm locator to report.
	locator string
	// ok indicates whether a default is configured at all.
	ok bool
	// calls counts queries, to assert the no-caching policy.
	calls int
}

// DefaultAlarmSound returns the configured locator.
func (s *staticSource) DefaultAlarmSound() (string, bool) {
	s.calls++

	return s.locator, s.ok
}

const testDefault = "file:///usr/share/sounds/alarms/oxygen.ogg"

// TestEncode verifies the locator produced for each variant.
func TestEncode(t *testing.T) {
	t.Parallel()

	defaults := &staticSource{locator: testDefault, ok: true}

	locator, ok := Encode(Silent{}, defaults, false)
	require.True(t, ok)
	require.Equal(t, LocatorSilent, locator)

	locator, ok = Encode(SystemDefault{}, defaults, false)
	require.True(t, ok)
	require.Equal(t, testDefault, locator)

	// In the alarm-editing context the app default carries its marker.
	locator, ok = Encode(Default{}, defaults, true)
	require.True(t, ok)
	require.Equal(t, testDefault+"?default=true", locator)

	// Outside that context it degrades to the system default.
	locator, ok = Encode(Default{}, defaults, false)
	require.True(t, ok)
	require.Equal(t, testDefault, locator)

	locator, ok = Encode(Sound{URI: "file:///tmp/bell.ogg"}, defaults, true)
	require.True(t, ok)
	require.Equal(t, "file:///tmp/bell.ogg", locator)
}

// TestEncodeNoDefaultConfigured verifies default-backed variants report
// absence when the platform has no default sound.
func TestEncodeNoDefaultConfigured(t *testing.T) {
	t.Parallel()

	defaults := &staticSource{}

	_, ok := Encode(SystemDefault{}, defaults, false)
	require.False(t, ok)

	_, ok = Encode(Default{}, defaults, true)
	require.False(t, ok)

	// Silent and explicit sounds do not consult the platform at all.
	locator, ok := Encode(Silent{}, defaults, false)
	require.True(t, ok)
	require.Equal(t, LocatorSilent, locator)
}

// TestEncodeMarkerOnLocatorWithQuery verifies the marker is appended with
// the right separator when the default locator already has a query part.
func TestEncodeMarkerOnLocatorWithQuery(t *testing.T) {
	t.Parallel()

	defaults := &staticSource{locator: "content://media/alarm?id=7", ok: true}

	locator, ok := Encode(Default{}, defaults, true)
	require.True(t, ok)
	require.Equal(t, "content://media/alarm?id=7&default=true", locator)
}

// TestDecode verifies every decode branch in its specified order.
func TestDecode(t *testing.T) {
	t.Parallel()

	defaults := &staticSource{locator: testDefault, ok: true}

	require.Equal(t, Silent{}, Decode(defaults, ""))
	require.Equal(t, Silent{}, Decode(defaults, LocatorSilent))
	require.Equal(t, SystemDefault{}, Decode(defaults, LocatorDefault))
	require.Equal(t, SystemDefault{}, Decode(defaults, testDefault))
	require.Equal(t, Sound{URI: "file:///tmp/bell.ogg"}, Decode(defaults, "file:///tmp/bell.ogg"))
}

// TestDecodeMarkerPrecedence verifies any locator containing the marker is
// the app default, even when it would also match a literal or the fresh
// default locator.
func TestDecodeMarkerPrecedence(t *testing.T) {
	t.Parallel()

	defaults := &staticSource{locator: testDefault + "?default=true", ok: true}

	for _, locator := range []string{
		testDefault + "?default=true",
		"silent?default=true",
		"default?default=true",
		"content://media/alarm?id=7&default=true&x=1",
	} {
		require.Equal(t, Default{}, Decode(defaults, locator), locator)
	}
}

// TestDecodeRecomputesDefault verifies the well-known default locator is
// re-resolved on every call instead of cached.
func TestDecodeRecomputesDefault(t *testing.T) {
	t.Parallel()

	defaults := &staticSource{locator: "file:///old.ogg", ok: true}

	require.Equal(t, SystemDefault{}, Decode(defaults, "file:///old.ogg"))

	// The platform default changed; the old locator is now just a sound.
	defaults.locator = "file:///new.ogg"

	require.Equal(t, Sound{URI: "file:///old.ogg"}, Decode(defaults, "file:///old.ogg"))
	require.Equal(t, SystemDefault{}, Decode(defaults, "file:///new.ogg"))
	require.Equal(t, 3, defaults.calls)
}

// TestRoundTrips verifies decode(encode(v)) for every variant and both
// default contexts.
func TestRoundTrips(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		identity       Identity
		defaultContext bool
		want           Identity
	}{
		{name: "silent", identity: Silent{}, want: Silent{}},
		{name: "system default", identity: SystemDefault{}, want: SystemDefault{}},
		{name: "app default in editor", identity: Default{}, defaultContext: true, want: Default{}},
		{name: "app default elsewhere", identity: Default{}, want: SystemDefault{}},
		{name: "explicit sound", identity: Sound{URI: "file:///tmp/bell.ogg"}, want: Sound{URI: "file:///tmp/bell.ogg"}},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			defaults := &staticSource{locator: testDefault, ok: true}

			locator, ok := Encode(tc.identity, defaults, tc.defaultContext)
			require.True(t, ok)
			require.Equal(t, tc.want, Decode(defaults, locator))
		})
	}
}
