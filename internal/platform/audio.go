package platform

import (
	"strings"

	ps "github.com/mitchellh/go-ps"
)

// knownAudioServers lists executables that indicate a usable audio stack.
var knownAudioServers = []string{
	"pipewire",
	"pulseaudio",
	"wireplumber",
	"jackd",
}

// DetectAudioServer scans the process table for a known audio daemon and
// returns its executable name. Playback and title lookups are expected to
// degrade when none is running.
func DetectAudioServer() (string, bool) {
	return detectProcess(knownAudioServers)
}

// detectProcess returns the first running process whose executable name
// starts with one of the provided names (extensions and suffixes ignored).
func detectProcess(names []string) (string, bool) {
	processes, err := ps.Processes()
	if err != nil {
		return "", false
	}

	for _, process := range processes {
		executable := strings.ToLower(process.Executable())
		for _, name := range names {
			if strings.HasPrefix(executable, name) {
				return process.Executable(), true
			}
		}
	}

	return "", false
}
