// Package platform supplies local implementations of the collaborators the
// ringtone codec is written against: a settings-backed default-sound source
// and a media-folder title lookup, plus audio daemon detection via the
// process table.
package platform
