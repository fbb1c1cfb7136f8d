// Package tones implements the `alarm-clock titles` command: it lists the
// media folder and resolves every ringtone's display title through the
// platform collaborators.
package tones
