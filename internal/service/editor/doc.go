// Package editor holds the transient "currently editing this alarm" state.
//
// Session exposes the edit slot as an observable value with replay-latest
// semantics for the UI layer, plus the start/edit/clear operations bound to
// user actions. The state is purely in-memory session state; nothing here
// persists alarms.
package editor
