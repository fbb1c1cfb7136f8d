package editor

import (
	"context"
	"sync/atomic"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/observable"
)

// Session is the single source of truth for which alarm the user is
// currently editing, and whether that alarm is new.
//
// The slot holds *domain.EditedAlarm; nil means no alarm is being edited.
// Every operation replaces the slot wholesale, so a stored EditedAlarm is
// never mutated in place. None of the operations can fail.
type Session struct {
	// editing is the observable slot holding the current edit, nil when idle.
	editing *observable.Value[*domain.EditedAlarm]
	// popupSeen records whether the new-alarm hint popup has been shown.
	// It is reset by CreateNewAlarm and otherwise owned by the UI layer.
	popupSeen atomic.Bool
}

// NewSession returns a session with no alarm being edited.
func NewSession() *Session {
	return &Session{
		editing: observable.NewValue[*domain.EditedAlarm](nil),
	}
}

// ObserveEditing returns a live view of the edit slot. The subscriber
// immediately receives the current value (nil when idle) and then every
// subsequent change until ctx is canceled.
func (s *Session) ObserveEditing(ctx context.Context) <-chan *domain.EditedAlarm {
	return s.editing.Subscribe(ctx)
}

// Editing returns the alarm currently being edited, nil when idle.
func (s *Session) Editing() *domain.EditedAlarm {
	return s.editing.Get()
}

// CreateNewAlarm starts editing a fresh draft alarm and resets the
// new-alarm popup flag. Any prior editing session is replaced.
func (s *Session) CreateNewAlarm() {
	s.editing.Set(&domain.EditedAlarm{
		IsNew: true,
		Alarm: domain.NewDraft(),
	})
	s.popupSeen.Store(false)
}

// Edit starts editing an existing alarm. Any prior editing session is
// replaced unconditionally; the provided alarm is cloned so the session
// holds the only reference to its copy.
func (s *Session) Edit(value *domain.Alarm) {
	s.edit(value, false)
}

// EditNew is Edit for an alarm that does not exist yet, for callers that
// construct the draft themselves instead of going through CreateNewAlarm.
func (s *Session) EditNew(value *domain.Alarm) {
	s.edit(value, true)
}

func (s *Session) edit(value *domain.Alarm, isNew bool) {
	s.editing.Set(&domain.EditedAlarm{
		IsNew: isNew,
		Alarm: value.Clone(),
	})
}

// HideDetails ends the editing session. Safe to call when already idle.
func (s *Session) HideDetails() {
	s.editing.Set(nil)
}

// NewAlarmPopupSeen reports whether the new-alarm hint popup has been shown.
func (s *Session) NewAlarmPopupSeen() bool {
	return s.popupSeen.Load()
}

// SetNewAlarmPopupSeen records whether the new-alarm hint popup has been shown.
func (s *Session) SetNewAlarmPopupSeen(seen bool) {
	s.popupSeen.Store(seen)
}
