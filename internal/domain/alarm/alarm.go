package alarm

import (
	"time"

	"github.com/google/uuid"
)

// Alarm is the alarm record as edited by the user.
type Alarm struct {
	// ID uniquely identifies the alarm for its whole lifetime.
	ID uuid.UUID
	// Label is the user-visible alarm name. May be empty.
	Label string
	// Hour is the fire hour in 24-hour local time.
	Hour int
	// Minute is the fire minute.
	Minute int
	// Enabled indicates whether the alarm is armed.
	Enabled bool
	// DeleteAfterUse marks the alarm for removal once it has fired and
	// been dismissed. Fresh drafts are created with this set.
	DeleteAfterUse bool
	// Ringtone is the encoded ringtone locator for this alarm.
	Ringtone string
	// Days lists the weekdays the alarm repeats on. Empty means one-shot.
	Days []time.Weekday
}

// NewDraft returns a fresh alarm for a creation flow.
// The draft is enabled and marked delete-after-use so an abandoned
// one-shot alarm cleans itself up after it fires.
func NewDraft() *Alarm {
	return &Alarm{
		ID:             uuid.New(),
		Enabled:        true,
		DeleteAfterUse: true,
	}
}

// Clone returns a deep copy of the alarm to avoid leaking internal references.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	if a.Days != nil {
		cloned.Days = make([]time.Weekday, len(a.Days))
		copy(cloned.Days, a.Days)
	}

	return &cloned
}

// EditedAlarm describes the alarm currently open in the edit form.
// It is replaced wholesale on every change and never mutated in place.
type EditedAlarm struct {
	// IsNew is true when the session is creating an alarm rather than
	// modifying an existing one.
	IsNew bool
	// Alarm is the alarm data being edited.
	Alarm *Alarm
}

// Clone returns a deep copy of the edited alarm.
func (e *EditedAlarm) Clone() *EditedAlarm {
	if e == nil {
		return nil
	}

	return &EditedAlarm{
		IsNew: e.IsNew,
		Alarm: e.Alarm.Clone(),
	}
}
