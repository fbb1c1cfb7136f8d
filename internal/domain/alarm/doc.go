// Package alarm contains core domain types for the alarm-clock business logic.
//
// It defines Alarm (the record the user edits) and EditedAlarm (the alarm
// currently open in the edit form) with Clone helpers to avoid leaking
// internal references.
package alarm
