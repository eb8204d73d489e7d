package models

import (
	"strings"
	"time"
)

// Reminder represents a scheduled task note shown on the dashboard calendar.
type Reminder struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	ScheduledAt time.Time `json:"scheduledAt" bson:"scheduled_at"`
	Note        string    `json:"note,omitempty" bson:"note,omitempty"`
}

// ReminderInput carries the raw form values for creating or replacing a reminder.
type ReminderInput struct {
	Title       string    `json:"title" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Note        string    `json:"note"`
}

// Materialize normalizes the input and produces the reminder stored under id.
// Schedules are kept at whole-minute precision.
func (in ReminderInput) Materialize(id string) Reminder {
	return Reminder{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		ScheduledAt: in.ScheduledAt.Truncate(time.Minute),
		Note:        strings.TrimSpace(in.Note),
	}
}
