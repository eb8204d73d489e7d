package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// UpcomingLimit caps the upcoming-reminders list on the dashboard.
const UpcomingLimit = 8

const isoDateLayout = "2006-01-02"

var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var spanishWeekdays = []string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

// CalendarDay is one cell of the dashboard calendar grid.
type CalendarDay struct {
	Date           time.Time         `json:"date"`
	ISODate        string            `json:"isoDate"`
	Label          int               `json:"label"`
	InCurrentMonth bool              `json:"inCurrentMonth"`
	IsToday        bool              `json:"isToday"`
	Reminders      []models.Reminder `json:"reminders"`
}

// CalendarView is the dashboard calendar: a Monday-first six-week grid around
// the shown month plus the upcoming-reminder list.
type CalendarView struct {
	MonthLabel        string            `json:"monthLabel"`
	TodayLabel        string            `json:"todayLabel"`
	Weeks             [][]CalendarDay   `json:"weeks"`
	UpcomingReminders []models.Reminder `json:"upcomingReminders"`
}

// BuildCalendar lays out the calendar grid for the month containing month,
// bucketing reminders per day. now anchors the "today" marker and the
// upcoming-reminders window.
func BuildCalendar(month time.Time, now time.Time, reminders []models.Reminder) CalendarView {
	today := startOfDay(now)
	monthStart := startOfMonth(month)
	cursor := startOfWeek(monthStart)
	byDay := GroupRemindersByDay(reminders)

	weeks := make([][]CalendarDay, 0, 6)
	for weekIndex := 0; weekIndex < 6; weekIndex++ {
		week := make([]CalendarDay, 0, 7)
		for dayIndex := 0; dayIndex < 7; dayIndex++ {
			iso := cursor.Format(isoDateLayout)
			week = append(week, CalendarDay{
				Date:           cursor,
				ISODate:        iso,
				Label:          cursor.Day(),
				InCurrentMonth: cursor.Month() == monthStart.Month(),
				IsToday:        cursor.Equal(today),
				Reminders:      byDay[iso],
			})
			cursor = cursor.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}

	return CalendarView{
		MonthLabel:        monthLabel(monthStart),
		TodayLabel:        todayLabel(today),
		Weeks:             weeks,
		UpcomingReminders: UpcomingReminders(reminders, now),
	}
}

// GroupRemindersByDay buckets reminders under their calendar day (ISO date
// key), each bucket ordered by time of day.
func GroupRemindersByDay(reminders []models.Reminder) map[string][]models.Reminder {
	byDay := make(map[string][]models.Reminder)
	for _, reminder := range reminders {
		key := reminder.ScheduledAt.Format(isoDateLayout)
		byDay[key] = append(byDay[key], reminder)
	}
	for _, bucket := range byDay {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].ScheduledAt.Before(bucket[j].ScheduledAt)
		})
	}
	return byDay
}

// UpcomingReminders returns the reminders scheduled today or later, ascending,
// capped at UpcomingLimit.
func UpcomingReminders(reminders []models.Reminder, now time.Time) []models.Reminder {
	today := startOfDay(now)

	upcoming := make([]models.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		if !startOfDay(reminder.ScheduledAt).Before(today) {
			upcoming = append(upcoming, reminder)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledAt.Before(upcoming[j].ScheduledAt)
	})

	if len(upcoming) > UpcomingLimit {
		upcoming = upcoming[:UpcomingLimit]
	}
	return upcoming
}

func monthLabel(monthStart time.Time) string {
	return capitalize(fmt.Sprintf("%s de %d", spanishMonths[monthStart.Month()-1], monthStart.Year()))
}

func todayLabel(today time.Time) string {
	return capitalize(fmt.Sprintf("%s, %d de %s de %d",
		spanishWeekdays[today.Weekday()], today.Day(), spanishMonths[today.Month()-1], today.Year()))
}

func capitalize(value string) string {
	if value == "" {
		return value
	}
	runes := []rune(value)
	first := runes[0]
	if first >= 'a' && first <= 'z' {
		first = first - 'a' + 'A'
	}
	return string(first) + string(runes[1:])
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday at or before t.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
