// Package schedule classifies calendar days for meal planning. All derived
// properties recompute from the event list; there is no hidden state.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"quick-meal-planner/internal/recipe"
)

// Evening events (16:00 or later) mark a day as busy.
const eveningHour = 16

// Cooking gaps shorter than this make a busy night.
const busyGapMinutes = 30

// CalendarEvent is a read-only event supplied by an external calendar source.
type CalendarEvent struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DaySchedule is one day of the planning window. Events are not persisted;
// they are reloaded from the calendar source, so IsBusy is computed at
// construction and stored alongside the assignment.
type DaySchedule struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Events []CalendarEvent `json:"-"`
	IsBusy bool            `json:"is_busy"`

	// Recommended is set by the recommendation engine and may be cleared
	// or reshuffled on demand.
	Recommended *recipe.Recipe `json:"recommended_recipe,omitempty"`
}

// NewDaySchedule builds a DaySchedule for date from its events.
func NewDaySchedule(date time.Time, events []CalendarEvent) DaySchedule {
	busy := false
	for _, ev := range events {
		if ev.Start.Hour() >= eveningHour {
			busy = true
			break
		}
	}
	return DaySchedule{
		ID:     uuid.NewString(),
		Date:   date,
		Events: events,
		IsBusy: busy,
	}
}

// CookDinnerEvent returns the first event whose title contains "cook dinner",
// case-insensitive, or nil if the day has none.
func (d DaySchedule) CookDinnerEvent() *CalendarEvent {
	for i := range d.Events {
		if strings.Contains(strings.ToLower(d.Events[i].Title), "cook dinner") {
			return &d.Events[i]
		}
	}
	return nil
}

// IsEarlyCooking reports whether the cook-dinner event starts before 16:00.
func (d DaySchedule) IsEarlyCooking() bool {
	cook := d.CookDinnerEvent()
	if cook == nil {
		return false
	}
	return cook.Start.Hour() < eveningHour
}

// nextEventAfterCooking returns the earliest event starting after the
// cook-dinner event, or nil.
func (d DaySchedule) nextEventAfterCooking(cook *CalendarEvent) *CalendarEvent {
	var after []CalendarEvent
	for _, ev := range d.Events {
		if ev.Start.After(cook.Start) {
			after = append(after, ev)
		}
	}
	if len(after) == 0 {
		return nil
	}
	sort.Slice(after, func(i, j int) bool { return after[i].Start.Before(after[j].Start) })
	return &after[0]
}

// AvailableTime estimates the minutes free for cooking.
//
// With no cook-dinner event the day defaults to 120 minutes. Early cooking
// leaves 30. Otherwise the gap between the cook event's end and the next
// event decides: under 30 minutes leaves 30, no next event or an hour or
// more leaves 120, anything in between is the exact gap.
func (d DaySchedule) AvailableTime() int {
	cook := d.CookDinnerEvent()
	if cook == nil {
		return 120
	}

	if d.IsEarlyCooking() {
		return 30
	}

	next := d.nextEventAfterCooking(cook)
	if next == nil {
		return 120
	}

	gap := int(next.Start.Sub(cook.End).Minutes())
	switch {
	case gap < busyGapMinutes:
		return 30
	case gap >= 60:
		return 120
	default:
		return gap
	}
}

// IsBusyNight reports whether the evening is too tight for a long meal:
// cooking starts early, or the next event follows the cook event's end by
// less than 30 minutes.
func (d DaySchedule) IsBusyNight() bool {
	cook := d.CookDinnerEvent()
	if cook == nil {
		return false
	}

	if d.IsEarlyCooking() {
		return true
	}

	next := d.nextEventAfterCooking(cook)
	return next != nil && int(next.Start.Sub(cook.End).Minutes()) < busyGapMinutes
}

// BuildWeek groups a flat event list into exactly days consecutive
// DaySchedules starting at from's local midnight.
func BuildWeek(events []CalendarEvent, from time.Time, days int) []DaySchedule {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())

	schedules := make([]DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		dayStart := start.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var dayEvents []CalendarEvent
		for _, ev := range events {
			if !ev.Start.Before(dayStart) && ev.Start.Before(dayEnd) {
				dayEvents = append(dayEvents, ev)
			}
		}

		schedules = append(schedules, NewDaySchedule(dayStart, dayEvents))
	}
	return schedules
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
