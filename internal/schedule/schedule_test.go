package schedule

import (
	"testing"
	"time"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
}

func at(base time.Time, hour, minute int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}

func TestDayScheduleClassification(t *testing.T) {
	base := day(t)

	t.Run("NoCookEvent", func(t *testing.T) {
		d := NewDaySchedule(base, []CalendarEvent{
			{Title: "Standup", Start: at(base, 9, 0), End: at(base, 9, 30)},
		})

		if d.CookDinnerEvent() != nil {
			t.Error("Expected no cook dinner event")
		}
		if d.AvailableTime() != 120 {
			t.Errorf("Expected 120 minutes available, got %d", d.AvailableTime())
		}
		if d.IsBusyNight() {
			t.Error("Expected not a busy night")
		}
		if d.IsEarlyCooking() {
			t.Error("Expected no early cooking")
		}
	})

	t.Run("EarlyCooking", func(t *testing.T) {
		d := NewDaySchedule(base, []CalendarEvent{
			{Title: "Cook Dinner", Start: at(base, 15, 30), End: at(base, 16, 0)},
		})

		if !d.IsEarlyCooking() {
			t.Error("Expected early cooking for a 15:30 cook event")
		}
		if d.AvailableTime() != 30 {
			t.Errorf("Expected 30 minutes available, got %d", d.AvailableTime())
		}
		if !d.IsBusyNight() {
			t.Error("Expected early cooking to count as a busy night")
		}
	})

	t.Run("CookEventTitleIsCaseInsensitive", func(t *testing.T) {
		d := NewDaySchedule(base, []CalendarEvent{
			{Title: "COOK DINNER for guests", Start: at(base, 17, 0), End: at(base, 18, 0)},
		})
		if d.CookDinnerEvent() == nil {
			t.Fatal("Expected cook dinner event to be found")
		}
	})

	t.Run("NextEventWithin30Minutes", func(t *testing.T) {
		d := NewDaySchedule(base, []CalendarEvent{
			{Title: "Cook Dinner", Start: at(base, 17, 0), End: at(base, 17, 30)},
			{Title: "Soccer practice", Start: at(base, 17, 45), End: at(base, 19, 0)},
		})

		if d.AvailableTime() != 30 {
			t.Errorf("Expected 30 minutes available, got %d", d.AvailableTime())
		}
		if !d.IsBusyNight() {
			t.Error("Expected a busy night with an event 15 minutes after cooking")
		}
	})

	t.Run("ExactGapBetween30And60", func(t *testing.T) {
		d := NewDaySchedule(base, []CalendarEvent{
			{Title: "Cook Dinner", Start: at(base, 17, 0), End: at(base, 17, 30)},
			{Title: "Movie", Start: at(base, 18, 15), End: at(base, 20, 0)},
		})

		if d.AvailableTime() != 45 {
			t.Errorf("Expected the exact 45 minute gap, got %d", d.AvailableTime())
		}
		if d.IsBusyNight() {
			t.Error("Expected not a busy night with a 45 minute gap")
		}
	})

	t.Run("NextEventAnHourOrMoreAway", func(t *testing.T) {
		d := NewDaySchedule(base, []CalendarEvent{
			{Title: "Cook Dinner", Start: at(base, 17, 0), End: at(base, 17, 30)},
			{Title: "Late show", Start: at(base, 21, 0), End: at(base, 23, 0)},
		})

		if d.AvailableTime() != 120 {
			t.Errorf("Expected 120 minutes available, got %d", d.AvailableTime())
		}
	})
}

func TestIsBusy(t *testing.T) {
	base := day(t)

	busy := NewDaySchedule(base, []CalendarEvent{
		{Title: "Dinner party", Start: at(base, 16, 0), End: at(base, 22, 0)},
	})
	if !busy.IsBusy {
		t.Error("Expected a 16:00 event to mark the day busy")
	}

	free := NewDaySchedule(base, []CalendarEvent{
		{Title: "Lunch", Start: at(base, 12, 0), End: at(base, 13, 0)},
	})
	if free.IsBusy {
		t.Error("Expected a midday-only day to not be busy")
	}
}

func TestBuildWeek(t *testing.T) {
	from := time.Date(2024, 3, 4, 14, 30, 0, 0, time.UTC) // mid-afternoon start

	events := []CalendarEvent{
		{Title: "Day one evening", Start: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)},
		{Title: "Day three lunch", Start: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)},
		{Title: "Outside window", Start: time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)},
	}

	week := BuildWeek(events, from, 7)

	if len(week) != 7 {
		t.Fatalf("Expected exactly 7 day schedules, got %d", len(week))
	}
	if !week[0].Date.Equal(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected the window to start at local midnight, got %v", week[0].Date)
	}
	if len(week[0].Events) != 1 || week[0].Events[0].Title != "Day one evening" {
		t.Errorf("Unexpected day-one events: %v", week[0].Events)
	}
	if len(week[2].Events) != 1 || week[2].Events[0].Title != "Day three lunch" {
		t.Errorf("Unexpected day-three events: %v", week[2].Events)
	}
	for i := 3; i < 7; i++ {
		if len(week[i].Events) != 0 {
			t.Errorf("Expected day %d to have no events, got %v", i, week[i].Events)
		}
	}
}
