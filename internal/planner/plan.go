package planner

import (
	"time"

	"github.com/google/uuid"

	"quick-meal-planner/internal/schedule"
)

// WeeklyPlan is the current plan: one DaySchedule per day of the requested
// window, each carrying at most one assigned recipe.
type WeeklyPlan struct {
	Days []schedule.DaySchedule `json:"days"`
}

// IsEmpty reports whether the plan has no days at all.
func (p WeeklyPlan) IsEmpty() bool {
	return len(p.Days) == 0
}

// DayFor returns a pointer to the plan's entry for date, or nil.
func (p *WeeklyPlan) DayFor(date time.Time) *schedule.DaySchedule {
	for i := range p.Days {
		if schedule.SameDay(p.Days[i].Date, date) {
			return &p.Days[i]
		}
	}
	return nil
}

// HistoricalMealPlan is an immutable snapshot of a past WeeklyPlan.
type HistoricalMealPlan struct {
	ID         string                 `json:"id"`
	StartDate  time.Time              `json:"start_date"`
	EndDate    time.Time              `json:"end_date"`
	Days       []schedule.DaySchedule `json:"day_schedules"`
	ArchivedAt time.Time              `json:"archived_at"`
}

// WeekLabel renders the plan's date range, e.g. "Mar 3 - Mar 9".
func (h HistoricalMealPlan) WeekLabel() string {
	return h.StartDate.Format("Jan 2") + " - " + h.EndDate.Format("Jan 2")
}

// NewHistoricalPlan snapshots a weekly plan; start and end are the min and
// max of the constituent days.
func NewHistoricalPlan(plan WeeklyPlan) HistoricalMealPlan {
	start, end := plan.Days[0].Date, plan.Days[0].Date
	for _, d := range plan.Days[1:] {
		if d.Date.Before(start) {
			start = d.Date
		}
		if d.Date.After(end) {
			end = d.Date
		}
	}

	days := make([]schedule.DaySchedule, len(plan.Days))
	copy(days, plan.Days)

	return HistoricalMealPlan{
		ID:         uuid.NewString(),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		ArchivedAt: time.Now().UTC(),
	}
}
