package planner

import (
	"log"
	"math/rand"
	"time"

	"quick-meal-planner/internal/recipe"
	"quick-meal-planner/internal/schedule"
)

// Weekly balance limits used by the secondary Recommend pass.
const (
	maxQuickMealsPerWeek  = 3
	maxMediumMealsPerWeek = 3
	minLongMealsPerWeek   = 1
)

// SelectFunc picks an index in [0, n). Injected so tests can make the
// otherwise random selection deterministic.
type SelectFunc func(n int) int

// Engine assigns recipes to day schedules. It never returns an error: an
// empty pool or exhausted buckets leave days unassigned.
type Engine struct {
	selectIdx SelectFunc
}

// NewEngine wires a selection function; nil defaults to uniform random.
func NewEngine(sel SelectFunc) *Engine {
	if sel == nil {
		sel = rand.Intn
	}
	return &Engine{selectIdx: sel}
}

// buckets partitions dinner recipes by total time.
type buckets struct {
	quick  []recipe.Recipe
	medium []recipe.Recipe
	long   []recipe.Recipe
}

func bucketize(pool []recipe.Recipe) buckets {
	var b buckets
	for _, r := range pool {
		if !r.IsDinner() {
			continue
		}
		switch {
		case r.IsQuickMeal():
			b.quick = append(b.quick, r)
		case r.IsMediumMeal():
			b.medium = append(b.medium, r)
		default:
			b.long = append(b.long, r)
		}
	}
	return b
}

func (e *Engine) pick(candidates []recipe.Recipe) *recipe.Recipe {
	if len(candidates) == 0 {
		return nil
	}
	r := candidates[e.selectIdx(len(candidates))]
	return &r
}

// pickFirst returns a recipe from the first non-empty bucket.
func (e *Engine) pickFirst(bucketsInOrder ...[]recipe.Recipe) *recipe.Recipe {
	for _, b := range bucketsInOrder {
		if rec := e.pick(b); rec != nil {
			return rec
		}
	}
	return nil
}

// assignDay applies the per-day selection policy.
func (e *Engine) assignDay(day schedule.DaySchedule, b buckets) *recipe.Recipe {
	switch {
	case day.IsEarlyCooking():
		// Cooking before 4 PM leaves no slack; shortest meal wins.
		return e.pickFirst(b.quick, b.medium, b.long)
	case day.IsBusyNight():
		return e.pickFirst(b.quick, b.medium, b.long)
	default:
		available := day.AvailableTime()
		if available >= 60 {
			if rec := e.pick(b.long); rec != nil {
				return rec
			}
		}
		if available >= 30 {
			if rec := e.pick(b.medium); rec != nil {
				return rec
			}
		}
		return e.pick(b.quick)
	}
}

// Generate assigns a dinner recipe to each day where possible. Days are
// decided independently in schedule order; a day stays unassigned when every
// relevant bucket is empty.
func (e *Engine) Generate(days []schedule.DaySchedule, pool []recipe.Recipe) []schedule.DaySchedule {
	b := bucketize(pool)
	log.Printf("Planning %d days from %d quick, %d medium, %d long dinner recipes",
		len(days), len(b.quick), len(b.medium), len(b.long))

	plan := make([]schedule.DaySchedule, len(days))
	copy(plan, days)
	for i := range plan {
		plan[i].Recommended = e.assignDay(plan[i], b)
	}
	return plan
}

// ReshuffleDay reapplies the per-day policy to the plan entry matching date,
// leaving all other days untouched.
func (e *Engine) ReshuffleDay(plan *WeeklyPlan, date time.Time, pool []recipe.Recipe) {
	day := plan.DayFor(date)
	if day == nil {
		return
	}
	day.Recommended = e.assignDay(*day, bucketize(pool))
}

// ClearDay unconditionally unassigns the plan entry matching date.
func (e *Engine) ClearDay(plan *WeeklyPlan, date time.Time) {
	if day := plan.DayFor(date); day != nil {
		day.Recommended = nil
	}
}

// Recommend is the simpler balanced variant: busy days take quick meals
// first, then the rest of the week fills toward the weekly quotas (at least
// one long meal, at most three medium and three quick).
func (e *Engine) Recommend(days []schedule.DaySchedule, pool []recipe.Recipe) []schedule.DaySchedule {
	dinner := make([]recipe.Recipe, 0, len(pool))
	for _, r := range pool {
		if r.IsDinner() {
			dinner = append(dinner, r)
		}
	}
	b := bucketize(pool)

	plan := make([]schedule.DaySchedule, len(days))
	copy(plan, days)

	var quickUsed, mediumUsed, longUsed int

	for i := range plan {
		if !plan[i].IsBusy {
			continue
		}
		if rec := e.pick(b.quick); rec != nil {
			plan[i].Recommended = rec
			quickUsed++
		}
	}

	for i := range plan {
		if plan[i].Recommended != nil {
			continue
		}

		var rec *recipe.Recipe
		switch {
		case longUsed < minLongMealsPerWeek:
			if rec = e.pick(b.long); rec != nil {
				longUsed++
			}
		case mediumUsed < maxMediumMealsPerWeek:
			if rec = e.pick(b.medium); rec != nil {
				mediumUsed++
			}
		case quickUsed < maxQuickMealsPerWeek:
			if rec = e.pick(b.quick); rec != nil {
				quickUsed++
			}
		default:
			rec = e.pick(dinner)
		}
		plan[i].Recommended = rec
	}

	return plan
}
