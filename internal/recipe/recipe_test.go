package recipe

import "testing"

func TestMealBuckets(t *testing.T) {
	// Exactly one of quick/medium/long must hold for every total time;
	// 30 belongs to quick and 60 to medium.
	cases := []struct {
		total  int
		quick  bool
		medium bool
		long   bool
	}{
		{0, true, false, false},
		{30, true, false, false},
		{31, false, true, false},
		{60, false, true, false},
		{61, false, false, true},
		{180, false, false, true},
	}

	for _, tc := range cases {
		r := Recipe{PrepTime: tc.total, CookTime: 0}
		if r.TotalTime() != r.PrepTime+r.CookTime {
			t.Errorf("TotalTime() = %d, want %d", r.TotalTime(), r.PrepTime+r.CookTime)
		}
		if r.IsQuickMeal() != tc.quick || r.IsMediumMeal() != tc.medium || r.IsLongMeal() != tc.long {
			t.Errorf("total %d: got quick=%v medium=%v long=%v", tc.total, r.IsQuickMeal(), r.IsMediumMeal(), r.IsLongMeal())
		}

		count := 0
		for _, b := range []bool{r.IsQuickMeal(), r.IsMediumMeal(), r.IsLongMeal()} {
			if b {
				count++
			}
		}
		if count != 1 {
			t.Errorf("total %d: expected exactly one bucket, got %d", tc.total, count)
		}
	}
}

func TestIsDinner(t *testing.T) {
	if !(Recipe{Categories: []string{"Pasta", "Dinner"}}).IsDinner() {
		t.Error("Expected Dinner category to make a dinner recipe")
	}
	if !(Recipe{Categories: []string{"Weeknight Dinners"}}).IsDinner() {
		t.Error("Expected a tag containing 'Dinner' to match")
	}
	if (Recipe{Categories: []string{"Breakfast"}}).IsDinner() {
		t.Error("Expected Breakfast recipe to not be dinner")
	}
	if (Recipe{}).IsDinner() {
		t.Error("Expected recipe with no categories to not be dinner")
	}
}

func TestFormattedTotalTime(t *testing.T) {
	cases := []struct {
		prep, cook int
		want       string
	}{
		{10, 15, "25 min"},
		{30, 30, "1 hr"},
		{30, 45, "1 hr 15 min"},
	}
	for _, tc := range cases {
		r := Recipe{PrepTime: tc.prep, CookTime: tc.cook}
		if got := r.FormattedTotalTime(); got != tc.want {
			t.Errorf("FormattedTotalTime() = %q, want %q", got, tc.want)
		}
	}
}
