// ABOUTME: Pure scheduling policy: next workout day, labels, streak.
// ABOUTME: Operates on (history, settings, today); drafts never count.
package plan

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/ironlog/internal/models"
)

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// midnight normalizes a moment to its calendar date. All scheduling
// comparisons are date comparisons, never instant comparisons.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func daysBetween(from, to time.Time) int {
	return int(midnight(to).Sub(midnight(from)).Hours() / 24)
}

// weekdayDay maps a calendar weekday to the default day index:
// Monday=1 .. Saturday=6, Sunday=7.
func weekdayDay(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// completedOn reports whether any completed session exists on date.
func completedOn(sessions []models.WorkoutSession, date string) bool {
	for _, s := range sessions {
		if s.Date == date && s.State() == models.StateCompleted {
			return true
		}
	}
	return false
}

// CycleStartDate returns the date of the earliest completed Day 1
// session. Without one there is no established cycle.
func CycleStartDate(sessions []models.WorkoutSession) (time.Time, bool) {
	var start time.Time
	found := false
	for _, s := range sessions {
		if s.State() != models.StateCompleted || s.DayIndex != 1 {
			continue
		}
		d, ok := parseDate(s.Date)
		if !ok {
			continue
		}
		if !found || d.Before(start) {
			start = d
			found = true
		}
	}
	return start, found
}

// WorkoutDayForDate returns the scheduled day index for a date given
// the cycle start. Dates before the cycle start have no scheduled day.
func WorkoutDayForDate(date, cycleStart time.Time) (int, bool) {
	diff := daysBetween(cycleStart, date)
	if diff < 0 {
		return 0, false
	}
	return diff%7 + 1, true
}

// NextWorkoutDay computes the day index the user should do next.
// Priority: manual override, then today's scheduled day if not yet
// completed, then a forward scan, then the successor of the last
// completed day.
func NextWorkoutDay(sessions []models.WorkoutSession, settings models.AppSettings, today time.Time) int {
	if settings.ManualNextDay != nil {
		return *settings.ManualNextDay
	}

	today = midnight(today)
	todayStr := today.Format(models.DateFormat)

	if cycleStart, ok := CycleStartDate(sessions); ok {
		todayDay, scheduled := WorkoutDayForDate(today, cycleStart)
		if scheduled && !completedOn(sessions, todayStr) {
			return todayDay
		}
		for ahead := 1; ahead <= 7; ahead++ {
			future := today.AddDate(0, 0, ahead)
			if d, ok := WorkoutDayForDate(future, cycleStart); ok {
				return d
			}
		}
	} else {
		// No established cycle: fall back to Monday=Day 1 mapping.
		if !completedOn(sessions, todayStr) {
			return weekdayDay(today)
		}
		for ahead := 1; ahead <= 7; ahead++ {
			future := today.AddDate(0, 0, ahead)
			futureDay := weekdayDay(future)
			futureStr := future.Format(models.DateFormat)
			if !completedDayOn(sessions, futureStr, futureDay) {
				return futureDay
			}
		}
	}

	last, ok := lastCompleted(sessions)
	if !ok {
		return weekdayDay(today)
	}
	return NextDayIndex(last.DayIndex, settings.IncludeDay4Recovery)
}

func completedDayOn(sessions []models.WorkoutSession, date string, dayIndex int) bool {
	for _, s := range sessions {
		if s.Date == date && s.DayIndex == dayIndex && s.State() == models.StateCompleted {
			return true
		}
	}
	return false
}

func lastCompleted(sessions []models.WorkoutSession) (models.WorkoutSession, bool) {
	var last models.WorkoutSession
	found := false
	for _, s := range sessions {
		if s.State() != models.StateCompleted {
			continue
		}
		if !found || s.Date > last.Date {
			last = s
			found = true
		}
	}
	return last, found
}

// DayOfWeekLabel names the weekday a day index falls on. With an
// established cycle, Day 1 falls on the cycle start date's weekday;
// otherwise Day 1 defaults to Monday.
func DayOfWeekLabel(dayIndex int, cycleStart *time.Time) string {
	if cycleStart == nil {
		i := dayIndex
		if dayIndex == 7 {
			i = 0
		}
		if i < 0 || i >= len(dayNames) {
			return "Unknown"
		}
		return dayNames[i]
	}
	target := (int(midnight(*cycleStart).Weekday()) + dayIndex - 1) % 7
	return dayNames[target]
}

// Streak counts consecutive calendar days with a completed session,
// walking back from the most recent one. A gap of more than one day
// between today and the most recent completed date breaks the streak.
func Streak(sessions []models.WorkoutSession, today time.Time) int {
	seen := make(map[string]bool)
	var dates []time.Time
	for _, s := range sessions {
		if s.State() != models.StateCompleted || seen[s.Date] {
			continue
		}
		if d, ok := parseDate(s.Date); ok {
			seen[s.Date] = true
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	if daysBetween(dates[0], today) > 1 {
		return 0
	}

	streak := 0
	current := dates[0]
	for _, d := range dates {
		if daysBetween(d, current) <= 1 {
			streak++
			current = d
		} else {
			break
		}
	}
	return streak
}

// WorkoutsThisWeek counts completed sessions since the start of the
// calendar week (Sunday-anchored).
func WorkoutsThisWeek(sessions []models.WorkoutSession, today time.Time) int {
	today = midnight(today)
	startOfWeek := today.AddDate(0, 0, -int(today.Weekday()))
	n := 0
	for _, s := range sessions {
		if s.State() != models.StateCompleted {
			continue
		}
		if d, ok := parseDate(s.Date); ok && !d.Before(startOfWeek) {
			n++
		}
	}
	return n
}

// StepsAverage7Days averages the step counts recorded over the trailing
// seven dates. Dates without an entry are excluded from the mean.
func StepsAverage7Days(steps []models.StepsEntry, today time.Time) int {
	today = midnight(today)
	window := make(map[string]bool, 7)
	for i := 0; i < 7; i++ {
		window[today.AddDate(0, 0, -i).Format(models.DateFormat)] = true
	}

	total, count := 0, 0
	for _, e := range steps {
		if window[e.Date] {
			total += e.StepCount
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(count)))
}
