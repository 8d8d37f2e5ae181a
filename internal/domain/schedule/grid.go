package schedule

import (
	"fmt"
	"time"

	"github.com/monochrome-todo/core/internal/domain/entities"
)

// DateLayout is the calendar-day format used throughout the API.
const DateLayout = "2006-01-02"

// HoursPerDay is the number of hour slots in a calendar day.
const HoursPerDay = 24

// Occupies reports whether a task covers the grid cell at the given day
// and hour slot. A task whose end hour precedes its start hour spans past
// midnight: on its own day it covers every slot from the start hour on,
// and on the following day it covers every slot before the end hour.
func Occupies(t *entities.Task, day string, hour int) bool {
	start, end := t.StartIndex(), t.EndIndex()
	if start < 0 || end < 0 || hour < 0 || hour >= HoursPerDay {
		return false
	}

	if t.Date == day {
		if end < start {
			return hour >= start
		}
		return hour >= start && hour < end
	}

	if end < start && nextDay(t.Date) == day {
		return hour < end
	}

	return false
}

func nextDay(day string) string {
	d, err := time.Parse(DateLayout, day)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, 1).Format(DateLayout)
}

// Cell is one occupied slot of a projected grid.
type Cell struct {
	Date    string `json:"date"`
	Hour    int    `json:"hour"`
	TaskIDs []int  `json:"taskIds"`
}

// Grid is the projection of a task set onto a run of days and a sliding
// window of visible hour slots.
type Grid struct {
	Days  []string `json:"days"`
	Hours []int    `json:"hours"`
	Cells []Cell   `json:"cells"`
}

// Project computes which cells of the visible window each task occupies.
// The window starts at startDay, spans days columns, and shows hourCount
// hour rows beginning at hourStart. Only occupied cells are returned.
func Project(tasks []*entities.Task, startDay string, days, hourStart, hourCount int) (*Grid, error) {
	start, err := time.Parse(DateLayout, startDay)
	if err != nil {
		return nil, fmt.Errorf("invalid start day %q: %w", startDay, err)
	}
	if days < 1 {
		return nil, fmt.Errorf("day count must be positive, got %d", days)
	}
	if hourStart < 0 || hourStart >= HoursPerDay {
		return nil, fmt.Errorf("hour window start out of range: %d", hourStart)
	}
	if hourCount < 1 {
		return nil, fmt.Errorf("hour window size must be positive, got %d", hourCount)
	}
	if hourStart+hourCount > HoursPerDay {
		hourCount = HoursPerDay - hourStart
	}

	grid := &Grid{
		Days:  make([]string, days),
		Hours: make([]int, hourCount),
	}
	for i := range grid.Days {
		grid.Days[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	for i := range grid.Hours {
		grid.Hours[i] = hourStart + i
	}

	for _, day := range grid.Days {
		for _, hour := range grid.Hours {
			var ids []int
			for _, t := range tasks {
				if Occupies(t, day, hour) {
					ids = append(ids, t.ID)
				}
			}
			if len(ids) > 0 {
				grid.Cells = append(grid.Cells, Cell{Date: day, Hour: hour, TaskIDs: ids})
			}
		}
	}

	return grid, nil
}

// WithinRange reports whether a task's calendar day falls inside the
// inclusive [from, to] range. Malformed dates never match.
func WithinRange(t *entities.Task, from, to string) bool {
	day, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return false
	}
	lo, err := time.Parse(DateLayout, from)
	if err != nil {
		return false
	}
	hi, err := time.Parse(DateLayout, to)
	if err != nil {
		return false
	}
	return !day.Before(lo) && !day.After(hi)
}

// FilterRange returns the tasks whose calendar day falls inside the
// inclusive [from, to] range, preserving order.
func FilterRange(tasks []*entities.Task, from, to string) []*entities.Task {
	out := make([]*entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if WithinRange(t, from, to) {
			out = append(out, t)
		}
	}
	return out
}
