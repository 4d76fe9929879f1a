package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ViewType names a derived subset of tasks.
type ViewType string

const (
	ViewAll          ViewType = "all"
	ViewToday        ViewType = "today"
	ViewUpcoming     ViewType = "upcoming"
	ViewPending      ViewType = "pending"
	ViewHighRisk     ViewType = "high-risk"
	ViewExpiringSoon ViewType = "expiring-soon"
	ViewPerson       ViewType = "person"
)

// DefaultDaysAhead is the upcoming window when none is given.
const DefaultDaysAhead = 7

// ExpiryCategoryMarker identifies the renewal categories used by the expiring-soon view.
const ExpiryCategoryMarker = "Expiry & Renewals"

const expiringSoonDays = 30

func (v ViewType) String() string { return string(v) }

func (v ViewType) IsValid() bool {
	switch v {
	case ViewAll, ViewToday, ViewUpcoming, ViewPending, ViewHighRisk, ViewExpiringSoon, ViewPerson:
		return true
	}
	return false
}

// ViewFilter selects a view. PersonID is used by ViewPerson, DaysAhead by ViewUpcoming.
type ViewFilter struct {
	Type      ViewType
	PersonID  *uuid.UUID
	DaysAhead int
}

func (f ViewFilter) daysAhead() int {
	if f.DaysAhead <= 0 {
		return DefaultDaysAhead
	}
	return f.DaysAhead
}

// FilterTasksByView returns the tasks belonging to the view. The input slice
// is never modified. Calendar days are evaluated in now's location. An
// unknown view type returns the input unchanged.
func FilterTasksByView(tasks []Task, filter ViewFilter, now time.Time) []Task {
	var keep func(Task) bool

	switch filter.Type {
	case ViewAll:
		return tasks
	case ViewToday:
		keep = func(t Task) bool {
			return sameDay(t.DueAt, now) || sameDay(t.ScheduledFor, now)
		}
	case ViewUpcoming:
		days := filter.daysAhead()
		keep = func(t Task) bool {
			return withinDays(t.DueAt, now, days) || withinDays(t.ScheduledFor, now, days)
		}
	case ViewPending:
		keep = func(t Task) bool { return t.Status.IsPending() }
	case ViewHighRisk:
		keep = func(t Task) bool { return t.HighRisk }
	case ViewExpiringSoon:
		keep = func(t Task) bool {
			return t.HasCategoryContaining(ExpiryCategoryMarker) && withinDays(t.DueAt, now, expiringSoonDays)
		}
	case ViewPerson:
		if filter.PersonID == nil {
			return []Task{}
		}
		keep = func(t Task) bool { return t.HasPerson(*filter.PersonID) }
	default:
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// ViewTitle returns the heading shown for a view.
func ViewTitle(filter ViewFilter) string {
	switch filter.Type {
	case ViewAll:
		return "All Tasks"
	case ViewToday:
		return "Today"
	case ViewUpcoming:
		return fmt.Sprintf("Upcoming (%d days)", filter.daysAhead())
	case ViewPending:
		return "Pending"
	case ViewHighRisk:
		return "High Risk"
	case ViewExpiringSoon:
		return "Expiring Soon"
	case ViewPerson:
		return "Per Person"
	default:
		return "Tasks"
	}
}

// ViewDescription returns a one-line explanation of a view.
func ViewDescription(filter ViewFilter) string {
	switch filter.Type {
	case ViewAll:
		return "All tasks across all statuses"
	case ViewToday:
		return "Tasks due or scheduled for today"
	case ViewUpcoming:
		return fmt.Sprintf("Tasks due or scheduled within the next %d days", filter.daysAhead())
	case ViewPending:
		return "Tasks waiting, scheduled, or delegated"
	case ViewHighRisk:
		return "Time-sensitive or high-priority tasks"
	case ViewExpiringSoon:
		return "Expiry & Renewals items due within 30 days"
	case ViewPerson:
		return "Tasks assigned to a specific person"
	default:
		return ""
	}
}

func sameDay(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// withinDays reports whether t lies in [now, now+days].
func withinDays(t *time.Time, now time.Time, days int) bool {
	if t == nil {
		return false
	}
	end := now.AddDate(0, 0, days)
	return !t.Before(now) && !t.After(end)
}
