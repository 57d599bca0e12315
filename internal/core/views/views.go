// Package views holds read-only computations over task collections: status
// grouping, completion rates, due-date bucketing, and summary counts. All
// functions are pure; callers pass the reference instant explicitly.
package views

import (
	"math"
	"time"

	"github.com/taskflow/taskboard/internal/core/domain"
)

// GroupByStatus tallies tasks per status. Statuses with no tasks are omitted
// from the result.
func GroupByStatus(tasks []domain.Task) map[domain.TaskStatus]int {
	counts := make(map[domain.TaskStatus]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// CompletionRate returns the percentage of completed tasks, rounded to the
// nearest integer. An empty collection has a rate of 0.
func CompletionRate(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == domain.StatusCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// Buckets partitions tasks with due dates by urgency. A task lands in at most
// one bucket; tasks without a due date appear in none.
type Buckets struct {
	Overdue  []domain.Task
	Today    []domain.Task
	ThisWeek []domain.Task
}

// BucketByDueDate classifies tasks relative to asOf's calendar day:
//
//   - Overdue: due strictly before the start of asOf's day, not completed.
//   - Today: due on the same calendar day as asOf.
//   - ThisWeek: due strictly after today and on or before the Sunday ending
//     the Monday-start week containing asOf.
//
// A task due today never also appears in ThisWeek.
func BucketByDueDate(tasks []domain.Task, asOf time.Time) Buckets {
	dayStart := startOfDay(asOf)
	weekEnd := endOfWeek(asOf)

	var b Buckets
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		due := t.DueDate.In(asOf.Location())
		switch {
		case due.Before(dayStart):
			if t.Status != domain.StatusCompleted {
				b.Overdue = append(b.Overdue, t)
			}
		case sameDay(due, asOf):
			b.Today = append(b.Today, t)
		case !due.After(weekEnd):
			b.ThisWeek = append(b.ThisWeek, t)
		}
	}
	return b
}

// Summary holds the headline counts shown on the dashboard.
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Overdue    int `json:"overdue"`
}

// SummaryCounts computes dashboard totals. Overdue follows the same rule as
// BucketByDueDate: due strictly before the start of asOf's day and not
// completed. Tasks without a due date count toward Total but never Overdue.
func SummaryCounts(tasks []domain.Task, asOf time.Time) Summary {
	dayStart := startOfDay(asOf)

	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusCompleted:
			s.Completed++
		case domain.StatusInProgress:
			s.InProgress++
		}
		if t.DueDate != nil && t.DueDate.In(asOf.Location()).Before(dayStart) && t.Status != domain.StatusCompleted {
			s.Overdue++
		}
	}
	return s
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// endOfWeek returns the last instant of the Sunday ending the Monday-start
// week containing t.
func endOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := startOfDay(t).AddDate(0, 0, -daysSinceMonday)
	return monday.AddDate(0, 0, 7).Add(-time.Nanosecond)
}
