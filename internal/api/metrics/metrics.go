// Package metrics defines and registers all custom Prometheus metrics for the
// taskboard API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "low", "medium", or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// TasksCompletedTotal counts status transitions into completed.
var TasksCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_completed_total",
		Help:      "Total number of tasks transitioned to completed.",
	},
)

// NotificationsCreatedTotal counts notifications by type.
// Label:
//   - type: "assignment", "reminder", "mention", or "completion"
var NotificationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of notifications created, by type.",
	},
	[]string{"type"},
)

// RemindersTotal counts reminder scan outcomes per task.
// Label:
//   - result: "emitted" (reminder created) or "dedup_hit" (already reminded)
var RemindersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_total",
		Help:      "Total number of reminder decisions, labelled by result.",
	},
	[]string{"result"},
)
