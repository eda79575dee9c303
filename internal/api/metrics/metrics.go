// Package metrics defines the custom Prometheus metrics of the project hub
// API. HTTP request metrics come from echoprometheus; the counters here track
// workflow outcomes.
//
// All metrics are registered with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projecthub"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ServiceRequestsFiledTotal counts requests filed by clients.
var ServiceRequestsFiledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_requests_filed_total",
		Help:      "Total number of service requests filed.",
	},
)

// ServiceRequestsDecidedTotal counts admin decisions on service requests.
// Label:
//   - decision: "approved" or "rejected"
var ServiceRequestsDecidedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_requests_decided_total",
		Help:      "Total number of service request decisions, by outcome.",
	},
	[]string{"decision"},
)

// ProjectAssignmentsTotal counts assignment changes.
// Label:
//   - action: "assign" or "unassign"
var ProjectAssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_assignments_total",
		Help:      "Total number of project assignment changes.",
	},
	[]string{"action"},
)

// ProjectStatusChangesTotal counts status updates by target status.
var ProjectStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_status_changes_total",
		Help:      "Total number of project status updates, by new status.",
	},
	[]string{"status"},
)

// MessagesSentTotal counts direct messages by sender role.
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of direct messages sent, by sender role.",
	},
	[]string{"sender_role"},
)
