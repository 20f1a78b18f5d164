package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "field_marketing"

var (
	checkInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "checkins_total",
			Help:      "Total number of recorded field check-ins",
		},
		[]string{"photo"},
	)

	leadsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "leads_created_total",
			Help:      "Total number of created leads by initial status",
		},
		[]string{"status"},
	)

	teamMembersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "team_members_created_total",
			Help:      "Total number of added team members",
		},
	)

	photoUploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "photo_upload_bytes_total",
			Help:      "Total bytes of uploaded check-in photos",
		},
	)

	provisioningRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "provisioning_runs_total",
			Help:      "Demo data provisioning attempts by result",
		},
		[]string{"result"},
	)

	activityLogFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "activity_log_failures_total",
			Help:      "Activity entries that could not be written after a successful create",
		},
	)
)

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
