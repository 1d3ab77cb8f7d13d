package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	forksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spechub_forks_created_total",
		Help: "Total forks created",
	})

	forksDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spechub_forks_deleted_total",
		Help: "Total forks deleted",
	})

	// storageFailures counts storage errors that left the store and disk out of sync
	storageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spechub_storage_failures_total",
		Help: "Storage operations that failed after the database was changed, by operation",
	}, []string{"operation"})

	pullRequestsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spechub_pull_requests_opened_total",
		Help: "Total pull requests opened",
	})

	pullRequestsClosed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spechub_pull_requests_closed_total",
		Help: "Total pull requests closed by resolution",
	}, []string{"resolution"})

	duplicateRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spechub_pull_requests_duplicate_total",
		Help: "Pull requests rejected because an open request covers the same range",
	})

	commentsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spechub_comments_added_total",
		Help: "Total review comments added",
	})
)
