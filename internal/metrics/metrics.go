package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourism_registrations_total",
		Help: "Accounts created, by principal kind",
	}, []string{"kind"})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourism_logins_total",
		Help: "Login attempts, by principal kind and result",
	}, []string{"kind", "result"})

	Bookings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tourism_bookings_total",
		Help: "Bookings created",
	})

	Feedback = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tourism_feedback_total",
		Help: "Feedback messages stored",
	})

	PackageChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tourism_package_changes_total",
		Help: "Admin package changes, by action",
	}, []string{"action"})
)
