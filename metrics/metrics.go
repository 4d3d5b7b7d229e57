// SPDX-License-Identifier: GPL-3.0-only

// Package metrics exposes Prometheus counters for entitlement decisions
// and coupon validation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitlementDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "equilog_entitlement_decisions_total",
			Help: "Entitlement check decisions, by resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)

	CouponValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "equilog_coupon_validations_total",
			Help: "Coupon validation outcomes.",
		},
		[]string{"outcome"},
	)

	AnalysisJobsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "equilog_analysis_jobs_published_total",
			Help: "Analysis jobs published to the queue.",
		},
	)
)

// RecordDecision tracks one entitlement decision for a resource.
func RecordDecision(resource string, allowed bool) {
	outcome := "denied"
	if allowed {
		outcome = "allowed"
	}
	EntitlementDecisions.WithLabelValues(resource, outcome).Inc()
}

// RecordCouponValidation tracks one coupon validation outcome.
func RecordCouponValidation(valid bool) {
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	CouponValidations.WithLabelValues(outcome).Inc()
}
