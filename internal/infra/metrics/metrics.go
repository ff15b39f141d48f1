// Package metrics exposes the prometheus counters for authentication and
// access-policy outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decision labels.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
)

// Auth event labels.
const (
	EventRegister = "register"
	EventLogin    = "login"
	EventVerify   = "verify"
)

// Auth outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeConflict           = "conflict"
	OutcomeInvalid            = "invalid"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeExpired            = "expired"
	OutcomeMissing            = "missing"
	OutcomeError              = "error"
)

var (
	// policyDecisions counts access-policy decisions by action and decision.
	policyDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inkwell",
		Name:      "access_policy_decisions_total",
		Help:      "Total number of access policy decisions",
	}, []string{"action", "decision"})

	// authEvents counts registration, login and token verification outcomes.
	authEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inkwell",
		Name:      "auth_events_total",
		Help:      "Total number of authentication events",
	}, []string{"event", "outcome"})

	// rateLimited counts requests rejected by the rate limiter.
	rateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "inkwell",
		Name:      "rate_limited_requests_total",
		Help:      "Total number of requests rejected by the rate limiter",
	})
)

// RecordPolicyDecision records one access-policy evaluation.
func RecordPolicyDecision(action string, allowed bool) {
	decision := DecisionDeny
	if allowed {
		decision = DecisionAllow
	}
	policyDecisions.WithLabelValues(action, decision).Inc()
}

func RecordAuthEvent(event, outcome string) {
	authEvents.WithLabelValues(event, outcome).Inc()
}

func RecordRateLimited() {
	rateLimited.Inc()
}
