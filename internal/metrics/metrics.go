// Package metrics defines and registers the custom Prometheus metrics of the
// dashboard: the upstream API client, the client-side stores and the mock API.
// Metrics are registered with the default registry on package init, which is
// the registry served by the /metrics routes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// ── API client metrics ────────────────────────────────────────────────────────

// APIRequestsTotal counts requests issued to the dashboard API.
// Labels:
//   - method: HTTP method
//   - endpoint: request path with numeric segments replaced by ":id"
//   - status: response status code, or "error" when no response arrived
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of requests sent to the dashboard API.",
	},
	[]string{"method", "endpoint", "status"},
)

// APIRequestDuration measures round-trip time of dashboard API requests.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of dashboard API requests, including body decoding.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "endpoint"},
)

// ── Store metrics ─────────────────────────────────────────────────────────────

// StoreFetchErrorsTotal counts fetches that ended in a stored error message.
// Label:
//   - resource: store name (e.g. "admins", "stats")
var StoreFetchErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_fetch_errors_total",
		Help:      "Total number of store fetches that failed.",
	},
	[]string{"resource"},
)

// StoreStaleResponsesTotal counts fetch responses dropped because a newer
// fetch superseded them.
var StoreStaleResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_stale_responses_total",
		Help:      "Total number of fetch responses discarded as stale.",
	},
	[]string{"resource"},
)

// StoreMutationsTotal counts create/update/delete calls issued by stores.
// Labels:
//   - resource: store name
//   - op: "create", "update" or "delete"
//   - result: "ok" or "failed"
var StoreMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_mutations_total",
		Help:      "Total number of store mutations, by outcome.",
	},
	[]string{"resource", "op", "result"},
)

// ── Mock API metrics ──────────────────────────────────────────────────────────

// MockAPILoginsTotal counts login attempts against the mock API.
// Label:
//   - result: "ok", "invalid_credentials", "inactive" or "error"
var MockAPILoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mockapi_logins_total",
		Help:      "Total number of mock API login attempts, by result.",
	},
	[]string{"result"},
)

// ── Websocket metrics ─────────────────────────────────────────────────────────

// HubClients tracks the number of connected change-stream clients.
var HubClients = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "hub_clients",
		Help:      "Current number of websocket clients subscribed to change events.",
	},
)
