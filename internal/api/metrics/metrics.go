// Package metrics defines the Prometheus metrics of the ledger API. Every
// metric is registered on the default registry at package init via promauto.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "spendy"

// ── HTTP ──────────────────────────────────────────────────────────────────────

// HTTPRequestDuration measures handler latency.
// Labels:
//   - method: HTTP method
//   - route: the registered route pattern (e.g. "/v1/transactions/:id")
//   - code: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by route and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "code"},
)

// ── Accounts ──────────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-up and sign-in attempts.
// Labels:
//   - action: "signup" or "login"
//   - result: "ok" or "rejected"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of sign-up and sign-in attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// ── Ledger ────────────────────────────────────────────────────────────────────

// TransactionsRecordedTotal counts transactions appended to the ledger.
// Label:
//   - type: "income" or "expense"
var TransactionsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_recorded_total",
		Help:      "Total number of transactions recorded, by type.",
	},
	[]string{"type"},
)

var TransactionsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "transactions_deleted_total",
		Help:      "Total number of delete requests for single transactions.",
	},
)

var LedgerClearsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_clears_total",
		Help:      "Total number of times every transaction was cleared.",
	},
)

var CustomCategoriesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "custom_categories_created_total",
		Help:      "Total number of custom categories added.",
	},
)

// ── Storage ───────────────────────────────────────────────────────────────────

// StorageErrorsTotal counts requests that failed on the key-value store.
var StorageErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "storage_errors_total",
		Help:      "Total number of requests that failed because of the key-value store.",
	},
)

// Middleware records HTTPRequestDuration for every request. Handler errors
// are rendered here so the observed code is the one sent to the client.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			HTTPRequestDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(c.Response().Status)).
				Observe(time.Since(start).Seconds())
			return nil
		}
	}
}
