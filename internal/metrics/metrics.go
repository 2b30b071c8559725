package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Invoice outcomes, one per row of the response table.
const (
	OutcomeCreated         = "created"
	OutcomeInvalid         = "invalid"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeForbidden       = "forbidden"
	OutcomeMisconfigured   = "misconfigured"
	OutcomeGatewayError    = "gateway_error"
)

var invoiceRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "invoice_requests_total",
		Help: "Invoice creation requests by outcome.",
	},
	[]string{"outcome"},
)

var downstreamDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "downstream_request_duration_seconds",
		Help:    "Latency of calls to the auth, payment and email providers.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"service", "result"},
)

var emailsSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Transactional emails by template and result.",
	},
	[]string{"template", "result"},
)

func InvoiceRequest(outcome string) {
	invoiceRequests.With(prometheus.Labels{"outcome": outcome}).Inc()
}

// ObserveDownstream records a provider call started at start.
func ObserveDownstream(service string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	downstreamDuration.With(prometheus.Labels{"service": service, "result": result}).Observe(time.Since(start).Seconds())
}

func EmailSent(template string, err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}
	emailsSent.With(prometheus.Labels{"template": template, "result": result}).Inc()
}
