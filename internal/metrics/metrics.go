// Package metrics holds the application-level Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Delivery outcomes used as the status label of mail_deliveries_total.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Metrics groups the domain counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	contactsSubmitted prometheus.Counter
	mailDeliveries    *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		contactsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contacts_submitted_total",
			Help: "Total number of contact messages stored.",
		}),
		mailDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mail_deliveries_total",
			Help: "Total number of outbound email delivery attempts by provider and outcome.",
		}, []string{"provider", "status"}),
	}

	for _, c := range []prometheus.Collector{m.contactsSubmitted, m.mailDeliveries} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ContactSubmitted counts one stored contact message.
func (m *Metrics) ContactSubmitted() {
	if m == nil {
		return
	}
	m.contactsSubmitted.Inc()
}

// MailDelivery counts one delivery attempt.
func (m *Metrics) MailDelivery(provider string, ok bool) {
	if m == nil {
		return
	}
	status := StatusSent
	if !ok {
		status = StatusFailed
	}
	m.mailDeliveries.WithLabelValues(provider, status).Inc()
}
