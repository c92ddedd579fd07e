// Package metrics объявляет бизнес-метрики CareConnect для /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
)

// Metrics: счётчики движения средств и входов.
type Metrics struct {
	donations          prometheus.Counter
	donationCents      prometheus.Counter
	disbursements      prometheus.Counter
	disbursementCents  prometheus.Counter
	signIns            *prometheus.CounterVec
	eventPublishErrors prometheus.Counter
}

// New регистрирует метрики в reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		donations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "donations_total",
			Help:      "Number of donations submitted by donors.",
		}),
		donationCents: f.NewCounter(prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "donations_amount_cents_total",
			Help:      "Sum of submitted donations in minor units.",
		}),
		disbursements: f.NewCounter(prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "disbursements_total",
			Help:      "Number of donations given to beneficiaries.",
		}),
		disbursementCents: f.NewCounter(prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "disbursements_amount_cents_total",
			Help:      "Sum of given donations in minor units.",
		}),
		signIns: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "signins_total",
			Help:      "Sign in attempts by result.",
		}, []string{"result"}),
		eventPublishErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: "careconnect",
			Name:      "event_publish_errors_total",
			Help:      "Donation events that could not be published.",
		}),
	}
}

// Noop возвращает метрики на отдельном реестре, который никто не читает.
func Noop() *Metrics {
	return New(prometheus.NewRegistry())
}

// DonationReceived учитывает пожертвование.
func (m *Metrics) DonationReceived(amount money.Amount) {
	m.donations.Inc()
	m.donationCents.Add(float64(amount))
}

// DonationGiven учитывает выплату.
func (m *Metrics) DonationGiven(amount money.Amount) {
	m.disbursements.Inc()
	m.disbursementCents.Add(float64(amount))
}

// SignIn учитывает попытку входа.
func (m *Metrics) SignIn(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.signIns.WithLabelValues(result).Inc()
}

// EventPublishFailed учитывает неотправленное событие.
func (m *Metrics) EventPublishFailed() {
	m.eventPublishErrors.Inc()
}
