package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.DonationReceived(money.FromUnits(50))
	m.DonationReceived(money.Amount(25))
	m.DonationGiven(money.FromUnits(10))
	m.SignIn(true)
	m.SignIn(false)
	m.SignIn(false)
	m.EventPublishFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.donations))
	assert.Equal(t, 5025.0, testutil.ToFloat64(m.donationCents))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.disbursements))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.disbursementCents))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.signIns.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.signIns.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventPublishErrors))

	count, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestNoop_Independent(t *testing.T) {
	a, b := Noop(), Noop()
	a.DonationReceived(100)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.donations))
}
