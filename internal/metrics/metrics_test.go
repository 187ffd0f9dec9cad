package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSubscription(t *testing.T) {
	before := testutil.ToFloat64(SubscriptionsCreatedTotal.WithLabelValues("UPGRADE"))

	RecordSubscription("UPGRADE")

	after := testutil.ToFloat64(SubscriptionsCreatedTotal.WithLabelValues("UPGRADE"))
	assert.Equal(t, before+1, after)
}

func TestRecordPaymentAndRejection(t *testing.T) {
	paidBefore := testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("REGULAR"))
	rejectedBefore := testutil.ToFloat64(PaymentsRejectedTotal.WithLabelValues("PT"))

	RecordPayment("REGULAR")
	RecordPaymentRejected("PT")

	assert.Equal(t, paidBefore+1, testutil.ToFloat64(PaymentsRecordedTotal.WithLabelValues("REGULAR")))
	assert.Equal(t, rejectedBefore+1, testutil.ToFloat64(PaymentsRejectedTotal.WithLabelValues("PT")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/gyms", "200"))

	RecordHTTPRequest("GET", "/gyms", "200", 0.05)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/gyms", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordReminderQueued(t *testing.T) {
	before := testutil.ToFloat64(RemindersQueuedTotal.WithLabelValues("gym"))

	RecordReminderQueued("gym")

	assert.Equal(t, before+1, testutil.ToFloat64(RemindersQueuedTotal.WithLabelValues("gym")))
}
