package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.RequestsTotal.WithLabelValues("GET", "200").Inc()
	c.RequestDuration.WithLabelValues("GET").Observe(0.2)
	c.WebhooksTotal.WithLabelValues("processed").Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
	assert.Equal(t, float64(1), testutil.ToFloat64(c.RequestsTotal.WithLabelValues("GET", "200")))
}

func TestNew_Unregistered(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil)
		New(nil)
	})
}
