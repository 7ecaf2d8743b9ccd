package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/ignitionrobotics/billing/mollie/pkg/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogListener(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	listener := NewLogListener(zap.New(core))

	payment := &model.Payment{
		ID:           "tr_test",
		Status:       model.PaymentStatusPaid,
		Amount:       10.5,
		CustomerID:   "cst_test",
		PaidDatetime: time.Date(2016, 4, 6, 13, 23, 21, 0, time.UTC),
	}
	require.NoError(t, listener.OnPayment(context.Background(), payment))

	entries := logs.FilterMessage("payment status received").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "tr_test", fields["payment_id"])
	assert.Equal(t, "paid", fields["status"])
	assert.Equal(t, 10.5, fields["amount"])
	assert.Equal(t, "cst_test", fields["customer_id"])
	assert.Equal(t, true, fields["paid"])
}

func TestLogListener_NilLogger(t *testing.T) {
	listener := NewLogListener(nil)
	assert.NoError(t, listener.OnPayment(context.Background(), &model.Payment{ID: "tr_test"}))
}
