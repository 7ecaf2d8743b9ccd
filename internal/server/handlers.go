package server

import (
	"errors"
	"fmt"
	"net/http"

	"gitlab.com/ignitionrobotics/billing/mollie/pkg/api"
	"go.uber.org/zap"
)

const (
	webhookProcessed = "processed"
	webhookInvalid   = "invalid"
	webhookFailed    = "failed"
)

// PaymentWebhook is called by Mollie every time the status of a payment changes.
// The request body is form encoded and only contains the payment ID, the payment is then fetched from the
// Mollie API.
//
//	Example:
//		id=tr_d0b0E3EA3v
func (s *Server) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("failed to parse webhook form", zap.Error(err))
		s.metrics.WebhooksTotal.WithLabelValues(webhookInvalid).Inc()
		http.Error(w, fmt.Sprintf("%s - %s", http.StatusText(http.StatusBadRequest), "Failed to parse form"), http.StatusBadRequest)
		return
	}

	res, err := s.payments.ProcessPaymentWebhook(r.Context(), api.PaymentWebhookRequest{ID: r.PostForm.Get("id")})
	if errors.Is(err, api.ErrInvalidArgument) {
		s.metrics.WebhooksTotal.WithLabelValues(webhookInvalid).Inc()
		http.Error(w, fmt.Sprintf("%s - %v", http.StatusText(http.StatusBadRequest), err), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.metrics.WebhooksTotal.WithLabelValues(webhookFailed).Inc()
		http.Error(w, fmt.Sprintf("%s - %s: %v", http.StatusText(http.StatusInternalServerError), "Failed to process payment", err), http.StatusInternalServerError)
		return
	}

	s.metrics.WebhooksTotal.WithLabelValues(webhookProcessed).Inc()
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(fmt.Sprintf("%s - Payment %s processed: %s", http.StatusText(http.StatusOK), res.ID, res.Status))); err != nil {
		s.logger.Warn("failed to write webhook response", zap.Error(err))
	}
}
