//go:build unit

package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func samplePickup() PickupNotification {
	return PickupNotification{
		Phone:             "+91 98765 43210",
		CustomerName:      "Asha",
		RestaurantName:    "Udupi Grand",
		PickupCode:        "KQ7M2XHT",
		PickupWindowStart: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
		PickupWindowEnd:   time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC),
		AmountPaise:       14900,
	}
}

func TestIndianMobile(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "formatted with country code", phone: "+91 98765 43210", want: "919876543210"},
		{name: "bare ten digits", phone: "9876543210", want: "919876543210"},
		{name: "with dashes", phone: "98765-43210", want: "919876543210"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, indianMobile(tt.phone))
		})
	}
}

func TestPickupNotification_Message(t *testing.T) {
	msg := samplePickup().Message()

	assert.Contains(t, msg, "Asha")
	assert.Contains(t, msg, "Udupi Grand")
	assert.Contains(t, msg, "KQ7M2XHT")
	assert.Contains(t, msg, "₹149.00")
}

func TestWhatsAppNotifier_SendPickupConfirmation(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer wa-key", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier("wa-key", srv.URL)
	err := n.SendPickupConfirmation(context.Background(), samplePickup())

	require.NoError(t, err)
	assert.Equal(t, "919876543210", captured["to"])
	assert.Equal(t, "pickup_confirmation", captured["template"])
}

func TestWhatsAppNotifier_SendPickupConfirmation_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier("wa-key", srv.URL)
	err := n.SendPickupConfirmation(context.Background(), samplePickup())

	assert.True(t, errors.Is(err, ErrProviderRequest))
}

func TestFanout_ReturnsFirstError(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	f := NewFanout(NewWhatsAppNotifier("k", failing.URL), NewLogNotifier(discardLogger()))
	err := f.SendPickupConfirmation(context.Background(), samplePickup())

	assert.Error(t, err)
}
