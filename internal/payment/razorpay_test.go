//go:build unit

package payment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealpedeal/internal/payment"
	"mealpedeal/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"event":"payment.captured"}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		assert.True(t, payment.VerifyWebhookSignature(body, sign(body, secret), secret))
	})

	t.Run("forged signature rejected", func(t *testing.T) {
		assert.False(t, payment.VerifyWebhookSignature(body, "deadbeef", secret))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		signature := sign(body, secret)
		tampered := []byte(`{"event":"payment.captured","amount":0}`)
		assert.False(t, payment.VerifyWebhookSignature(tampered, signature, secret))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		assert.False(t, payment.VerifyWebhookSignature(body, sign(body, "other-secret"), secret))
	})
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "key-secret"
	orderID := "order_abc123"
	paymentID := "pay_xyz789"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, payment.VerifyPaymentSignature(orderID, paymentID, valid, secret))
	assert.False(t, payment.VerifyPaymentSignature(orderID, paymentID, "forged", secret))
	assert.False(t, payment.VerifyPaymentSignature(orderID, "pay_other", valid, secret))
}

func TestClientCreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "key-id", user)
			assert.Equal(t, "key-secret", pass)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, float64(12000), req["amount"])
			assert.Equal(t, "INR", req["currency"])

			_ = json.NewEncoder(w).Encode(payment.GatewayOrder{
				ID:       "order_rzp1",
				Amount:   12000,
				Currency: "INR",
				Receipt:  req["receipt"].(string),
				Status:   "created",
			})
		}))
		defer server.Close()

		client := payment.NewClient(config.RazorpayConfig{
			KeyID:     "key-id",
			KeySecret: "key-secret",
			BaseURL:   server.URL,
		})

		gatewayOrder, err := client.CreateOrder(context.Background(), 12000, "INR", "receipt-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "order_rzp1", gatewayOrder.ID)
		assert.Equal(t, int64(12000), gatewayOrder.Amount)
	})

	t.Run("gateway error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := payment.NewClient(config.RazorpayConfig{
			KeyID:     "key-id",
			KeySecret: "key-secret",
			BaseURL:   server.URL,
		})

		_, err := client.CreateOrder(context.Background(), 100, "INR", "receipt-2", nil)
		assert.ErrorIs(t, err, payment.ErrGatewayRequest)
	})
}
