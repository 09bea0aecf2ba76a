//go:build unit

package api_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mealpedeal/internal/handler/api"
	reqdto "mealpedeal/internal/handler/dto/request"
	"mealpedeal/internal/pkg/config"
	"mealpedeal/tests/common/httptest"
	commandsmock "mealpedeal/tests/mock/commands"
)

const webhookTestSecret = "whsec_test"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands, config.RazorpayConfig{WebhookSecret: webhookTestSecret})

	s.router.POST("/webhooks/razorpay", s.handler.HandlePaymentWebhook)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func capturedEventBody() []byte {
	return []byte(`{
		"event": "payment.captured",
		"payload": {
			"payment": {
				"entity": {
					"id": "pay_ABC123",
					"order_id": "order_XYZ789",
					"status": "captured"
				}
			}
		}
	}`)
}

func (s *WebhookHandlerTestSuite) TestHandlePaymentWebhook() {
	url := "/webhooks/razorpay"

	s.Run("success: valid signature is processed and acknowledged", func() {
		body := capturedEventBody()

		s.mockCommands.EXPECT().
			HandlePaymentEvent(gomock.Any(), gomock.AssignableToTypeOf(reqdto.PaymentWebhookRequest{})).
			DoAndReturn(func(_ any, req reqdto.PaymentWebhookRequest) error {
				s.Equal("payment.captured", req.Event)
				s.Equal("order_XYZ789", req.Payload.Payment.Entity.OrderID)
				return nil
			}).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": signBody(body, webhookTestSecret),
		})

		var response map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response["success"])
	})

	s.Run("error: 400 Bad Request for forged signature, event never processed", func() {
		body := capturedEventBody()

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": signBody(body, "wrong-secret"),
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook signature")
	})

	s.Run("error: 400 Bad Request when signature header is missing", func() {
		body := capturedEventBody()

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Content-Type": "application/json",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook signature")
	})

	s.Run("error: 400 Bad Request when a signed body fails to decode", func() {
		body := []byte(`{"event": `)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": signBody(body, webhookTestSecret),
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook payload")
	})

	s.Run("error: 500 Internal Server Error when processing fails", func() {
		body := capturedEventBody()

		s.mockCommands.EXPECT().
			HandlePaymentEvent(gomock.Any(), gomock.Any()).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": signBody(body, webhookTestSecret),
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("success: unknown event is still acknowledged", func() {
		body := []byte(`{"event": "refund.processed", "payload": {"payment": {"entity": {}}}}`)

		s.mockCommands.EXPECT().
			HandlePaymentEvent(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, map[string]string{
			"Content-Type":         "application/json",
			"X-Razorpay-Signature": signBody(body, webhookTestSecret),
		})

		var response map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response["success"])
	})
}
