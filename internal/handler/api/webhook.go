package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "mealpedeal/internal/handler/dto/request"
	"mealpedeal/internal/handler/httperr"
	"mealpedeal/internal/payment"
	"mealpedeal/internal/pkg/config"
	"mealpedeal/internal/usecase/commands"
)

const signatureHeader = "X-Razorpay-Signature"

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
	webhookSecret   string
}

func NewWebhookHandler(webhookCommands commands.WebhookCommands, cfg config.RazorpayConfig) *WebhookHandler {
	return &WebhookHandler{
		webhookCommands: webhookCommands,
		webhookSecret:   cfg.WebhookSecret,
	}
}

// @Summary Payment webhook
// @Description Receive payment events from the gateway. The raw body is
// @Description verified against the signature header before any processing.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /webhooks/razorpay [post]
func (h *WebhookHandler) HandlePaymentWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	signature := c.GetHeader(signatureHeader)
	if !payment.VerifyWebhookSignature(body, signature, h.webhookSecret) {
		slog.Warn("webhook signature verification failed", "client_ip", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid webhook signature",
		})
		return
	}

	var req reqdto.PaymentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid webhook payload",
		})
		return
	}

	if err := h.webhookCommands.HandlePaymentEvent(c.Request.Context(), req); err != nil {
		slog.Error("failed to process webhook event", "event", req.Event, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
