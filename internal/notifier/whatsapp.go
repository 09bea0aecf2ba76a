package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mealpedeal/internal/pkg/errs"
)

// WhatsAppNotifier posts a template message to a WhatsApp business API
// endpoint.
type WhatsAppNotifier struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewWhatsAppNotifier(apiKey, endpoint string) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *WhatsAppNotifier) SendPickupConfirmation(ctx context.Context, notification PickupNotification) error {
	payload, err := json.Marshal(map[string]any{
		"to":       indianMobile(notification.Phone),
		"type":     "template",
		"template": "pickup_confirmation",
		"parameters": []string{
			notification.CustomerName,
			notification.RestaurantName,
			notification.PickupCode,
			notification.PickupWindowEnd.Format("3:04 PM"),
		},
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal whatsapp payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build whatsapp request")
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrProviderRequest)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Mark(errs.New(fmt.Sprintf("whatsapp endpoint returned status %d", resp.StatusCode)), ErrProviderRequest)
	}
	return nil
}
