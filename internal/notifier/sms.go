package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mealpedeal/internal/pkg/errs"
)

var ErrProviderRequest = errs.New("sms provider request failed")

// indianMobile strips formatting and returns the last 10 digits prefixed
// with the 91 country code, the shape both Indian gateways expect.
func indianMobile(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) > 10 {
		d = d[len(d)-10:]
	}
	return "91" + d
}

// MSG91Notifier sends transactional SMS through the MSG91 flow API.
type MSG91Notifier struct {
	apiKey     string
	senderID   string
	baseURL    string
	httpClient *http.Client
}

func NewMSG91Notifier(apiKey, senderID string) *MSG91Notifier {
	return &MSG91Notifier{
		apiKey:   apiKey,
		senderID: senderID,
		baseURL:  "https://api.msg91.com/api/v5/flow/",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *MSG91Notifier) SendPickupConfirmation(ctx context.Context, notification PickupNotification) error {
	payload, err := json.Marshal(map[string]string{
		"flow_id": "pickup_confirmation",
		"sender":  n.senderID,
		"mobiles": indianMobile(notification.Phone),
		"VAR1":    notification.CustomerName,
		"VAR2":    notification.PickupCode,
		"VAR3":    notification.RestaurantName,
		"VAR4":    fmt.Sprintf("%.2f", float64(notification.AmountPaise)/100),
		"VAR5":    notification.PickupWindowEnd.Format("3:04 PM"),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal msg91 payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build msg91 request")
	}
	req.Header.Set("authkey", n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrProviderRequest)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Mark(errs.New(fmt.Sprintf("msg91 returned status %d", resp.StatusCode)), ErrProviderRequest)
	}
	return nil
}

// TextLocalNotifier sends SMS through the TextLocal form API.
type TextLocalNotifier struct {
	apiKey     string
	sender     string
	baseURL    string
	httpClient *http.Client
}

func NewTextLocalNotifier(apiKey, sender string) *TextLocalNotifier {
	return &TextLocalNotifier{
		apiKey:  apiKey,
		sender:  sender,
		baseURL: "https://api.textlocal.in/send/",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *TextLocalNotifier) SendPickupConfirmation(ctx context.Context, notification PickupNotification) error {
	form := url.Values{}
	form.Set("apikey", n.apiKey)
	form.Set("numbers", indianMobile(notification.Phone))
	form.Set("message", notification.Message())
	form.Set("sender", n.sender)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errs.Wrap(err, "failed to build textlocal request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrProviderRequest)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Mark(errs.New(fmt.Sprintf("textlocal returned status %d", resp.StatusCode)), ErrProviderRequest)
	}
	return nil
}
