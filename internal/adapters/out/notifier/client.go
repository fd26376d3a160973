// Package notifier delivers user notifications through the notification
// service's HTTP API. Sends run after the owning transaction commits and are
// best-effort: the caller logs failures and moves on.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// sendRequest is the notification service's request payload.
type sendRequest struct {
	RecipientID string            `json:"recipient_id"`
	Template    string            `json:"template"`
	Data        map[string]string `json:"data,omitempty"`
}

// HTTPNotifier implements Notifier against the notification service.
type HTTPNotifier struct {
	baseURL string
	client  *http.Client
}

// NewHTTPNotifier creates a notifier targeting the service at baseURL.
func NewHTTPNotifier(baseURL string) *HTTPNotifier {
	return &HTTPNotifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Send posts one notification.
func (n *HTTPNotifier) Send(
	ctx context.Context,
	recipientID kernel.UUID,
	kind ports.TemplateKind,
	data map[string]string,
) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(sendRequest{
		RecipientID: recipientID.String(),
		Template:    string(kind),
		Data:        data,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, n.baseURL+"/notifications", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	return nil
}
