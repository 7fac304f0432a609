// internal/lead/notify.go
//
// Outbound lead notifications.
//
// Context
// -------
//   - Sales wants every lead pushed to a webhook (CRM intake or a Slack
//     relay) the moment it lands.  Delivery is best effort: a stored
//     lead is never rolled back because the webhook was down, the
//     failure is logged and counted instead.
package lead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier pushes a stored lead to an external system.
type Notifier interface {
	Notify(ctx context.Context, l *Lead) error
}

// WebhookNotifier POSTs the lead as JSON to a fixed URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier builds a notifier with a short per-request timeout so
// a slow webhook cannot stall the submit path.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *WebhookNotifier) Notify(ctx context.Context, l *Lead) error {
	body, err := json.Marshal(l)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
