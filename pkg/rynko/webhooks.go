package rynko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SubscribeWebhook registers one remote subscription for (targetURL, event).
// The returned id and signing secret must be persisted by the caller; the id
// is required to unsubscribe and the secret is needed by the transport layer
// that verifies deliveries.
func (c *Client) SubscribeWebhook(ctx context.Context, targetURL, event string) (*Subscription, error) {
	body := map[string]any{
		"url":         targetURL,
		"events":      []string{event},
		"description": fmt.Sprintf("Zapier webhook for %s", event),
	}

	var sub Subscription
	if err := c.do(ctx, http.MethodPost, c.cfg.WebhooksEndpoint(), nil, body, &sub); err != nil {
		return nil, fmt.Errorf("webhook subscription failed: %w", err)
	}
	return &sub, nil
}

// UnsubscribeWebhook deletes a subscription. An empty id is a no-op success
// without a network call: a prior subscribe may have partially failed and
// left nothing to remove.
func (c *Client) UnsubscribeWebhook(ctx context.Context, subscriptionID string) error {
	if subscriptionID == "" {
		return nil
	}

	endpoint := c.cfg.WebhooksEndpoint() + "/" + url.PathEscape(subscriptionID)
	if err := c.do(ctx, http.MethodDelete, endpoint, nil, nil, nil); err != nil {
		return fmt.Errorf("webhook unsubscribe failed: %w", err)
	}
	return nil
}
