package integration

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rynko-dev/zapier/pkg/rynko"
)

// EventType is the closed set of webhook event kinds the integration
// subscribes to. Every variant must have a sample; TestSampleEventCoverage
// enumerates the set.
type EventType string

const (
	EventDocumentCompleted EventType = "document.completed"
	EventDocumentFailed    EventType = "document.failed"
	EventBatchCompleted    EventType = "batch.completed"
)

// AllEventTypes returns every supported event type.
func AllEventTypes() []EventType {
	return []EventType{EventDocumentCompleted, EventDocumentFailed, EventBatchCompleted}
}

// Event is the webhook payload shape delivered to the host's target URL.
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// SubscribeTrigger registers the remote webhook subscription for a trigger
// being turned on. The returned id and secret are handed to the host to
// persist as subscribe data.
func (s *Service) SubscribeTrigger(ctx context.Context, b *Bundle, event EventType) (*rynko.Subscription, error) {
	return s.client.SubscribeWebhook(ctx, b.TargetURL, string(event))
}

// UnsubscribeTrigger removes the stored subscription when a trigger is
// turned off. Missing subscribe data is a no-op success: a prior subscribe
// may have partially failed.
func (s *Service) UnsubscribeTrigger(ctx context.Context, b *Bundle) error {
	if b.SubscribeData == nil {
		return nil
	}
	return s.client.UnsubscribeWebhook(ctx, b.SubscribeData.ID)
}

// ClassifyInbound relays a delivered webhook payload as a single-element
// event sequence. No shape validation happens here; signature verification
// is owned by the transport layer.
func ClassifyInbound(payload map[string]any) []map[string]any {
	return []map[string]any{payload}
}

// SampleOrRecent produces illustrative events for trigger testing: up to
// three real recent jobs mapped into the event shape, newest first, or the
// canned sample for the event type when no real data is obtainable. It never
// fails; this path exists to help users wire up triggers.
func (s *Service) SampleOrRecent(ctx context.Context, event EventType) []Event {
	jobs, err := s.client.ListDocuments(ctx, rynko.DocumentQuery{
		Limit: 3,
		Sort:  "createdAt",
		Order: "desc",
	})
	if err != nil {
		s.logger.Debug("falling back to canned sample", "event", event, "error", err)
	}

	if len(jobs) > 0 {
		events := make([]Event, 0, len(jobs))
		for _, job := range jobs {
			events = append(events, Event{
				ID:        job.ID,
				Type:      string(event),
				Timestamp: job.CreatedAt,
				Data: map[string]any{
					"jobId":       job.ID,
					"templateId":  job.TemplateID,
					"status":      job.Status,
					"format":      job.Format,
					"downloadUrl": job.DownloadURL,
				},
			})
		}
		return events
	}

	return []Event{SampleEvent(event)}
}

// SampleEvent returns the canned example for an event type.
func SampleEvent(event EventType) Event {
	now := time.Now().UTC().Format(time.RFC3339)
	sample := Event{
		ID:        "evt_" + uuid.NewString(),
		Type:      string(event),
		Timestamp: now,
	}

	switch event {
	case EventDocumentCompleted:
		sample.Data = map[string]any{
			"jobId":        "job_sample_123",
			"templateId":   "template_sample_456",
			"templateName": "Invoice Template",
			"format":       "pdf",
			"status":       "completed",
			"downloadUrl":  "https://api.rynko.dev/v1/documents/job_sample_123/download",
			"fileSize":     125000,
			"completedAt":  now,
		}
	case EventDocumentFailed:
		sample.Data = map[string]any{
			"jobId":        "job_sample_123",
			"templateId":   "template_sample_456",
			"templateName": "Invoice Template",
			"format":       "pdf",
			"status":       "failed",
			"error":        `Variable "customerName" is required but was not provided`,
			"failedAt":     now,
		}
	case EventBatchCompleted:
		sample.Data = map[string]any{
			"batchId":        "batch_sample_123",
			"templateId":     "template_sample_456",
			"templateName":   "Invoice Template",
			"totalDocuments": 10,
			"successCount":   9,
			"failureCount":   1,
			"format":         "pdf",
			"status":         "completed",
			"downloadUrl":    "https://api.rynko.dev/v1/batches/batch_sample_123/download",
			"completedAt":    now,
		}
	}

	return sample
}
