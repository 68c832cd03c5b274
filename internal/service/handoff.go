package service

import (
	"context"
	"net/url"
	"time"

	"localbistro/internal/domain"
)

// WhatsAppLink builds the wa.me deep link carrying a prefilled message.
// The text rides in the query string as plain wording, not a structured
// payload.
func WhatsAppLink(phone, text string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}

// handoffs composes deep links and emits the matching event. Publishing
// is fire-and-forget: no response is awaited and a nil publisher simply
// skips the emit.
type handoffs struct {
	phone     string
	publisher HandoffPublisher
}

func (h handoffs) emit(ctx context.Context, eventType, reference, message string) *domain.Handoff {
	if h.publisher != nil {
		_ = h.publisher.Publish(ctx, domain.HandoffEvent{
			Type:      eventType,
			Channel:   "whatsapp",
			Recipient: h.phone,
			Reference: reference,
			Message:   message,
			Timestamp: time.Now(),
		})
	}
	return &domain.Handoff{
		Message: message,
		Link:    WhatsAppLink(h.phone, message),
	}
}
