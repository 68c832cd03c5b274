package service

import (
	"context"
	"fmt"
	"strings"

	"localbistro/internal/domain"
)

// InfoService serves the static restaurant facts and the contact
// handoff used by the contact section's chat button.
type InfoService struct {
	info     domain.BusinessInfo
	specials []domain.Special
	handoff  handoffs
}

func NewInfoService(info domain.BusinessInfo, specials []domain.Special, phone string, publisher HandoffPublisher) *InfoService {
	return &InfoService{
		info:     info,
		specials: specials,
		handoff:  handoffs{phone: phone, publisher: publisher},
	}
}

func (s *InfoService) Business() domain.BusinessInfo {
	return s.info
}

func (s *InfoService) Specials() []domain.Special {
	return s.specials
}

// ContactHandoff composes a general enquiry message, optionally scoped
// to a topic.
func (s *InfoService) ContactHandoff(ctx context.Context, topic string) *domain.Handoff {
	message := "Hi! I have a question about " + s.info.Name + "."
	if t := strings.TrimSpace(topic); t != "" {
		message = fmt.Sprintf("Hi! I have a question about %s.", t)
	}
	return s.handoff.emit(ctx, domain.HandoffContact, "", message)
}
