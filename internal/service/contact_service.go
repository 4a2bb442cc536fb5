package service

import (
	"context"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/internal/ports"
	"github.com/lrad-tours/voyages-api/pkg/mailrelay"
	"github.com/lrad-tours/voyages-api/pkg/whatsapp"
)

type contactService struct {
	relay ports.MailRelay
	links whatsapp.LinkBuilder
}

func NewContactService(relay ports.MailRelay, links whatsapp.LinkBuilder) *contactService {
	return &contactService{
		relay: relay,
		links: links,
	}
}

// Send relays a contact message to the agency inbox. A filled honeypot field
// marks an automated submission and is rejected before any network call.
func (s *contactService) Send(ctx context.Context, msg *models.ContactMessage) error {
	if msg.Honeypot != "" {
		return models.ErrSpamDetected
	}

	body := msg.Message
	if msg.Destination != "" {
		body = "Destination : " + models.DestinationLabel(msg.Destination) + "\n\n" + body
	}

	relayed := mailrelay.Message{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Body:    body,
	}

	if err := s.relay.Send(ctx, relayed); err != nil {
		return &models.DispatchError{Cause: err, Fallback: s.links.ContactLink()}
	}
	return nil
}
