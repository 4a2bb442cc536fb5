package service

import (
	"context"
	"fmt"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/internal/ports"
	"github.com/lrad-tours/voyages-api/internal/pricing"
	"github.com/lrad-tours/voyages-api/pkg/emailjs"
	"github.com/lrad-tours/voyages-api/pkg/whatsapp"
)

type quoteService struct {
	mailer  ports.TransactionalMailer
	links   whatsapp.LinkBuilder
	company string
}

func NewQuoteService(mailer ports.TransactionalMailer, links whatsapp.LinkBuilder, company string) *quoteService {
	return &quoteService{
		mailer:  mailer,
		links:   links,
		company: company,
	}
}

// RequestQuote assembles the custom quote-request message and hands it to
// the transactional mail collaborator. Like every outbound dispatch, a
// failure is surfaced with the WhatsApp deep link as fallback; the caller
// retries manually.
func (s *quoteService) RequestQuote(ctx context.Context, request *models.QuoteRequest) error {
	summary := pricing.QuoteSummary(*request, s.company)

	msg := emailjs.Message{
		FromName:    request.FirstName + " " + request.LastName,
		FromEmail:   request.Email,
		Phone:       request.Phone,
		Subject:     fmt.Sprintf("Demande de devis personnalisé - %s", models.DestinationLabel(request.Destination)),
		Destination: models.DestinationLabel(request.Destination),
		Body:        summary,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return &models.DispatchError{Cause: err, Fallback: s.links.MessageLink(summary)}
	}
	return nil
}
