package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/internal/ports"
	"github.com/lrad-tours/voyages-api/pkg/emailjs"
	"github.com/lrad-tours/voyages-api/pkg/whatsapp"
	"github.com/google/uuid"
)

// State is the explicit submission state machine, replacing the ad hoc
// idle/loading/success/error flags the forms used to juggle. The variants
// are sealed so that, for example, a succeeded submission cannot also carry
// an error.
type State interface {
	isState()
}

type Idle struct{}

type Submitting struct{}

// Succeeded carries the dispatch receipt.
type Succeeded struct {
	Receipt Receipt
}

// Failed carries the dispatch error and the suggested fallback channel.
// Failed is not terminal: Submit may be called again.
type Failed struct {
	Err      error
	Fallback string
}

func (Idle) isState()       {}
func (Submitting) isState() {}
func (Succeeded) isState()  {}
func (Failed) isState()     {}

// Receipt records one completed dispatch.
type Receipt struct {
	Channel   models.Channel
	Reference uuid.UUID
	SentAt    time.Time
	DeepLink  string
}

var ErrInFlight = errors.New("submission already in flight")

// Submission is the lifecycle of one form submission: idle, then submitting,
// then succeeded or failed. Each incoming request gets its own Submission;
// there is no concurrent writer.
type Submission struct {
	mailer ports.TransactionalMailer
	links  whatsapp.LinkBuilder
	now    func() time.Time
	state  State
}

func NewSubmission(mailer ports.TransactionalMailer, links whatsapp.LinkBuilder) *Submission {
	return &Submission{
		mailer: mailer,
		links:  links,
		now:    time.Now,
		state:  Idle{},
	}
}

func (s *Submission) State() State {
	return s.state
}

// Submit dispatches the assembled summary through the chosen channel.
// The email channel calls the transactional mail collaborator and can fail;
// the WhatsApp channel only builds a deep link and always succeeds. A failed
// submission may be resubmitted; a submission already in flight may not.
func (s *Submission) Submit(ctx context.Context, intent models.BookingIntent, summary string, channel models.Channel) (Receipt, error) {
	if _, inFlight := s.state.(Submitting); inFlight {
		return Receipt{}, ErrInFlight
	}
	s.state = Submitting{}

	if channel == models.ChannelWhatsApp {
		receipt := Receipt{
			Channel:   models.ChannelWhatsApp,
			Reference: intent.Reference,
			SentAt:    s.now().UTC(),
			DeepLink:  s.links.MessageLink(summary),
		}
		s.state = Succeeded{Receipt: receipt}
		return receipt, nil
	}

	msg := emailjs.Message{
		FromName:    intent.Customer.FirstName + " " + intent.Customer.LastName,
		FromEmail:   intent.Customer.Email,
		Phone:       intent.Customer.Phone,
		Subject:     fmt.Sprintf("Nouvelle réservation - %s", intent.Departure.DestinationName),
		Destination: intent.Departure.DestinationName,
		Body:        summary,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		fallback := s.links.MessageLink(summary)
		s.state = Failed{Err: err, Fallback: fallback}
		return Receipt{}, &models.DispatchError{Cause: err, Fallback: fallback}
	}

	receipt := Receipt{
		Channel:   models.ChannelEmail,
		Reference: intent.Reference,
		SentAt:    s.now().UTC(),
	}
	s.state = Succeeded{Receipt: receipt}
	return receipt, nil
}
