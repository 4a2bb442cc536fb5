package ports

import (
	"context"
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/pkg/emailjs"
	"github.com/lrad-tours/voyages-api/pkg/mailrelay"
)

type Catalog interface {
	DepartureByID(id int) (models.Departure, error)
	Departures(destination string, month time.Month) []models.Departure
	Destinations() []models.Destination
	DestinationBySlug(slug string) (models.Destination, error)
	AddOnsForDestination(slug string) []models.AddOn
	AddOnByID(id string) (models.AddOn, error)
}

type TransactionalMailer interface {
	Send(ctx context.Context, msg emailjs.Message) error
}

type MailRelay interface {
	Send(ctx context.Context, msg mailrelay.Message) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, request *models.BookingRequest) (*models.BookingConfirmation, error)
	ListDepartures(destination string, month time.Month) []models.DepartureView
	ListDestinations() []models.DestinationView
}

type QuoteService interface {
	RequestQuote(ctx context.Context, request *models.QuoteRequest) error
}

type ContactService interface {
	Send(ctx context.Context, msg *models.ContactMessage) error
}
