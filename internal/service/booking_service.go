package service

import (
	"context"
	"fmt"
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/internal/availability"
	"github.com/lrad-tours/voyages-api/internal/dispatch"
	"github.com/lrad-tours/voyages-api/internal/ports"
	"github.com/lrad-tours/voyages-api/internal/pricing"
	"github.com/lrad-tours/voyages-api/pkg/whatsapp"
	"github.com/google/uuid"
)

type bookingService struct {
	catalog ports.Catalog
	mailer  ports.TransactionalMailer
	links   whatsapp.LinkBuilder
	conv    pricing.Converter
	company string
	now     func() time.Time
}

type Option func(*bookingService)

// WithClock injects the current-date source used for availability checks.
func WithClock(now func() time.Time) Option {
	return func(s *bookingService) {
		s.now = now
	}
}

func NewBookingService(catalog ports.Catalog, mailer ports.TransactionalMailer, links whatsapp.LinkBuilder, conv pricing.Converter, company string, opts ...Option) *bookingService {
	s := &bookingService{
		catalog: catalog,
		mailer:  mailer,
		links:   links,
		conv:    conv,
		company: company,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateBooking turns a validated request into a booking intent, assembles
// its summary and dispatches it through the chosen channel. Nothing is
// persisted and no seat is decremented: the intent lives exactly as long as
// the dispatch.
func (s *bookingService) CreateBooking(ctx context.Context, request *models.BookingRequest) (*models.BookingConfirmation, error) {
	departure, err := s.catalog.DepartureByID(request.DepartureID)
	if err != nil {
		return nil, err
	}

	status, _ := availability.Evaluate(departure.TotalSeats, departure.AvailableSeats, departure.DepartureDate, s.now())
	switch status {
	case availability.StatusPast:
		return nil, models.ErrDeparturePast
	case availability.StatusSoldOut:
		return nil, models.ErrSoldOut
	}

	maxTravelers := departure.AvailableSeats
	if maxTravelers > models.MaxTravelersPerBooking {
		maxTravelers = models.MaxTravelersPerBooking
	}
	if request.Travelers < 1 || request.Travelers > maxTravelers {
		return nil, fmt.Errorf("%w: %d travelers, bookable range 1-%d", models.ErrTooManyTravelers, request.Travelers, maxTravelers)
	}

	addOns, err := s.resolveAddOns(departure, request.AddOnIDs)
	if err != nil {
		return nil, err
	}

	intent := models.BookingIntent{
		Reference: uuid.New(),
		Departure: departure,
		Customer: models.Customer{
			FirstName: request.FirstName,
			LastName:  request.LastName,
			Email:     request.Email,
			Phone:     request.Phone,
		},
		Travelers:       request.Travelers,
		AddOns:          addOns,
		SpecialRequests: request.SpecialRequests,
		TotalEUR:        pricing.Total(departure.PriceEUR, addOns, request.Travelers),
		CreatedAt:       s.now().UTC(),
	}

	summary := pricing.BookingSummary(intent, s.conv, s.company)

	channel := request.Channel
	if channel == "" {
		channel = models.ChannelEmail
	}

	submission := dispatch.NewSubmission(s.mailer, s.links)
	receipt, err := submission.Submit(ctx, intent, summary, channel)
	if err != nil {
		return nil, err
	}

	return &models.BookingConfirmation{
		Intent:      intent,
		Summary:     summary,
		TotalEUR:    pricing.FormatEUR(intent.TotalEUR),
		TotalXOF:    pricing.FormatXOF(s.conv.ToXOF(intent.TotalEUR)),
		Channel:     receipt.Channel,
		WhatsAppURL: receipt.DeepLink,
	}, nil
}

func (s *bookingService) resolveAddOns(departure models.Departure, ids []string) ([]models.AddOn, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	addOns := make([]models.AddOn, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		addOn, err := s.catalog.AddOnByID(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownAddOn, id)
		}
		if addOn.Destination != departure.Destination {
			return nil, fmt.Errorf("%w: %q is not sold with %s", models.ErrUnknownAddOn, id, departure.DestinationName)
		}
		addOns = append(addOns, addOn)
	}
	return addOns, nil
}

// ListDepartures returns the calendar rows with derived availability and
// display prices, filtered and sorted the way the calendar page filters.
func (s *bookingService) ListDepartures(destination string, month time.Month) []models.DepartureView {
	departures := s.catalog.Departures(destination, month)
	now := s.now()

	views := make([]models.DepartureView, len(departures))
	for i, dep := range departures {
		status, pct := availability.Evaluate(dep.TotalSeats, dep.AvailableSeats, dep.DepartureDate, now)
		views[i] = models.DepartureView{
			Departure:       dep,
			Status:          string(status),
			AvailabilityPct: pct,
			PriceEURDisplay: pricing.FormatEUR(dep.PriceEUR),
			PriceXOFDisplay: pricing.FormatXOF(s.conv.ToXOF(dep.PriceEUR)),
			ReserveDisabled: status.ReserveDisabled(),
		}
	}
	return views
}

// ListDestinations returns the marketed destinations with their add-ons.
func (s *bookingService) ListDestinations() []models.DestinationView {
	destinations := s.catalog.Destinations()

	views := make([]models.DestinationView, len(destinations))
	for i, dest := range destinations {
		view := models.DestinationView{Destination: dest}
		for _, addOn := range s.catalog.AddOnsForDestination(dest.Slug) {
			view.AddOns = append(view.AddOns, models.AddOnView{
				AddOn:           addOn,
				PriceEURDisplay: pricing.FormatEUR(addOn.PriceEUR),
				PriceXOFDisplay: pricing.FormatXOF(s.conv.ToXOF(addOn.PriceEUR)),
			})
		}
		views[i] = view
	}
	return views
}
