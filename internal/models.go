package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxTravelersPerBooking caps the selectable traveler range on a single
// booking regardless of remaining seats.
const MaxTravelersPerBooking = 10

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

var (
	ErrDepartureNotFound  = errors.New("departure not found")
	ErrDeparturePast      = errors.New("departure date already passed")
	ErrSoldOut            = errors.New("departure is sold out")
	ErrTooManyTravelers   = errors.New("traveler count exceeds the bookable range")
	ErrUnknownAddOn       = errors.New("add-on not available for this departure")
	ErrUnknownDestination = errors.New("destination not found")
	ErrSpamDetected       = errors.New("spam detected")
)

// DispatchError is the single external-dispatch failure kind: the mail
// collaborator rejected the send or the network failed. Fallback carries the
// WhatsApp deep link offered as the alternative channel.
type DispatchError struct {
	Cause    error
	Fallback string
}

func (e *DispatchError) Error() string {
	return "dispatch failed: " + e.Cause.Error()
}

func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// Destination is one of the marketed countries.
type Destination struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Departure is a scheduled trip instance. AvailableSeats and TotalSeats are
// the canonical seat fields; booked seats are always derived as
// TotalSeats-AvailableSeats, never stored.
type Departure struct {
	ID              int       `json:"id"`
	Destination     string    `json:"destination"`
	DestinationName string    `json:"destination_name"`
	DepartureDate   time.Time `json:"departure_date"`
	ReturnDate      time.Time `json:"return_date"`
	AvailableSeats  int       `json:"available_seats"`
	TotalSeats      int       `json:"total_seats"`
	PriceEUR        float64   `json:"price_eur"`
	DurationDays    int       `json:"duration_days"`
}

// AddOn is an optional itinerary extension tied to a destination.
type AddOn struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Name        string   `json:"name"`
	Duration    string   `json:"duration"`
	PriceEUR    float64  `json:"price_eur"`
	Included    []string `json:"included"`
	Activities  []string `json:"activities"`
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type BookingRequest struct {
	FirstName       string   `json:"first_name" validate:"required,min=2,max=50"`
	LastName        string   `json:"last_name" validate:"required,min=2,max=50"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,phone"`
	DepartureID     int      `json:"departure_id" validate:"required"`
	Travelers       int      `json:"travelers" validate:"required,min=1,max=10"`
	AddOnIDs        []string `json:"add_on_ids"`
	SpecialRequests string   `json:"special_requests" validate:"max=1000"`
	Channel         Channel  `json:"channel" validate:"omitempty,oneof=email whatsapp"`
}

// BookingIntent is the ephemeral record of a submitted reservation request.
// It exists only for the lifetime of one dispatch; nothing persists it.
type BookingIntent struct {
	Reference       uuid.UUID `json:"reference"`
	Departure       Departure `json:"departure"`
	Customer        Customer  `json:"customer"`
	Travelers       int       `json:"travelers"`
	AddOns          []AddOn   `json:"add_ons,omitempty"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	TotalEUR        float64   `json:"total_eur"`
	CreatedAt       time.Time `json:"created_at"`
}

type BookingConfirmation struct {
	Intent      BookingIntent `json:"intent"`
	Summary     string        `json:"summary"`
	TotalEUR    string        `json:"total_eur"`
	TotalXOF    string        `json:"total_xof"`
	Channel     Channel       `json:"channel"`
	WhatsAppURL string        `json:"whatsapp_url,omitempty"`
}

type QuoteRequest struct {
	FirstName         string   `json:"first_name" validate:"required,min=2,max=50"`
	LastName          string   `json:"last_name" validate:"required,min=2,max=50"`
	Email             string   `json:"email" validate:"required,email"`
	Phone             string   `json:"phone" validate:"required,phone"`
	Destination       string   `json:"destination" validate:"required,destination"`
	DepartureDate     string   `json:"departure_date" validate:"required,iso_date"`
	ReturnDate        string   `json:"return_date" validate:"required,iso_date"`
	Travelers         int      `json:"travelers" validate:"required,min=1,max=50"`
	AccommodationType string   `json:"accommodation_type" validate:"required"`
	BudgetRange       string   `json:"budget_range" validate:"required"`
	Activities        []string `json:"activities"`
	SpecificNeeds     string   `json:"specific_needs" validate:"max=1000"`
	AdditionalInfo    string   `json:"additional_info" validate:"max=1000"`
}

// ContactMessage is the standalone contact-form payload. Honeypot must stay
// empty; submissions filling it are rejected before any relay call.
type ContactMessage struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Subject     string `json:"subject" validate:"required,min=5,max=100"`
	Message     string `json:"message" validate:"required,min=10,max=1000"`
	Destination string `json:"destination" validate:"omitempty,destination"`
	Honeypot    string `json:"honeypot"`
}

// DepartureView is a calendar row with display-ready derived state.
type DepartureView struct {
	Departure
	Status          string  `json:"status"`
	AvailabilityPct float64 `json:"availability_pct"`
	PriceEURDisplay string  `json:"price_eur_display"`
	PriceXOFDisplay string  `json:"price_xof_display"`
	ReserveDisabled bool    `json:"reserve_disabled"`
}

type AddOnView struct {
	AddOn
	PriceEURDisplay string `json:"price_eur_display"`
	PriceXOFDisplay string `json:"price_xof_display"`
}

type DestinationView struct {
	Destination
	AddOns []AddOnView `json:"add_ons,omitempty"`
}

// DestinationLabel maps a form slug to its display name. Unknown slugs pass
// through unchanged.
func DestinationLabel(slug string) string {
	switch slug {
	case "senegal":
		return "Sénégal"
	case "capvert":
		return "Cap-Vert"
	case "benin":
		return "Bénin"
	case "autre":
		return "Autre destination"
	default:
		return slug
	}
}
