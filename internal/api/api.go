package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/internal/ports"
	"github.com/lrad-tours/voyages-api/internal/utils"
	"github.com/lrad-tours/voyages-api/internal/validator"
)

// DeparturesHandler serves the departure calendar with derived availability.
// Optional query params: destination (slug), month (1-12).
func DeparturesHandler(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destination := r.URL.Query().Get("destination")

		var month time.Month
		if raw := r.URL.Query().Get("month"); raw != "" {
			m, err := strconv.Atoi(raw)
			if err != nil || m < 1 || m > 12 {
				ae := utils.NewBadRequest("month must be an integer between 1 and 12")
				utils.RenderResponse(w, ae.StatusCode, ae)
				return
			}
			month = time.Month(m)
		}

		departures := service.ListDepartures(destination, month)
		utils.RenderResponse(w, http.StatusOK, map[string]interface{}{
			"departures": departures,
		})
	}
}

// DestinationsHandler serves the destination catalog with add-ons.
func DestinationsHandler(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RenderResponse(w, http.StatusOK, map[string]interface{}{
			"destinations": service.ListDestinations(),
		})
	}
}

// BookingHandler accepts booking intents and dispatches them.
func BookingHandler(service ports.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bookingRequest models.BookingRequest
		if err := utils.JsonDecodeBody(r, &bookingRequest); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(bookingRequest); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		confirmation, err := service.CreateBooking(r.Context(), &bookingRequest)
		if err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusCreated, confirmation)
	}
}

// QuoteHandler accepts custom quote requests.
func QuoteHandler(service ports.QuoteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var quoteRequest models.QuoteRequest
		if err := utils.JsonDecodeBody(r, &quoteRequest); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(quoteRequest); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		if err := service.RequestQuote(r.Context(), &quoteRequest); err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusAccepted, map[string]string{
			"status": "sent",
		})
	}
}

// ContactHandler relays contact messages.
func ContactHandler(service ports.ContactService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg models.ContactMessage
		if err := utils.JsonDecodeBody(r, &msg); err != nil {
			ae := utils.NewBadRequest("error json decoding body")
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		v := validator.NewCustomValidator()
		if err := v.Validate(msg); err != nil {
			ae := utils.NewBadRequest(err.Error())
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}

		if err := service.Send(r.Context(), &msg); err != nil {
			ae := getApiError(err)
			utils.RenderResponse(w, ae.StatusCode, ae)
			return
		}
		utils.RenderResponse(w, http.StatusAccepted, map[string]string{
			"status": "sent",
		})
	}
}

func getApiError(err error) utils.ApiError {
	var dispatchErr *models.DispatchError
	if errors.As(err, &dispatchErr) {
		return utils.ApiError{
			StatusCode: http.StatusBadGateway,
			Msg:        "l'envoi a échoué, veuillez réessayer ou nous contacter via WhatsApp",
			Fallback:   dispatchErr.Fallback,
		}
	}

	ae := utils.ApiError{Msg: err.Error()}
	switch {
	case errors.Is(err, models.ErrDepartureNotFound), errors.Is(err, models.ErrUnknownDestination):
		ae.StatusCode = http.StatusNotFound
	case errors.Is(err, models.ErrDeparturePast), errors.Is(err, models.ErrSoldOut), errors.Is(err, models.ErrTooManyTravelers):
		ae.StatusCode = http.StatusConflict
	case errors.Is(err, models.ErrUnknownAddOn), errors.Is(err, models.ErrSpamDetected):
		ae.StatusCode = http.StatusBadRequest
	default:
		ae.StatusCode = http.StatusInternalServerError
	}
	return ae
}
