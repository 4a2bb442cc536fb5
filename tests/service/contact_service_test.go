package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/internal/service"
	"github.com/lrad-tours/voyages-api/pkg/mailrelay"
	"github.com/lrad-tours/voyages-api/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validContactMessage() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    "Fatou Sall",
		Email:   "fatou@exemple.com",
		Subject: "Question sur les circuits",
		Message: "Bonjour, proposez-vous des départs en famille pendant les vacances scolaires ?",
	}
}

func TestContactSend(t *testing.T) {
	t.Run("relays the message", func(t *testing.T) {
		relay := new(mocks.MockMailRelay)
		relay.On("Send", mock.Anything, mock.MatchedBy(func(msg mailrelay.Message) bool {
			return msg.Name == "Fatou Sall" &&
				msg.Subject == "Question sur les circuits" &&
				!strings.Contains(msg.Body, "Destination :")
		})).Return(nil)

		svc := service.NewContactService(relay, testLinks)

		require.NoError(t, svc.Send(context.Background(), validContactMessage()))
		relay.AssertExpectations(t)
	})

	t.Run("prefixes the body with the chosen destination", func(t *testing.T) {
		relay := new(mocks.MockMailRelay)
		relay.On("Send", mock.Anything, mock.MatchedBy(func(msg mailrelay.Message) bool {
			return strings.HasPrefix(msg.Body, "Destination : Bénin\n\n")
		})).Return(nil)

		svc := service.NewContactService(relay, testLinks)

		msg := validContactMessage()
		msg.Destination = "benin"
		require.NoError(t, svc.Send(context.Background(), msg))
		relay.AssertExpectations(t)
	})

	t.Run("filled honeypot is rejected before any relay call", func(t *testing.T) {
		relay := new(mocks.MockMailRelay)
		svc := service.NewContactService(relay, testLinks)

		msg := validContactMessage()
		msg.Honeypot = "http://spam.example"

		err := svc.Send(context.Background(), msg)
		assert.ErrorIs(t, err, models.ErrSpamDetected)
		relay.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("relay failure surfaces the bare conversation link", func(t *testing.T) {
		relay := new(mocks.MockMailRelay)
		relay.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay unreachable"))

		svc := service.NewContactService(relay, testLinks)

		err := svc.Send(context.Background(), validContactMessage())
		require.Error(t, err)

		var dispatchErr *models.DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		assert.Equal(t, "https://wa.me/221783083535", dispatchErr.Fallback)
	})
}
