package dispatch_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	models "github.com/lrad-tours/voyages-api/internal"
	"github.com/lrad-tours/voyages-api/internal/dispatch"
	"github.com/lrad-tours/voyages-api/pkg/emailjs"
	"github.com/lrad-tours/voyages-api/pkg/whatsapp"
	"github.com/lrad-tours/voyages-api/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testIntent() models.BookingIntent {
	return models.BookingIntent{
		Reference: uuid.New(),
		Departure: models.Departure{
			ID:              1,
			Destination:     "senegal",
			DestinationName: "Sénégal",
			DepartureDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			ReturnDate:      time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC),
		},
		Customer: models.Customer{
			FirstName: "Awa",
			LastName:  "Diop",
			Email:     "awa@exemple.com",
			Phone:     "+221771234567",
		},
		Travelers: 2,
		TotalEUR:  1730,
	}
}

func TestSubmitEmail(t *testing.T) {
	links := whatsapp.NewLinkBuilder("221783083535")

	t.Run("success", func(t *testing.T) {
		mailer := new(mocks.MockTransactionalMailer)
		mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg emailjs.Message) bool {
			return msg.Subject == "Nouvelle réservation - Sénégal" &&
				msg.FromName == "Awa Diop" &&
				msg.FromEmail == "awa@exemple.com"
		})).Return(nil)

		sub := dispatch.NewSubmission(mailer, links)
		intent := testIntent()

		receipt, err := sub.Submit(context.Background(), intent, "résumé", models.ChannelEmail)
		require.NoError(t, err)

		assert.Equal(t, models.ChannelEmail, receipt.Channel)
		assert.Equal(t, intent.Reference, receipt.Reference)
		assert.Empty(t, receipt.DeepLink)
		assert.False(t, receipt.SentAt.IsZero())

		_, ok := sub.State().(dispatch.Succeeded)
		assert.True(t, ok)
		mailer.AssertExpectations(t)
	})

	t.Run("failure carries the whatsapp fallback", func(t *testing.T) {
		mailer := new(mocks.MockTransactionalMailer)
		sendErr := errors.New("smtp gateway down")
		mailer.On("Send", mock.Anything, mock.Anything).Return(sendErr)

		sub := dispatch.NewSubmission(mailer, links)

		_, err := sub.Submit(context.Background(), testIntent(), "résumé", models.ChannelEmail)
		require.Error(t, err)

		var dispatchErr *models.DispatchError
		require.ErrorAs(t, err, &dispatchErr)
		assert.ErrorIs(t, err, sendErr)
		assert.True(t, strings.HasPrefix(dispatchErr.Fallback, "https://wa.me/221783083535?text="))

		failed, ok := sub.State().(dispatch.Failed)
		require.True(t, ok)
		assert.Equal(t, dispatchErr.Fallback, failed.Fallback)
	})

	t.Run("failed submission can retry", func(t *testing.T) {
		mailer := new(mocks.MockTransactionalMailer)
		mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("transient")).Once()
		mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

		sub := dispatch.NewSubmission(mailer, links)
		intent := testIntent()

		_, err := sub.Submit(context.Background(), intent, "résumé", models.ChannelEmail)
		require.Error(t, err)

		receipt, err := sub.Submit(context.Background(), intent, "résumé", models.ChannelEmail)
		require.NoError(t, err)
		assert.Equal(t, models.ChannelEmail, receipt.Channel)
		mailer.AssertExpectations(t)
	})
}

func TestSubmitWhatsApp(t *testing.T) {
	links := whatsapp.NewLinkBuilder("221783083535")

	mailer := new(mocks.MockTransactionalMailer)
	sub := dispatch.NewSubmission(mailer, links)
	intent := testIntent()

	receipt, err := sub.Submit(context.Background(), intent, "Bonjour, je souhaite réserver", models.ChannelWhatsApp)
	require.NoError(t, err)

	assert.Equal(t, models.ChannelWhatsApp, receipt.Channel)
	assert.True(t, strings.HasPrefix(receipt.DeepLink, "https://wa.me/221783083535?text="))

	_, ok := sub.State().(dispatch.Succeeded)
	assert.True(t, ok)

	// deep links never touch the mail collaborator
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNewSubmissionStartsIdle(t *testing.T) {
	sub := dispatch.NewSubmission(new(mocks.MockTransactionalMailer), whatsapp.NewLinkBuilder("221783083535"))
	_, ok := sub.State().(dispatch.Idle)
	assert.True(t, ok)
}
