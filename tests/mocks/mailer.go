package mocks

import (
	"context"

	"github.com/lrad-tours/voyages-api/pkg/emailjs"
	"github.com/lrad-tours/voyages-api/pkg/mailrelay"
	"github.com/stretchr/testify/mock"
)

type MockTransactionalMailer struct {
	mock.Mock
}

func (m *MockTransactionalMailer) Send(ctx context.Context, msg emailjs.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockMailRelay struct {
	mock.Mock
}

func (m *MockMailRelay) Send(ctx context.Context, msg mailrelay.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
