package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/danilosilva441/projeto-faturamento/internal/core/domain"
	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func sampleEvent() domain.RevenueEvent {
	return domain.RevenueEvent{
		EventID:     "evt-1",
		Type:        domain.RevenueEntryCreated,
		EntryID:     7,
		OperationID: 1,
		Date:        "2025-01-10",
		Amount:      decimal.RequireFromString("100.00"),
		OccurredAt:  time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishRevenueEvent(t *testing.T) {
	ch := new(mockChannel)
	publisher := newPublisher(ch, "faturamento.events")

	ch.On("PublishWithContext", mock.Anything, "faturamento.events", "revenue_entry.created", false, false,
		mock.MatchedBy(func(msg amqp091.Publishing) bool {
			var decoded domain.RevenueEvent
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp091.Persistent &&
				msg.ContentType == "application/json" &&
				msg.MessageId == "evt-1" &&
				decoded.EntryID == 7 &&
				decoded.Amount.Equal(decimal.NewFromInt(100))
		})).Return(nil).Once()

	require.NoError(t, publisher.PublishRevenueEvent(context.Background(), sampleEvent()))
	ch.AssertExpectations(t)
}

func TestPublisher_PublishFailure(t *testing.T) {
	ch := new(mockChannel)
	publisher := newPublisher(ch, "faturamento.events")

	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()

	err := publisher.PublishRevenueEvent(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "channel closed")
}

func TestPublisher_Close(t *testing.T) {
	ch := new(mockChannel)
	ch.On("Close").Return(nil).Once()

	assert.NoError(t, newPublisher(ch, "x").Close())
	ch.AssertExpectations(t)
}
