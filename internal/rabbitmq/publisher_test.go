package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

type MockChannel struct {
	mock.Mock
	mu   sync.Mutex
	msgs []amqp.Publishing
}

func (m *MockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	m.mu.Lock()
	m.msgs = append(m.msgs, msg)
	m.mu.Unlock()
	return args.Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	ch := new(MockChannel)
	ch.On("Publish", ExchangeName, models.RoutingDonationReceived, false, false, mock.Anything).Return(nil)

	p := NewPublisher(ch, ExchangeName)
	err := p.Publish(context.Background(), models.RoutingDonationReceived, models.DonationEvent{ID: 1, Name: "Ali", Email: "ali@x.org", Amount: 5000})
	require.NoError(t, err)

	ch.AssertExpectations(t)
	require.Len(t, ch.msgs, 1)
	assert.Equal(t, "application/json", ch.msgs[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.msgs[0].DeliveryMode)

	var got models.DonationEvent
	require.NoError(t, json.Unmarshal(ch.msgs[0].Body, &got))
	assert.Equal(t, "ali@x.org", got.Email)
	assert.Equal(t, "50.00", got.Amount.String())
}

func TestPublisher_Errors(t *testing.T) {
	t.Run("marshal error", func(t *testing.T) {
		ch := new(MockChannel)
		err := NewPublisher(ch, ExchangeName).Publish(context.Background(), "k", struct{ C chan int }{C: make(chan int)})
		assert.ErrorContains(t, err, "rabbitmq.Publish")
		ch.AssertNotCalled(t, "Publish")
	})

	t.Run("channel error", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(amqp.ErrClosed)
		err := NewPublisher(ch, ExchangeName).Publish(context.Background(), "k", map[string]int{"a": 1})
		assert.ErrorIs(t, err, amqp.ErrClosed)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ch := new(MockChannel)
		err := NewPublisher(ch, ExchangeName).Publish(ctx, "k", 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPublisher_Concurrent(t *testing.T) {
	ch := new(MockChannel)
	ch.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	p := NewPublisher(ch, ExchangeName)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, p.Publish(context.Background(), models.RoutingDonationDisbursed, i))
		}(i)
	}
	wg.Wait()
	assert.Len(t, ch.msgs, 20)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard{}.Publish(context.Background(), "k", nil))
}

func TestGetNotificationQueues(t *testing.T) {
	queues := GetNotificationQueues()
	require.Len(t, queues, 2)

	keys := map[string]bool{}
	seen := map[string]bool{}
	for _, q := range queues {
		assert.Falsef(t, seen[q.QueueName], "duplicate queue name: %s", q.QueueName)
		seen[q.QueueName] = true
		keys[q.RoutingKey] = true
	}
	assert.True(t, keys[models.RoutingDonationReceived])
	assert.True(t, keys[models.RoutingDonationDisbursed])
}

type fakeAck struct {
	acked, nacked, requeue bool
}

func (f *fakeAck) Ack(bool) error { f.acked = true; return nil }
func (f *fakeAck) Nack(_, requeue bool) error {
	f.nacked, f.requeue = true, requeue
	return nil
}

func TestHandle_AckAndNack(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ok := &fakeAck{}
	handle(log, ok, []byte("x"), func([]byte) error { return nil })
	assert.True(t, ok.acked)
	assert.False(t, ok.nacked)

	failed := &fakeAck{}
	handle(log, failed, []byte("x"), func([]byte) error { return errors.New("smtp down") })
	assert.False(t, failed.acked)
	assert.True(t, failed.nacked)
	assert.True(t, failed.requeue)
}
