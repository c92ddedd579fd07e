package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
)

// ConsumerMessage запускает чтение очереди. Каждое сообщение обрабатывается
// в своей горутине (не более 10 одновременно); ошибка обработчика возвращает
// сообщение в очередь.
func ConsumerMessage(ctx context.Context, log *slog.Logger, ch *amqp.Channel, queueName string, handler func([]byte) error) error {
	const op = "rabbitmq.ConsumerMessage"
	delivery, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	go consume(ctx, log.With(slog.String("queue", queueName)), delivery, handler)
	return nil
}

// Acknowledger: подтверждение доставки.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func consume(ctx context.Context, log *slog.Logger, delivery <-chan amqp.Delivery, handler func([]byte) error) {
	sem := make(chan struct{}, 10)
	for {
		select {
		case d, ok := <-delivery:
			if !ok {
				return
			}
			sem <- struct{}{}
			go func(d amqp.Delivery) {
				defer func() { <-sem }()
				handle(log, &d, d.Body, handler)
			}(d)
		case <-ctx.Done():
			return
		}
	}
}

func handle(log *slog.Logger, ack Acknowledger, body []byte, handler func([]byte) error) {
	if err := handler(body); err != nil {
		log.Error("handler failed, message requeued", sl.Err(err))
		if nackErr := ack.Nack(false, true); nackErr != nil {
			log.Error("failed to nack message", sl.Err(nackErr))
		}
		return
	}
	if ackErr := ack.Ack(false); ackErr != nil {
		log.Error("failed to ack message", sl.Err(ackErr))
	}
}
