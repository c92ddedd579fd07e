// Package rabbitmq содержит подключение к RabbitMQ, объявление обменника
// donations с очередями уведомлений, публикацию и потребление событий.
package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Connect подключается к брокеру за не более чем retries попыток.
// Между попытками выдерживается пауза delay, после последней паузы нет.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"

	attempts := max(retries, 1)
	for attempt := 1; ; attempt++ {
		conn, err := amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		if attempt == attempts {
			return nil, fmt.Errorf("%s: giving up after %d attempts: %w", op, attempts, err)
		}
		time.Sleep(delay)
	}
}

// SetupChannel открывает канал, объявляет обменник и привязывает к нему очереди.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("%s: failed to set QoS: %w", op, err)
	}

	if err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range queues {
		if _, err := ch.QueueDeclare(q.QueueName, true, false, false, false, nil); err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, q.QueueName, err)
		}
		if err = ch.QueueBind(q.QueueName, q.RoutingKey, ExchangeName, false, nil); err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w", op, q.QueueName, q.RoutingKey, err)
		}
	}

	return ch, nil
}
