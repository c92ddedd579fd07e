// Package sender собирает приложение, рассылающее письма о пожертвованиях
// и выплатах из очередей RabbitMQ.
package sender

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/cyb3erasad/Donor-Management-System/internal/config"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/smtp"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
	"github.com/cyb3erasad/Donor-Management-System/internal/rabbitmq"
	senderservice "github.com/cyb3erasad/Donor-Management-System/internal/services/sender"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)
	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderservice.NewSenderService(logger, transport),
		logger:        logger,
	}, nil
}

// Handlers сопоставляет ключ маршрутизации обработчику письма.
func Handlers(s *senderservice.SenderService) map[string]func([]byte) error {
	return map[string]func([]byte) error{
		models.RoutingDonationReceived:  s.SendDonationReceipt,
		models.RoutingDonationDisbursed: s.SendDisbursementNotice,
	}
}

func (a *App) Run(ctx context.Context) error {
	handlers := Handlers(a.senderService)
	for _, q := range rabbitmq.GetNotificationQueues() {
		handler, ok := handlers[q.RoutingKey]
		if !ok {
			return fmt.Errorf("sender.Run: no handler for routing key %q", q.RoutingKey)
		}
		if err := rabbitmq.ConsumerMessage(ctx, a.logger, a.ch, q.QueueName, handler); err != nil {
			a.logger.Error("failed to start consumer", slog.String("queue", q.QueueName), sl.Err(err))
			return err
		}
		a.logger.Info("consumer started", slog.String("queue", q.QueueName))
	}

	<-ctx.Done()
	a.logger.Info("Sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
	return nil
}
