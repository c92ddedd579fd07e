package rabbitmq

import "github.com/cyb3erasad/Donor-Management-System/internal/models"

// ExchangeName: обменник событий о движении средств.
const ExchangeName = "donations"

// QueueConfig описывает очередь и ключ, которым она привязана к обменнику.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает очереди, которые читает отправитель уведомлений.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notifications.donation_received", RoutingKey: models.RoutingDonationReceived},
		{QueueName: "notifications.donation_disbursed", RoutingKey: models.RoutingDonationDisbursed},
	}
}
