// Package services отправляет письма-уведомления по событиям пожертвований.
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/smtp"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// ErrNoRecipient: у события нет адреса получателя.
var ErrNoRecipient = errors.New("event has no recipient email")

// SenderService формирует и отправляет письма.
type SenderService struct {
	transport smtp.Mailer
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(log *slog.Logger, transport smtp.Mailer) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

func decodeEvent(body []byte) (models.DonationEvent, error) {
	var event models.DonationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("error unmarshalling message: %w", err)
	}
	return event, nil
}

// SendDonationReceipt благодарит донора за пожертвование.
// Событие без email пропускается: донор мог не указать адрес.
func (s *SenderService) SendDonationReceipt(body []byte) error {
	event, err := decodeEvent(body)
	if err != nil {
		s.log.Error("Failed to unmarshal message body", sl.Err(err))
		return err
	}
	if event.Email == "" {
		s.log.Warn("donation receipt skipped", slog.Int64("id", event.ID), sl.Err(ErrNoRecipient))
		return nil
	}

	subject := "CareConnect: thank you for your donation"
	bodyText := fmt.Sprintf("Dear %s,\n\nWe have received your donation of %s (receipt #%d) on %s.\n\nThank you for supporting CareConnect.",
		event.Name, event.Amount, event.ID, event.OccurredAt.Format("02 Jan 2006"))

	return s.sendEmail([]string{event.Email}, subject, bodyText)
}

// SendDisbursementNotice сообщает получателю о выплате.
func (s *SenderService) SendDisbursementNotice(body []byte) error {
	event, err := decodeEvent(body)
	if err != nil {
		s.log.Error("Failed to unmarshal message body", sl.Err(err))
		return err
	}
	if event.Email == "" {
		s.log.Warn("disbursement notice skipped", slog.Int64("id", event.ID), sl.Err(ErrNoRecipient))
		return nil
	}

	subject := "CareConnect: a donation has been given to you"
	bodyText := fmt.Sprintf("Dear %s,\n\nA donation of %s has been given to you for: %s.\nReference #%d, %s.\n\nCareConnect",
		event.Name, event.Amount, event.Purpose, event.ID, event.OccurredAt.Format("02 Jan 2006"))

	return s.sendEmail([]string{event.Email}, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	from := s.transport.Sender()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("Failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(from); err != nil {
		s.log.Error("Failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("Failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("Failed to get Data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("Failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("Failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("Failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}
