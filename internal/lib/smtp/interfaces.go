// Package smtp отправляет письма-уведомления через SMTP со STARTTLS.
package smtp

import "io"

// Client: сессия SMTP от MAIL FROM до QUIT.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Mailer открывает сессии SMTP от имени одного отправителя.
type Mailer interface {
	Connect() (Client, error)
	// Sender: адрес в MAIL FROM и заголовке From.
	Sender() string
}
