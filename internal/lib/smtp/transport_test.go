package smtp

import (
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyb3erasad/Donor-Management-System/internal/config"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTransport_NotConfigured(t *testing.T) {
	tr := NewTransport(config.SMTP{}, newNoopLogger())

	client, err := tr.Connect()
	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTransport_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	tr := NewTransport(config.SMTP{SMTPHost: host, SMTPPort: port}, newNoopLogger())

	client, err := tr.Connect()
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "smtp.Connect")
}

func TestTransport_Sender(t *testing.T) {
	tr := NewTransport(config.SMTP{SMTPUser: "noreply@careconnect.org"}, newNoopLogger())
	assert.Equal(t, "noreply@careconnect.org", tr.Sender())
}
