package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestClient_Send(t *testing.T) {
	d := &fakeDialer{}
	c := NewClientWithDialer(d, "salon@example.com")

	err := c.Send(context.Background(), "client@example.com", "Subject", "Body")

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"client@example.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"salon@example.com"}, d.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"Subject"}, d.sent[0].GetHeader("Subject"))
}

func TestClient_Send_Errors(t *testing.T) {
	d := &fakeDialer{err: errors.New("535 auth failed")}
	c := NewClientWithDialer(d, "salon@example.com")

	err := c.Send(context.Background(), "client@example.com", "s", "b")
	require.ErrorIs(t, err, ErrSend)

	err = c.Send(context.Background(), "not-an-email", "s", "b")
	require.ErrorIs(t, err, ErrInvalidRecipient)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = c.Send(ctx, "client@example.com", "s", "b")
	require.ErrorIs(t, err, ErrSend)
}
