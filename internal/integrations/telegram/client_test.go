package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func TestClient_SendMessage(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "TOKEN", time.Second, logger.NewNop())
	err := c.SendMessage(context.Background(), "-100500", "hello")

	require.NoError(t, err)
	assert.Equal(t, "-100500", got.ChatID)
	assert.Equal(t, "hello", got.Text)
}

func TestClient_SendMessage_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"chat not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, logger.NewNop())
	err := c.SendMessage(context.Background(), "1", "hello")

	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestClient_SendMessage_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "TOKEN", time.Second, logger.NewNop())
	err := c.SendMessage(context.Background(), "1", "hello")

	require.ErrorIs(t, err, ErrInvalidResponse)
}
