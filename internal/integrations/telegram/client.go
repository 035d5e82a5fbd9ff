package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Telegram Bot API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Bot API
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendMessage отправляет текстовое сообщение в чат
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if resp.StatusCode != http.StatusOK || !apiResp.OK {
		return fmt.Errorf("%w: status %d, code %d: %s", ErrRejected, resp.StatusCode, apiResp.ErrorCode, apiResp.Description)
	}

	c.log.Info("Telegram message sent to chat_id=%s", chatID)
	return nil
}
