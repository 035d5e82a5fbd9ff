package notifications

import "context"

// MessageSender отправка сообщений в Telegram
type MessageSender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// MailSender отправка писем
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Metrics учёт результатов отправки
type Metrics interface {
	RecordNotification(channel, kind string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
