package notify

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/songzhibin97/solscout/internal/utils/logger"
	"github.com/songzhibin97/solscout/internal/utils/request"
)

const DefaultTelegramAPI = "https://api.telegram.org"

// TelegramNotifier implements Notifier via the Telegram bot API
type TelegramNotifier struct {
	apiBase    string
	botToken   string
	chatID     string
	httpClient *resty.Client
	logger     logger.Logger
}

func NewTelegramNotifier(apiBase, botToken, chatID string, log logger.Logger) *TelegramNotifier {
	if apiBase == "" {
		apiBase = DefaultTelegramAPI
	}
	return &TelegramNotifier{
		apiBase:    apiBase,
		botToken:   botToken,
		chatID:     chatID,
		httpClient: request.Request,
		logger:     log,
	}
}

func FormatMessage(ca string) string {
	return fmt.Sprintf("Token CA: %s passed all criteria.", ca)
}

// Notify sends ca once. Errors are logged, not returned or retried.
func (n *TelegramNotifier) Notify(ctx context.Context, ca string) {
	if err := n.Send(ctx, ca); err != nil {
		n.logger.Error("failed to send CA to telegram bot", "ca", ca, "err", err)
		return
	}
	n.logger.Info("sent CA to telegram bot", "ca", ca)
}

func (n *TelegramNotifier) Send(ctx context.Context, ca string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)

	resp, err := n.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(Message{ChatID: n.chatID, Text: FormatMessage(ca)}).
		Post(url)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("received non-2xx response: %s", resp.Status())
	}

	return nil
}
