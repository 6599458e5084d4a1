package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/logging"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/observability/tracing"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/service/notify"
)

const (
	parseModeHTML = "HTML"

	// provider error bodies are short; anything longer is truncated
	maxErrorBody = 4096
)

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ notify.Dispatcher = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts a single sendMessage call. It does not retry.
func (c *Client) Send(ctx context.Context, settings *domain.TelegramSettings, text string) error {
	if settings == nil || !settings.IsConfigured() {
		return fmt.Errorf("%w: telegram settings are incomplete", notify.ErrDeliveryFailed)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}

	ctx, span := tracing.StartExternalAPISpan(ctx, "telegram.send_message", u.Host)
	defer span.End()

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    settings.ChatID,
		Text:      text,
		ParseMode: parseModeHTML,
	})
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	// the token is part of the path, so the full URL is never logged
	endpoint := c.baseURL + "/bot" + settings.BotToken + "/sendMessage"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		tracing.RecordError(span, err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send telegram request",
			slog.String("event", "telegram.send.fail"),
			slog.String("host", u.Host),
			slog.String("error", redactToken(err.Error(), settings.BotToken)),
		)
		wrapped := fmt.Errorf("%w: %s", notify.ErrDeliveryFailed, redactToken(err.Error(), settings.BotToken))
		tracing.RecordError(span, wrapped)
		return wrapped
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		slog.DebugContext(ctx, "telegram message sent",
			slog.Int("status_code", resp.StatusCode),
		)
		tracing.RecordError(span, nil)
		return nil
	}

	description := http.StatusText(resp.StatusCode)
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if readErr == nil {
		var apiResp apiResponse
		if err := json.Unmarshal(raw, &apiResp); err == nil && apiResp.Description != "" {
			description = apiResp.Description
		}
	}

	slog.ErrorContext(ctx, "telegram rejected message",
		slog.String("event", "telegram.send.rejected"),
		slog.Int("status_code", resp.StatusCode),
		slog.String("description", description),
	)

	wrapped := fmt.Errorf("%w: status %d: %s", notify.ErrDeliveryFailed, resp.StatusCode, description)
	tracing.RecordError(span, wrapped)
	return wrapped
}

func redactToken(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, "<redacted>")
}
