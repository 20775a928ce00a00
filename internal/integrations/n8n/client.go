package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для пересылки заявок онбординга в n8n workflow
type Client struct {
	webhookURL string
	userAgent  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиента; timeout покрывает весь исходящий запрос
// (у исходного relay таймаута не было - здесь он задан явно)
func NewClient(webhookURL string, timeout time.Duration, userAgent string, log Logger) *Client {
	return &Client{
		webhookURL: webhookURL,
		userAgent:  userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Forward пересылает payload как JSON тело POST запроса на webhook
// и нормализует ответ. Одна попытка, без ретраев
func (c *Client) Forward(ctx context.Context, payload interface{}) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Info("Forward: sending submission to webhook")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Forward: failed to execute request: %v", err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}
	c.log.Info("Forward: webhook responded with status %d", resp.StatusCode)

	var decoded interface{}
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Если тело декодировалось - вкладываем компактный JSON, иначе сырой текст
		msg := string(raw)
		if decodeErr == nil {
			if compact, err := json.Marshal(decoded); err == nil {
				msg = string(compact)
			}
		}
		return nil, fmt.Errorf("%w (%d): %s", ErrWebhook, resp.StatusCode, msg)
	}

	// Успешный статус с не-JSON телом - не ошибка: отдаём сырой текст как данные
	if decodeErr != nil {
		c.log.Warn("Forward: response body is not valid JSON, passing raw text through")
		return &Result{Data: string(raw)}, nil
	}

	return &Result{Data: decoded}, nil
}
