package textlk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент SMS-шлюза Text.lk
// В режиме симуляции отправка не выполняется: сообщение логируется
// и считается успешно доставленным
type Client struct {
	baseURL    string
	senderID   string
	apiToken   string
	simulate   bool
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Text.lk
func NewClient(baseURL, senderID, apiToken string, simulate bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		senderID: senderID,
		apiToken: apiToken,
		simulate: simulate,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет SMS на номер recipient (в международном формате)
// Возвращает человекочитаемый статус шлюза
func (c *Client) Send(ctx context.Context, recipient, message string) (string, error) {
	if c.simulate {
		c.log.Info("SMS simulation: to=%s from=%s message=%q", recipient, c.senderID, message)
		return "SMS simulated successfully.", nil
	}

	params := url.Values{}
	params.Set("recipient", recipient)
	params.Set("sender_id", c.senderID)
	params.Set("message", message)
	params.Set("api_token", c.apiToken)

	requestURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Text.lk request failed: %v", err)
		return "", fmt.Errorf("%w: failed to reach gateway: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("Text.lk returned status %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("%w: unexpected status code %d", ErrGateway, resp.StatusCode)
	}

	var result sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrGateway, err)
	}

	if result.Status != "success" {
		c.log.Error("Text.lk rejected message: %s", result.Message)
		return "", fmt.Errorf("%w: %s", ErrGateway, result.Message)
	}

	c.log.Info("SMS sent via Text.lk to %s", recipient)
	if result.Message == "" {
		return "Notification sent successfully.", nil
	}
	return result.Message, nil
}
