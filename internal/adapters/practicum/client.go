package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework-bot/internal/domain"
	"homework-bot/internal/infra/metrics"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Client выполняет запросы статусов домашних работ к API Практикума.
// Повторов внутри нет: темп задаёт цикл опроса.
type Client struct {
	http     *http.Client
	endpoint string
	token    string
}

var _ domain.StatusSource = (*Client)(nil)

// NewClient создаёт клиента API Практикума.
func NewClient(token, endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
		token:    token,
	}
}

// Fetch запрашивает статусы работ, изменившиеся начиная с fromDate.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (domain.StatusPage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return domain.StatusPage{}, fmt.Errorf("practicum: построение запроса: %w", err)
	}
	query := url.Values{"from_date": []string{strconv.FormatInt(fromDate, 10)}}
	httpReq.URL.RawQuery = query.Encode()
	httpReq.Header.Set("Authorization", "OAuth "+c.token)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.ObserveNetworkRequest("practicum", "homework_statuses", c.endpoint, start, err)
		return domain.StatusPage{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveNetworkRequest("practicum", "homework_statuses", c.endpoint, start, err)
		return domain.StatusPage{}, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusCodeError{Code: resp.StatusCode}
		metrics.ObserveNetworkRequest("practicum", "homework_statuses", c.endpoint, start, statusErr)
		return domain.StatusPage{}, statusErr
	}
	var page domain.StatusPage
	if err := json.Unmarshal(body, &page); err != nil {
		decodeErr := &DecodeError{Err: err}
		metrics.ObserveNetworkRequest("practicum", "homework_statuses", c.endpoint, start, decodeErr)
		return domain.StatusPage{}, decodeErr
	}
	metrics.ObserveNetworkRequest("practicum", "homework_statuses", c.endpoint, start, nil)
	return page, nil
}
