// Package backend реализует клиент REST-бэкенда, хранящего коллекции
// товаров и пользователей. Клиент не делает повторных попыток и не
// ограничивает время запроса: зависший бэкенд оставляет операцию
// незавершённой, как и в исходной панели.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"
)

// Client выполняет запросы к бэкенду по фиксированному адресу.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент бэкенда.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	url := c.baseURL + path
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do выполняет запрос и декодирует тело ответа в out, если out не nil.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.New("unexpected status: " + resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newFragmentID возвращает случайный фрагмент в base-36 из девяти символов.
// Такой же идентификатор исходная панель подставляла в тело запроса на
// создание товара; глобальная уникальность не гарантируется, за неё
// отвечает бэкенд.
func newFragmentID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}
