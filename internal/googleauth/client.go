// Package googleauth реализует проверку ID-токена Google через
// endpoint tokeninfo. Используется при федеративном входе.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mitrofanovm/car-rental-backend/internal/config"
)

// TokenInfo содержит проверенные данные ID-токена Google.
type TokenInfo struct {
	Sub     string `json:"sub"`     // Идентификатор пользователя у Google
	Email   string `json:"email"`   // Электронная почта
	Name    string `json:"name"`    // Полное имя
	Picture string `json:"picture"` // Ссылка на аватар
	Aud     string `json:"aud"`     // Идентификатор клиента, для которого выпущен токен
}

// Client клиент для обмена ID-токена на данные пользователя.
type Client struct {
	tokenInfoURL string
	clientID     string
	httpClient   *http.Client
}

// NewClient создаёт клиент проверки токенов по настройкам из конфига.
func NewClient(cfg config.GoogleAuth) *Client {
	return &Client{
		tokenInfoURL: cfg.TokenInfoURL,
		clientID:     cfg.ClientID,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Verify проверяет ID-токен у Google и возвращает данные пользователя.
// Токен, выпущенный для чужого клиента, отклоняется.
func (c *Client) Verify(ctx context.Context, idToken string) (*TokenInfo, error) {
	const op = "googleauth.Verify"

	reqURL := c.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var info TokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if info.Email == "" || info.Sub == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.New("token info has no email or subject"))
	}
	if c.clientID != "" && info.Aud != c.clientID {
		return nil, fmt.Errorf("%s: %w", op, errors.New("token issued for another client"))
	}
	return &info, nil
}

// Значение по умолчанию для таймаута клиента, если конфиг его не задал.
const defaultTimeout = 10 * time.Second

// NewClientWithURL создаёт клиент с явным endpoint. Используется в тестах.
func NewClientWithURL(tokenInfoURL, clientID string) *Client {
	return &Client{
		tokenInfoURL: tokenInfoURL,
		clientID:     clientID,
		httpClient:   &http.Client{Timeout: defaultTimeout},
	}
}
