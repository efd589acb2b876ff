package fintrakclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/fintrak-api/internal/config"
	"github.com/vfg2006/fintrak-api/internal/domain"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fala com a API remota. O token é obtido no primeiro uso e renovado
// uma vez quando o servidor responde 401.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string

	mu    sync.Mutex
	token string
}

func NewClient(cfg config.Remote) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		username: cfg.Username,
		password: cfg.Password,
	}
}

// Login troca as credenciais configuradas por um token
func (c *Client) Login(ctx context.Context) error {
	var user domain.User
	err := c.send(ctx, http.MethodPost, "/auth", nil, domain.Credentials{
		Username: c.username,
		Password: c.password,
	}, &user, "")
	if err != nil {
		return err
	}

	if !user.Authenticated || user.Token == "" {
		return reconciling.ErrUnauthenticated
	}

	c.mu.Lock()
	c.token = user.Token
	c.mu.Unlock()
	return nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// do executa uma requisição autenticada, refazendo o login uma vez em caso de 401
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	token := c.currentToken()
	if token == "" {
		if err := c.Login(ctx); err != nil {
			return err
		}
		token = c.currentToken()
	}

	err := c.send(ctx, method, path, query, body, out, token)
	if !errors.Is(err, reconciling.ErrUnauthenticated) {
		return err
	}

	log.ForContext(ctx).Info("Token remoto rejeitado, autenticando novamente")
	if err := c.Login(ctx); err != nil {
		return err
	}
	return c.send(ctx, method, path, query, body, out, c.currentToken())
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any, token string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", reconciling.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: erro ao decodificar a resposta: %v", reconciling.ErrUnavailable, err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return reconciling.ErrUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		return reconciling.ErrNotFound
	}

	var apiErr struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiErr)

	return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
}

// StatusError é uma resposta fora da faixa 2xx. Desembrulha para ErrUnavailable.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("requisição falhou com status: %d", e.StatusCode)
	}
	return fmt.Sprintf("requisição falhou com status: %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return reconciling.ErrUnavailable
}
