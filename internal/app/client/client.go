package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"talkerbase/internal/app/client/config"
	"talkerbase/internal/domain/talker"
)

const requestTimeout = 30 * time.Second

// App é o cliente HTTP da API de palestrantes. Mantém o token de acesso
// em memória e opcionalmente em disco entre execuções.
type App struct {
	config    *config.Config
	log       *slog.Logger
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// WriteRequest é o corpo enviado nas operações de criação e atualização.
type WriteRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Talk struct {
		WatchedAt string `json:"watchedAt"`
		Rate      int    `json:"rate"`
	} `json:"talk"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	client := &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	app := &App{
		config:    cfg,
		log:       log,
		client:    client,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Talkerbase-Client/1.0",
	}

	if token, err := app.loadToken(); err == nil {
		app.token = token
	}

	return app, nil
}

// SetToken define o token usado nas próximas requisições
func (a *App) SetToken(token string) {
	a.token = token
}

// HasToken informa se há um token carregado
func (a *App) HasToken() bool {
	return a.token != ""
}

// SaveToken persiste o token em disco para execuções futuras
func (a *App) SaveToken(token string) error {
	a.token = token
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(data)), nil
}

// CheckConnection verifica a disponibilidade do servidor
func (a *App) CheckConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("servidor indisponível: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("o servidor respondeu com status %d", resp.StatusCode)
	}

	return nil
}

// Login autentica no servidor e devolve o token emitido
func (a *App) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := a.doRequest(ctx, http.MethodPost, "/login", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := a.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	a.token = loginResp.Token
	return loginResp.Token, nil
}

// ListTalkers devolve a coleção completa de palestrantes
func (a *App) ListTalkers(ctx context.Context) ([]talker.Talker, error) {
	resp, err := a.doRequest(ctx, http.MethodGet, "/talker", nil)
	if err != nil {
		return nil, err
	}

	var talkers []talker.Talker
	if err := a.parseResponse(resp, &talkers); err != nil {
		return nil, err
	}
	return talkers, nil
}

// GetTalker busca um palestrante pelo id
func (a *App) GetTalker(ctx context.Context, id int) (*talker.Talker, error) {
	resp, err := a.doRequest(ctx, http.MethodGet, fmt.Sprintf("/talker/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var t talker.Talker
	if err := a.parseResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTalker cadastra um novo palestrante
func (a *App) CreateTalker(ctx context.Context, req WriteRequest) (*talker.Talker, error) {
	resp, err := a.doRequest(ctx, http.MethodPost, "/talker", req)
	if err != nil {
		return nil, err
	}

	var t talker.Talker
	if err := a.parseResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTalker substitui todos os campos de um palestrante existente
func (a *App) UpdateTalker(ctx context.Context, id int, req WriteRequest) (*talker.Talker, error) {
	resp, err := a.doRequest(ctx, http.MethodPut, fmt.Sprintf("/talker/%d", id), req)
	if err != nil {
		return nil, err
	}

	var t talker.Talker
	if err := a.parseResponse(resp, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTalker remove um palestrante pelo id
func (a *App) DeleteTalker(ctx context.Context, id int) error {
	resp, err := a.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/talker/%d", id), nil)
	if err != nil {
		return err
	}

	return a.parseResponse(resp, nil)
}

func (a *App) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", a.userAgent)
	if a.token != "" {
		req.Header.Set("Authorization", a.token)
	}

	a.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	return resp, nil
}

func (a *App) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	a.log.Debug("response received", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%s", errResp.Message)
		}
		return fmt.Errorf("o servidor respondeu com status %d", resp.StatusCode)
	}

	if result == nil || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
