package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sant0-9/nebulaextract/internal/config"
)

const apiKeyHeader = "x-goog-api-key"

// GeminiConfig holds everything the client needs. The API key is passed in
// explicitly; the client never reads the environment.
type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	// Auth is config.AuthQuery (key query parameter) or config.AuthHeader.
	Auth string
	// APIKeyEnv names the variable the key came from, for error messages.
	APIKeyEnv string
	Logger    *zap.Logger
}

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	auth       string
	log        *zap.Logger
	httpClient *http.Client
}

func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		if cfg.APIKeyEnv == "" {
			cfg.APIKeyEnv = config.DefaultAPIKeyEnv
		}
		return nil, &config.ConfigurationError{Var: cfg.APIKeyEnv}
	}
	if cfg.Model == "" {
		cfg.Model = config.DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Auth == "" {
		cfg.Auth = config.AuthQuery
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		auth:    cfg.Auth,
		log:     cfg.Logger.Named("gemini"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

func (g *GeminiClient) Model() string {
	return g.model
}

func (g *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
}

// GenerateContent sends the prompt as a single content part and returns the
// decoded response. Exactly one attempt is made.
func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (*GenerateResponse, error) {
	body, err := json.Marshal(NewTextRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := g.endpoint()
	target := endpoint
	if g.auth == config.AuthQuery {
		target += "?key=" + url.QueryEscape(g.apiKey)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", g.redact(err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.auth == config.AuthHeader {
		httpReq.Header.Set(apiKeyHeader, g.apiKey)
	}

	g.log.Debug("sending request",
		zap.String("endpoint", endpoint),
		zap.String("model", g.model),
		zap.Int("prompt_len", len(prompt)),
	)
	start := time.Now()

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", g.redact(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: read response: %w", g.redact(err))
	}

	g.log.Debug("received response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
		zap.Int("body_len", len(raw)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteCallError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	out, err := DecodeResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}

	fields := []zap.Field{zap.Int("candidates", len(out.Candidates))}
	if out.UsageMetadata != nil {
		fields = append(fields, zap.Int("total_tokens", out.UsageMetadata.TotalTokenCount))
	}
	g.log.Debug("decoded response", fields...)

	return out, nil
}

// redact strips the API key from URL errors so it never reaches logs or output.
func (g *GeminiClient) redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = g.endpoint()
	}
	if g.apiKey != "" && strings.Contains(err.Error(), g.apiKey) {
		return errors.New(strings.ReplaceAll(err.Error(), g.apiKey, "REDACTED"))
	}
	return err
}
