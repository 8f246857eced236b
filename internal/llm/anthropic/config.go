package anthropic

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/loanguard/loanguard/internal/common"
)

// Config for the extraction-service client.
type Config struct {
	APIKey    string        // if empty, falls back to env ANTHROPIC_API_KEY
	BaseURL   string        // default https://api.anthropic.com/v1
	Model     string        // e.g., "claude-sonnet-4-20250514"
	MaxTokens int           // response token budget
	Timeout   time.Duration // http client timeout
	Version   string        // anthropic-version header
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

// NewClient validates credentials up front: a missing API key is a
// configuration error raised before any network attempt. The decision to
// substitute the deterministic extractor on that error belongs to the
// caller, never this client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, common.NewAppError("CONFIG_ERROR", "ANTHROPIC_API_KEY is required", common.ErrConfiguration)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 8000
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.Version == "" {
		cfg.Version = "2023-06-01"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}
