package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config.yaml"

	defaultAPIBase       = "http://localhost:8000"
	defaultProvider      = "gemini"
	defaultModel         = "gemini-2.0-pro"
	defaultCreateStyle   = "trung tính"
	defaultLengthWords   = 800
	defaultPodcastStyle  = "Trò chuyện thân mật"
	defaultTone          = "tự nhiên"
	defaultTarget        = "ngắn gọn, dễ hiểu"
	defaultOutputDir     = "./output"
	defaultGCSPrefix     = "scripts"
	defaultMarkdownWidth = 100
	envAPIBase           = "API_BASE"
	envGCSBucket         = "GCS_BUCKET"
	envGoogleCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
)

// Config is loaded once at startup and treated as read-only afterwards.
type Config struct {
	GCSBucket string

	API     APIConfig     `yaml:"api"`
	Create  CreateConfig  `yaml:"create"`
	Podcast PodcastConfig `yaml:"podcast"`
	Rewrite RewriteConfig `yaml:"rewrite"`
	Output  OutputConfig  `yaml:"output"`
	GCS     GCSConfig     `yaml:"gcs"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type CreateConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Style       string `yaml:"style"`
	LengthWords int    `yaml:"length_words"`
}

type PodcastConfig struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	Style      string `yaml:"style"`
	Characters string `yaml:"characters"`
}

type RewriteConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Tone     string `yaml:"tone"`
	Target   string `yaml:"target"`
}

type OutputConfig struct {
	Dir           string `yaml:"dir"`
	Markdown      bool   `yaml:"markdown"`
	MarkdownWidth int    `yaml:"markdown_width"`
}

type GCSConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Prefix          string `yaml:"prefix"`
	CredentialsFile string `yaml:"credentials_file"`
}

func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	if path == "" {
		path = DefaultConfigPath
	}

	cfg := &Config{}
	if err := loadYAMLConfig(path, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAMLConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No config file found, using defaults", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envAPIBase); v != "" {
		cfg.API.BaseURL = v
	}
	cfg.GCSBucket = os.Getenv(envGCSBucket)
	cfg.GCS.CredentialsFile = getEnvOrDefault(envGoogleCredentials, cfg.GCS.CredentialsFile)
}

func applyDefaults(cfg *Config) {
	applyAPIDefaults(cfg)
	applyCreateDefaults(cfg)
	applyPodcastDefaults(cfg)
	applyRewriteDefaults(cfg)
	applyOutputDefaults(cfg)
	applyGCSDefaults(cfg)
}

func applyAPIDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultAPIBase
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
}

func applyCreateDefaults(cfg *Config) {
	if cfg.Create.Provider == "" {
		cfg.Create.Provider = defaultProvider
	}
	if cfg.Create.Model == "" {
		cfg.Create.Model = defaultModel
	}
	if cfg.Create.Style == "" {
		cfg.Create.Style = defaultCreateStyle
	}
	if cfg.Create.LengthWords <= 0 {
		cfg.Create.LengthWords = defaultLengthWords
	}
}

func applyPodcastDefaults(cfg *Config) {
	if cfg.Podcast.Provider == "" {
		cfg.Podcast.Provider = defaultProvider
	}
	if cfg.Podcast.Model == "" {
		cfg.Podcast.Model = defaultModel
	}
	if cfg.Podcast.Style == "" {
		cfg.Podcast.Style = defaultPodcastStyle
	}
}

func applyRewriteDefaults(cfg *Config) {
	if cfg.Rewrite.Provider == "" {
		cfg.Rewrite.Provider = defaultProvider
	}
	if cfg.Rewrite.Model == "" {
		cfg.Rewrite.Model = defaultModel
	}
	if cfg.Rewrite.Tone == "" {
		cfg.Rewrite.Tone = defaultTone
	}
	if cfg.Rewrite.Target == "" {
		cfg.Rewrite.Target = defaultTarget
	}
}

func applyOutputDefaults(cfg *Config) {
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = defaultOutputDir
	}
	if cfg.Output.MarkdownWidth <= 0 {
		cfg.Output.MarkdownWidth = defaultMarkdownWidth
	}
}

func applyGCSDefaults(cfg *Config) {
	if cfg.GCS.Prefix == "" {
		cfg.GCS.Prefix = defaultGCSPrefix
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api base url %q: scheme must be http or https", c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api base url %q: missing host", c.API.BaseURL)
	}
	if c.GCS.Enabled && c.GCSBucket == "" {
		return errors.New("gcs.enabled requires GCS_BUCKET")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
