package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultAPITimeout         = 30 * time.Second
	defaultSessionInterval    = time.Minute
	defaultStorageURL         = "mem://"
	defaultQRCodeSize         = 256
	defaultQRCodeRecoveryCode = "M"
	defaultGatewayHost        = "127.0.0.1"
	defaultGatewayPort        = 8088
	defaultGatewayBodyLimit   = "12M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API is the remote REST backend every repository talks to.
	API APIConfig `json:"api" yaml:"api"`

	WebSocket *WebSocketConfig `json:"websocket" yaml:"websocket"`

	OAuth *OAuthConfig `json:"oauth" yaml:"oauth"`

	Features FeatureFlags `json:"features" yaml:"features"`

	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	// Storage holds the durable client storage location (tokens and UI flags).
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Gateway GatewayConfig `json:"gateway" yaml:"gateway"`

	Session SessionConfig `json:"session" yaml:"session"`

	// QRCode configuration for lookbook and outfit share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how the backend is reached.
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// WebSocketConfig defines the realtime notification channel.
type WebSocketConfig struct {
	URL string `json:"url" yaml:"url"`
}

// OAuthConfig holds the optional social login providers.
// A provider without a client ID is disabled.
type OAuthConfig struct {
	Google struct {
		ClientID    string `json:"clientId" yaml:"clientId"`
		RedirectURL string `json:"redirectUrl" yaml:"redirectUrl"`
	} `json:"google" yaml:"google"`
	Facebook struct {
		AppID       string `json:"appId" yaml:"appId"`
		RedirectURL string `json:"redirectUrl" yaml:"redirectUrl"`
	} `json:"facebook" yaml:"facebook"`
}

// FeatureFlags toggles optional product areas.
type FeatureFlags struct {
	VisualSearch bool `json:"visualSearch" yaml:"visualSearch"`
	Social       bool `json:"social" yaml:"social"`
	Lookbooks    bool `json:"lookbooks" yaml:"lookbooks"`
	Realtime     bool `json:"realtime" yaml:"realtime"`
}

// AnalyticsConfig defines where usage events are published
type AnalyticsConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// TrackingID identifies this client in published events. Empty disables analytics.
	TrackingID string `json:"trackingId" yaml:"trackingId"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// StorageConfig points at a gocloud blob bucket URL, e.g. file:///var/lib/curator?create_dir=true
type StorageConfig struct {
	URL string `json:"url" yaml:"url"`
}

// GatewayConfig defines the local presentation gateway.
type GatewayConfig struct {
	Host               string          `json:"host" yaml:"host"`
	Port               int             `json:"port" yaml:"port"`
	MaxRequestBodySize string          `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           GatewayTimeouts `json:"timeouts" yaml:"timeouts"`
}

type GatewayTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// SessionConfig defines how often stored tokens are re-validated.
type SessionConfig struct {
	CheckInterval time.Duration `json:"checkInterval" yaml:"checkInterval"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")

	if strings.TrimSpace(cfg.Storage.URL) == "" {
		cfg.Storage.URL = defaultStorageURL
	}

	if cfg.Gateway.Host == "" {
		cfg.Gateway.Host = defaultGatewayHost
	}
	if cfg.Gateway.Port <= 0 {
		cfg.Gateway.Port = defaultGatewayPort
	}
	if cfg.Gateway.MaxRequestBodySize == "" {
		cfg.Gateway.MaxRequestBodySize = defaultGatewayBodyLimit
	}

	if cfg.Session.CheckInterval <= 0 {
		cfg.Session.CheckInterval = defaultSessionInterval
	}

	if cfg.QRCode != nil {
		if cfg.QRCode.Size <= 0 {
			cfg.QRCode.Size = defaultQRCodeSize
		}
		if cfg.QRCode.ErrorCorrectionLevel == "" {
			cfg.QRCode.ErrorCorrectionLevel = defaultQRCodeRecoveryCode
		}
	}
}

// Validate reports configuration that would leave the client unusable.
// Optional integrations are never validated here; they disable themselves.
func (cfg *Config) Validate() error {
	if cfg.API.BaseURL == "" {
		return errors.New("api.baseUrl is required")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http://") && !strings.HasPrefix(cfg.API.BaseURL, "https://") {
		return errors.Errorf("api.baseUrl must be an http(s) URL, got %q", cfg.API.BaseURL)
	}

	return nil
}

// RealtimeEnabled reports whether the WebSocket channel should be opened.
func (cfg *Config) RealtimeEnabled() bool {
	return cfg.Features.Realtime && cfg.WebSocket != nil && cfg.WebSocket.URL != ""
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
