package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath           = "."
	defaultAPITimeout     = 15 * time.Second
	defaultPageLimit      = 10
	defaultSocketPath     = "/socket.io/"
	defaultMaxRetries     = 10
	defaultInitialBackoff = time.Second
	defaultMaxBackoff     = 30 * time.Second
	defaultPDFTitle       = "Export"
	defaultMaxRequestBody = "12M"
)

// Session store kinds.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// Request body size limit, e.g. "12M"; multipart uploads count against it
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// API configuration for the platform REST backend
	API *APIConfig `json:"api" yaml:"api"`

	// Socket configuration for the real-time notification connection
	Socket *SocketConfig `json:"socket" yaml:"socket"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Export *ExportConfig `json:"export" yaml:"export"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// PubSub configuration for audit event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines how the console reaches the backend REST API
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Page size requested from list endpoints
	PageLimit int `json:"pageLimit" yaml:"pageLimit"`
}

// SocketConfig defines the notification socket connection
type SocketConfig struct {
	URL  string `json:"url" yaml:"url"`
	Path string `json:"path" yaml:"path"`

	// Reconnection attempts before the client gives up
	MaxRetries     int           `json:"maxRetries" yaml:"maxRetries"`
	InitialBackoff time.Duration `json:"initialBackoff" yaml:"initialBackoff"`
	MaxBackoff     time.Duration `json:"maxBackoff" yaml:"maxBackoff"`
}

// SessionConfig defines where the bearer token is persisted
type SessionConfig struct {
	// Store type: "memory" or "redis"
	Store string `json:"store" yaml:"store"`

	// Token seeds the store at startup when set
	Token    string `json:"token" yaml:"token"`
	RedisURL string `json:"redisUrl" yaml:"redisUrl"`
	Key      string `json:"key" yaml:"key"`
}

// ExportConfig defines export rendering and archiving
type ExportConfig struct {
	// Bucket URL (gocloud.dev/blob), e.g. file:///var/exports or mem://; empty disables archiving
	ArchiveURL string `json:"archiveUrl" yaml:"archiveUrl"`
	PDFTitle   string `json:"pdfTitle" yaml:"pdfTitle"`
}

// PubSubConfig defines where audit events are published
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub; empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: SOCKET_MAXBACKOFF -> socket.maxBackoff
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections and rejects configurations the console cannot run with
func (c *Config) applyDefaults() error {
	if c.HTTP.MaxRequestBodySize == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBody
	}

	if c.API == nil || strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.Timeout <= 0 {
		c.API.Timeout = defaultAPITimeout
	}
	if c.API.PageLimit <= 0 {
		c.API.PageLimit = defaultPageLimit
	}

	if c.Socket != nil {
		if c.Socket.Path == "" {
			c.Socket.Path = defaultSocketPath
		}
		if c.Socket.MaxRetries <= 0 {
			c.Socket.MaxRetries = defaultMaxRetries
		}
		if c.Socket.InitialBackoff <= 0 {
			c.Socket.InitialBackoff = defaultInitialBackoff
		}
		if c.Socket.MaxBackoff <= 0 {
			c.Socket.MaxBackoff = defaultMaxBackoff
		}
	}

	if c.Session == nil {
		c.Session = &SessionConfig{}
	}
	if c.Session.Store == "" {
		c.Session.Store = SessionStoreMemory
	}
	if c.Session.Key == "" {
		c.Session.Key = "rxconsole:session:token"
	}
	switch c.Session.Store {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if c.Session.RedisURL == "" {
			return errors.New("session.redisUrl is required for redis store")
		}
	default:
		return errors.Errorf("unknown session store: %s", c.Session.Store)
	}

	if c.Export == nil {
		c.Export = &ExportConfig{}
	}
	if c.Export.PDFTitle == "" {
		c.Export.PDFTitle = defaultPDFTitle
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}

	return nil
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
