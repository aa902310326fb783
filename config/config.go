package config

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath                   = "."
	defaultMaxRequestBodySize     = "100KB"
	defaultUsernamePendingTimeout = 600 * time.Second
	defaultRedisKeyPrefix         = "uia"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the UIA session store. When nil, sessions live in process memory.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Identity enables bearer-token identification of already registered users.
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	UIA UIAConfig `json:"uia" yaml:"uia"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the connection used by the redis session store
type RedisConfig struct {
	Addr       string        `json:"addr" yaml:"addr"`
	Password   string        `json:"password" yaml:"password"`
	DB         int           `json:"db" yaml:"db"`
	KeyPrefix  string        `json:"keyPrefix" yaml:"keyPrefix"`
	SessionTTL time.Duration `json:"sessionTTL" yaml:"sessionTTL"`
}

// IdentityConfig defines how bearer tokens presented to gated routes are verified
type IdentityConfig struct {
	Secret string `json:"secret" yaml:"secret"`
	Issuer string `json:"issuer" yaml:"issuer"`

	// Admins may mint registration tokens
	Admins []string `json:"admins" yaml:"admins"`
}

// UIAConfig groups the gated routes and the per-stage settings
type UIAConfig struct {
	Routes            []RouteConfig           `json:"routes" yaml:"routes"`
	Terms             TermsConfig             `json:"terms" yaml:"terms"`
	Username          UsernameConfig          `json:"username" yaml:"username"`
	RegistrationToken RegistrationTokenConfig `json:"registrationToken" yaml:"registrationToken"`
}

// RouteConfig is one gated endpoint and the flows that unlock it
type RouteConfig struct {
	Path   string       `json:"path" yaml:"path"`
	Method string       `json:"method" yaml:"method"`
	Flows  []FlowConfig `json:"flows" yaml:"flows"`
}

type FlowConfig struct {
	Stages []string `json:"stages" yaml:"stages"`
}

type TermsConfig struct {
	Policies []PolicyConfig `json:"policies" yaml:"policies"`
}

// PolicyConfig is a versioned legal document the user must accept
type PolicyConfig struct {
	Name    string                 `json:"name" yaml:"name"`
	Version string                 `json:"version" yaml:"version"`
	EN      *LocalizedPolicyConfig `json:"en" yaml:"en"`
}

type LocalizedPolicyConfig struct {
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url" yaml:"url"`
	MarkdownURL string `json:"markdownUrl" yaml:"markdownUrl"`
}

type UsernameConfig struct {
	// PendingTimeout is how long a pending reservation blocks other sessions
	PendingTimeout time.Duration `json:"pendingTimeout" yaml:"pendingTimeout"`

	// Domain is the server name that qualifies user ids (@local:domain)
	Domain string `json:"domain" yaml:"domain"`
}

type RegistrationTokenConfig struct {
	// DefaultSlots is used when a token is minted without an explicit slot count
	DefaultSlots int `json:"defaultSlots" yaml:"defaultSlots"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env overrides: UIA_USERNAME_PENDINGTIMEOUT -> uia.username.pendingTimeout
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
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

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.UIA.Username.PendingTimeout <= 0 {
		c.UIA.Username.PendingTimeout = defaultUsernamePendingTimeout
	}
	if c.UIA.RegistrationToken.DefaultSlots <= 0 {
		c.UIA.RegistrationToken.DefaultSlots = 1
	}
	if c.Redis != nil && c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = defaultRedisKeyPrefix
	}
	for i := range c.UIA.Routes {
		c.UIA.Routes[i].Method = strings.ToUpper(strings.TrimSpace(c.UIA.Routes[i].Method))
	}
}

// Validate rejects route tables the gate cannot serve.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.UIA.Routes))
	for i, route := range c.UIA.Routes {
		if !strings.HasPrefix(route.Path, "/") {
			return errors.Errorf("uia.routes[%d]: path %q must start with /", i, route.Path)
		}
		if !isHTTPMethod(route.Method) {
			return errors.Errorf("uia.routes[%d]: unsupported method %q", i, route.Method)
		}
		key := route.Method + " " + route.Path
		if _, dup := seen[key]; dup {
			return errors.Errorf("uia.routes[%d]: duplicate route %s", i, key)
		}
		seen[key] = struct{}{}

		if len(route.Flows) == 0 {
			return errors.Errorf("uia.routes[%d]: %s has no flows", i, key)
		}
		for j, flow := range route.Flows {
			if len(flow.Stages) == 0 {
				return errors.Errorf("uia.routes[%d].flows[%d]: flow has no stages", i, j)
			}
		}
	}

	for i, policy := range c.UIA.Terms.Policies {
		if policy.Name == "" || policy.Version == "" {
			return errors.Errorf("uia.terms.policies[%d]: name and version are required", i)
		}
	}

	return nil
}

func isHTTPMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index with no host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
