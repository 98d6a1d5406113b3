package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Build-time settings. Override with:
//
//	go build -ldflags "-X eld-trip-planner/internal/config.buildMode=production"
var (
	buildMode       = "development"
	deployedAPIBase = "https://eld-planner-app-backend-anvfbheco-felixs-projects-4b67393f.vercel.app"
)

type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

type SessionConfig struct {
	Store      string
	RedisAddr  string
	BadgerPath string
	TTL        time.Duration
}

type HistoryConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type RateLimitConfig struct {
	PerMinute int `yaml:"per_minute"`
	Burst     int `yaml:"burst"`
}

// Config is resolved once at process start and passed to whatever issues
// outbound requests. Mode and APIBase come from the build, everything else
// from an optional YAML file and the environment.
type Config struct {
	Mode    Mode
	APIBase string

	Port           string
	DevProxyTarget string
	Sessions       SessionConfig
	History        HistoryConfig
	RateLimit      RateLimitConfig
}

// New returns a Config for the given mode with default server settings.
// The API base is empty in development (requests go through the local
// forwarding layer) and the deployed base address otherwise.
func New(mode Mode, base string) *Config {
	cfg := &Config{
		Mode:           mode,
		Port:           "8080",
		DevProxyTarget: "http://localhost:8000",
		Sessions: SessionConfig{
			Store:      "memory",
			RedisAddr:  "localhost:6379",
			BadgerPath: "data/sessions",
			TTL:        24 * time.Hour,
		},
		RateLimit: RateLimitConfig{PerMinute: 30, Burst: 10},
	}
	if mode == ModeProduction {
		cfg.APIBase = strings.TrimRight(base, "/")
	}
	return cfg
}

// Load builds the process configuration from the build-time mode, an
// optional .env file, an optional YAML file (CONFIG_FILE) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	mode, err := ParseMode(buildMode)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := New(mode, deployedAPIBase)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeDevelopment, "dev", "":
		return ModeDevelopment, nil
	case ModeProduction, "prod":
		return ModeProduction, nil
	}
	return "", fmt.Errorf("unknown build mode %q", s)
}

// loadFile overlays server settings from a YAML file. Mode and API base are
// never read from the file.
func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", path, err)
	}

	var file struct {
		Port           string `yaml:"port"`
		DevProxyTarget string `yaml:"dev_proxy_target"`
		Sessions       struct {
			Store      string `yaml:"store"`
			RedisAddr  string `yaml:"redis_addr"`
			BadgerPath string `yaml:"badger_path"`
			TTL        string `yaml:"ttl"`
		} `yaml:"sessions"`
		History   HistoryConfig   `yaml:"history"`
		RateLimit RateLimitConfig `yaml:"rate_limit"`
	}
	if err := yaml.Unmarshal(b, &file); err != nil {
		return fmt.Errorf("parse config file %q: %w", path, err)
	}

	setIf(&c.Port, file.Port)
	setIf(&c.DevProxyTarget, file.DevProxyTarget)
	setIf(&c.Sessions.Store, file.Sessions.Store)
	setIf(&c.Sessions.RedisAddr, file.Sessions.RedisAddr)
	setIf(&c.Sessions.BadgerPath, file.Sessions.BadgerPath)
	if file.Sessions.TTL != "" {
		ttl, err := time.ParseDuration(file.Sessions.TTL)
		if err != nil {
			return fmt.Errorf("parse sessions.ttl: %w", err)
		}
		c.Sessions.TTL = ttl
	}
	setIf(&c.History.Driver, file.History.Driver)
	setIf(&c.History.DSN, file.History.DSN)
	if file.RateLimit.PerMinute > 0 {
		c.RateLimit.PerMinute = file.RateLimit.PerMinute
	}
	if file.RateLimit.Burst > 0 {
		c.RateLimit.Burst = file.RateLimit.Burst
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.Port = Get("PORT", c.Port)
	c.DevProxyTarget = Get("DEV_PROXY_TARGET", c.DevProxyTarget)
	c.Sessions.Store = Get("SESSION_STORE", c.Sessions.Store)
	c.Sessions.RedisAddr = Get("REDIS_ADDR", c.Sessions.RedisAddr)
	c.Sessions.BadgerPath = Get("BADGER_PATH", c.Sessions.BadgerPath)
	c.History.Driver = Get("HISTORY_DRIVER", c.History.Driver)
	c.History.DSN = Get("HISTORY_DSN", c.History.DSN)

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse SESSION_TTL: %w", err)
		}
		c.Sessions.TTL = ttl
	}

	for key, dst := range map[string]*int{
		"RATE_LIMIT_PER_MINUTE": &c.RateLimit.PerMinute,
		"RATE_LIMIT_BURST":      &c.RateLimit.Burst,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("parse %s: must be a positive integer, got %q", key, v)
		}
		*dst = n
	}

	if c.Mode == ModeProduction && c.APIBase == "" {
		return errors.New("production build has no deployed API base")
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// DocumentURL resolves a document locator returned by the backend into the
// address opened in the browser. Development uses it as-is; production
// prefixes the deployed base.
func (c *Config) DocumentURL(locator string) string {
	if c.Mode == ModeDevelopment {
		return locator
	}
	return c.APIBase + locator
}

// BackendBase is where this server actually sends outbound requests. In
// development the API base is empty, so the forwarding target is used.
func (c *Config) BackendBase() string {
	if c.Mode == ModeDevelopment {
		return strings.TrimRight(c.DevProxyTarget, "/")
	}
	return c.APIBase
}

func (c *Config) IsDevelopment() bool { return c.Mode == ModeDevelopment }
