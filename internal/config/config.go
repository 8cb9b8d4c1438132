package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Owner   OwnerConfig   `yaml:"owner"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects where the portfolio and session flag live
type StorageConfig struct {
	Backend      string        `yaml:"backend"`
	Path         string        `yaml:"path"`
	DocumentKey  string        `yaml:"document_key"`
	SessionKey   string        `yaml:"session_key"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	Redis        RedisConfig   `yaml:"redis"`
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// ServerConfig holds the HTTP listen address
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// OwnerConfig is the single login that unlocks edit mode
type OwnerConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Dir returns the per-user directory holding config and data
func Dir() (dir string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return dir, err
	}
	dir = filepath.Join(homeDir, ".portfolio")
	return dir, err
}

// Defaults returns the configuration used when nothing is set
func Defaults() (cfg Config) {
	dir, err := Dir()
	if err != nil {
		dir = ".portfolio"
	}

	cfg = Config{
		Storage: StorageConfig{
			Backend:      "sqlite",
			Path:         filepath.Join(dir, "portfolio.db"),
			DocumentKey:  "portfolioData",
			SessionKey:   "portfolioAuth",
			WriteTimeout: 5 * time.Second,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "portfolio:",
			},
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
	return cfg
}

// Load reads configuration from file with .env and environment overrides.
// An empty path means $HOME/.portfolio/config.yaml, which may be absent.
func Load(configPath string) (cfg Config, err error) {
	cfg = Defaults()

	// .env is optional
	err = godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		err = errors.Wrap(err, "failed to load .env")
		return cfg, err
	}
	err = nil

	path := configPath
	if path == "" {
		var dir string
		dir, err = Dir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'portfolio config init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	cfg.applyEnvOverrides()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORTFOLIO_STORAGE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("PORTFOLIO_DB"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("PORTFOLIO_REDIS_ADDR"); v != "" {
		c.Storage.Redis.Addr = v
	}
	if v := os.Getenv("PORTFOLIO_REDIS_PASSWORD"); v != "" {
		c.Storage.Redis.Password = v
	}
	if v := os.Getenv("PORTFOLIO_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Storage.Redis.DB = n
		}
	}
	if v := os.Getenv("PORTFOLIO_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("PORTFOLIO_OWNER_EMAIL"); v != "" {
		c.Owner.Email = v
	}
	if v := os.Getenv("PORTFOLIO_OWNER_PASSWORD"); v != "" {
		c.Owner.Password = v
	}
	if v := os.Getenv("PORTFOLIO_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() (err error) {
	switch c.Storage.Backend {
	case "sqlite":
		if c.Storage.Path == "" {
			err = errors.New("storage.path is required for the sqlite backend")
			return err
		}
	case "redis":
		if c.Storage.Redis.Addr == "" {
			err = errors.New("storage.redis.addr is required for the redis backend")
			return err
		}
	case "memory":
	default:
		err = errors.Errorf("unknown storage backend %q: must be sqlite, redis, or memory", c.Storage.Backend)
		return err
	}

	if c.Storage.DocumentKey == "" || c.Storage.SessionKey == "" {
		err = errors.New("storage.document_key and storage.session_key are required")
		return err
	}

	if c.Storage.DocumentKey == c.Storage.SessionKey {
		err = errors.New("storage.document_key and storage.session_key must differ")
		return err
	}

	if c.Storage.WriteTimeout <= 0 {
		err = errors.New("storage.write_timeout must be positive")
		return err
	}

	if c.Owner.Password != "" && c.Owner.Email == "" {
		err = errors.New("owner.email is required when owner.password is set")
		return err
	}

	return err
}

// Init writes a default configuration file
func Init(configPath string) (err error) {
	path := configPath
	if path == "" {
		var dir string
		dir, err = Dir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	cfg := Defaults()
	cfg.Owner = OwnerConfig{Email: "you@example.com", Password: "change-me"}

	var data []byte
	data, err = yaml.Marshal(cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
