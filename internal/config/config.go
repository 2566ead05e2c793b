package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string   `yaml:"httpAddr"`
	Database Database `yaml:"database"`
	Events   Events   `yaml:"events"`
	CORS     CORS     `yaml:"cors"`
}

type Database struct {
	Driver         string `yaml:"driver"`
	URL            string `yaml:"url"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	Name           string `yaml:"name"`
	SSLMode        string `yaml:"sslMode"`
	ConnectTimeout int    `yaml:"connectTimeout"`
	SQLitePath     string `yaml:"sqlitePath"`
}

type Events struct {
	AMQPURL string `yaml:"amqpUrl"`
	Queue   string `yaml:"queue"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		HTTPAddr: ":8080",
		Database: Database{
			Driver:     "postgres",
			Port:       "5432",
			SSLMode:    "disable",
			SQLitePath: "customers.db",
		},
		Events: Events{Queue: "entity_changes"},
		CORS:   CORS{AllowedOrigins: []string{"*"}},
	}
}

// Load reads .env (if any), the YAML file named by CONFIG_FILE (if set),
// then applies environment overrides.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(`failed to read config file "%s": %w`, path, err)
	}
	if err := yaml.Unmarshal(fileData, c); err != nil {
		return fmt.Errorf(`failed to unmarshal config file "%s": %w`, path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("HTTP_ADDR", &c.HTTPAddr)
	str("DB_DRIVER", &c.Database.Driver)
	str("DATABASE_URL", &c.Database.URL)
	str("DB_USER", &c.Database.User)
	str("DB_PASSWORD", &c.Database.Password)
	str("DB_HOST", &c.Database.Host)
	str("DB_PORT", &c.Database.Port)
	str("DB_NAME", &c.Database.Name)
	str("DB_SSLMODE", &c.Database.SSLMode)
	str("SQLITE_PATH", &c.Database.SQLitePath)
	str("AMQP_URL", &c.Events.AMQPURL)
	str("EVENTS_QUEUE", &c.Events.Queue)

	if v, ok := lookup("DB_CONNECT_TIMEOUT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_CONNECT_TIMEOUT %q: %w", v, err)
		}
		c.Database.ConnectTimeout = n
	}
	if v, ok := lookup("CORS_ALLOWED_ORIGINS"); ok && v != "" {
		c.CORS.AllowedOrigins = splitList(v)
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL assembled
// from the individual connection settings.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", d.SSLMode)
	if d.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(d.ConnectTimeout))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
