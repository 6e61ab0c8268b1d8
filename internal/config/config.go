package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMySQL  = "mysql"
)

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Server     ServerConfig     `mapstructure:"server"`
}

type DictionaryConfig struct {
	Endpoint       string `mapstructure:"endpoint" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
	MaxRetries     int    `mapstructure:"max_retries" validate:"gte=0"`
}

func (c DictionaryConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type CatalogConfig struct {
	// Optional. The embedded word list is used when empty.
	WordsFile string `mapstructure:"words_file" validate:"omitempty,file"`
}

type StorageConfig struct {
	Backend           string `mapstructure:"backend" validate:"oneof=memory file sqlite mysql"`
	Directory         string `mapstructure:"directory" validate:"required_if=Backend file"`
	SQLitePath        string `mapstructure:"sqlite_path" validate:"required_if=Backend sqlite"`
	CacheMaxEntries   int    `mapstructure:"cache_max_entries" validate:"gte=1"`
	HistoryMaxEntries int    `mapstructure:"history_max_entries" validate:"gte=1"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	ConnectAttempts uint              `mapstructure:"connect_attempts"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gte=1,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wotd")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.endpoint", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("dictionary.timeout_seconds", 10)
	v.SetDefault("dictionary.max_retries", 3)
	v.SetDefault("catalog.words_file", "")
	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.directory", "data")
	v.SetDefault("storage.sqlite_path", filepath.Join("data", "wotd.db"))
	v.SetDefault("storage.cache_max_entries", 50)
	v.SetDefault("storage.history_max_entries", 100)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wotd")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.connect_attempts", 5)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})

	if err := v.BindEnv("dictionary.endpoint", "WOTD_DICTIONARY_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind WOTD_DICTIONARY_ENDPOINT environment variable: %w", err)
	}
	if err := v.BindEnv("storage.backend", "WOTD_STORAGE_BACKEND"); err != nil {
		return nil, fmt.Errorf("failed to bind WOTD_STORAGE_BACKEND environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (loader *ConfigLoader) validate(cfg any) error {
	err := loader.validator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	var errorMsgs []string
	for _, e := range validationErrors {
		errorMsgs = append(errorMsgs, e.Translate(loader.translator))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
}
