// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	BcryptCost              int    `yaml:"bcrypt_cost" env-default:"12"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":3000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey  string        `yaml:"jwt_secret_key"`
	TokenTTL      time.Duration `yaml:"token_ttl" env-default:"2160h"`
	CookieTTLDays int           `yaml:"cookie_ttl_days" env-default:"90"`
}

// IsDev сообщает, работает ли приложение в окружении разработки.
// В dev-окружении тело ошибки дополняется полной цепочкой ошибок.
func (c *Config) IsDev() bool {
	return c.Env == "local" || c.Env == "dev"
}

// MustLoad функция для загрузки конфига, путь берется из CONFIG_PATH.
// При любой проблеме с конфигом процесс завершается (fail-fast).
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if cfg.JWTSecretKey == "" {
		log.Fatal("jwt_secret_key is not set")
	}
	return &cfg
}
