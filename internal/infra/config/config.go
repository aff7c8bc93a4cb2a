package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig описывает конфигурацию бота.
type AppConfig struct {
	AppEnv  string `envconfig:"APP_ENV" default:"dev"`
	LogFile string `envconfig:"LOG_FILE" default:"log.txt"`
	OpsAddr string `envconfig:"OPS_ADDR" default:":9090"`

	Practicum struct {
		Token    string        `envconfig:"PRACTICUM_TOKEN"`
		Endpoint string        `envconfig:"PRACTICUM_ENDPOINT" default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
		Timeout  time.Duration `envconfig:"PRACTICUM_TIMEOUT" default:"30s"`
	} `envconfig:""`

	Telegram struct {
		Token  string `envconfig:"TELEGRAM_TOKEN"`
		ChatID int64  `envconfig:"TELEGRAM_CHAT_ID"`
	} `envconfig:""`

	Poll struct {
		Interval time.Duration `envconfig:"POLL_INTERVAL" default:"600s"`
		Lookback time.Duration `envconfig:"POLL_LOOKBACK" default:"100000s"`
	} `envconfig:""`
}

// Load загружает конфиг из окружения.
func Load() AppConfig {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("не удалось загрузить конфиг: %v", err)
	}
	return cfg
}

// Missing возвращает имена обязательных переменных окружения, которые не заданы.
// Без любой из них бот не запускается.
func (c AppConfig) Missing() []string {
	var missing []string
	if c.Practicum.Token == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.Telegram.Token == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.Telegram.ChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	return missing
}
