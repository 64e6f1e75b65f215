// Package config загружает конфигурацию сервиса из переменных окружения.
// Используется envconfig для маппинга переменных окружения на поля структуры.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Config содержит ВСЕ настройки приложения.
type Config struct {
	// --- HTTP ---
	HTTPPort string `envconfig:"HTTP_PORT" default:"3006"`

	// --- Database ---
	// В Docker внутри контейнера "localhost" почти всегда неправильно.
	// Дефолт ставим "postgres" (имя сервиса в docker-compose), а для локалки переопределяй DB_HOST=localhost.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"jackpothub"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"jackpothub"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`
	// Жизненный цикл соединений пула
	DBMaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	DBMaxConnIdleTime   time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
	DBHealthCheckPeriod time.Duration `envconfig:"DB_HEALTHCHECK_PERIOD" default:"1m"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`

	// --- Lottery ---
	// Цена билета по умолчанию, если newLotto вызван без price
	LottoDefaultPriceRaw string          `envconfig:"LOTTO_DEFAULT_PRICE" default:"80"`
	LottoDefaultPrice    decimal.Decimal `envconfig:"-"`
	// Максимум билетов за одну генерацию — защита от тяжёлых запросов
	LottoMaxGenerate int `envconfig:"LOTTO_MAX_GENERATE" default:"10000"`

	// --- Draw schedule ---
	// Cron-выражение автоматического розыгрыша (пустое = выключено).
	// Например "0 20 * * 0" — каждое воскресенье в 20:00.
	DrawCronSpec string `envconfig:"DRAW_CRON_SPEC" default:""`

	// --- Auth ---
	BcryptCost int `envconfig:"BCRYPT_COST" default:"10"`
}

// Load читает конфигурацию из окружения и валидирует её.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения окружения: %w", err)
	}

	price, err := decimal.NewFromString(cfg.LottoDefaultPriceRaw)
	if err != nil {
		return nil, fmt.Errorf("LOTTO_DEFAULT_PRICE должен быть числом: %w", err)
	}
	cfg.LottoDefaultPrice = price

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек.
func (c *Config) Validate() error {
	if c.LottoDefaultPrice.IsNegative() {
		return fmt.Errorf("LOTTO_DEFAULT_PRICE не может быть отрицательной")
	}
	if c.LottoMaxGenerate <= 0 {
		return fmt.Errorf("LOTTO_MAX_GENERATE должен быть положительным")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST должен быть в диапазоне 4..31")
	}
	return nil
}

// DatabaseDSN собирает строку подключения к PostgreSQL.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
