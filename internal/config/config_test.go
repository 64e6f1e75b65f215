package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("дефолты при минимальном окружении", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "3006", cfg.HTTPPort)
		assert.Equal(t, "postgres", cfg.DBHost)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Minute, cfg.DBHealthCheckPeriod)
		assert.True(t, cfg.LottoDefaultPrice.Equal(decimal.NewFromInt(80)))
		assert.Equal(t, 10000, cfg.LottoMaxGenerate)
		assert.Empty(t, cfg.DrawCronSpec)
	})

	t.Run("без пароля БД не стартуем", func(t *testing.T) {
		// t.Setenv регистрирует восстановление прежнего значения,
		// после него переменную можно безопасно снять совсем
		t.Setenv("DB_PASSWORD", "x")
		os.Unsetenv("DB_PASSWORD")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("нечисловая цена билета", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("LOTTO_DEFAULT_PRICE", "cheap")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LottoDefaultPrice: decimal.NewFromInt(80),
			LottoMaxGenerate:  1000,
			BcryptCost:        10,
		}
	}

	t.Run("корректный конфиг", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("отрицательная цена", func(t *testing.T) {
		cfg := valid()
		cfg.LottoDefaultPrice = decimal.NewFromInt(-1)
		assert.Error(t, cfg.Validate())
	})

	t.Run("нулевой лимит генерации", func(t *testing.T) {
		cfg := valid()
		cfg.LottoMaxGenerate = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bcrypt cost вне диапазона", func(t *testing.T) {
		cfg := valid()
		cfg.BcryptCost = 99
		assert.Error(t, cfg.Validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     5432,
		DBUser:     "jackpothub",
		DBPassword: "secret",
		DBName:     "jackpothub",
		DBSSLMode:  "disable",
	}
	assert.Equal(t,
		"postgres://jackpothub:secret@db:5432/jackpothub?sslmode=disable",
		cfg.DatabaseDSN())
}
