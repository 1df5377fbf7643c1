package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"CARTRADE_APP_NAME":                     os.Getenv("CARTRADE_APP_NAME"),
		"CARTRADE_APP_ENV":                      os.Getenv("CARTRADE_APP_ENV"),
		"CARTRADE_APP_PORT":                     os.Getenv("CARTRADE_APP_PORT"),
		"CARTRADE_DATABASE_HOST":                os.Getenv("CARTRADE_DATABASE_HOST"),
		"CARTRADE_DATABASE_PORT":                os.Getenv("CARTRADE_DATABASE_PORT"),
		"CARTRADE_DATABASE_USER":                os.Getenv("CARTRADE_DATABASE_USER"),
		"CARTRADE_DATABASE_PASSWORD":            os.Getenv("CARTRADE_DATABASE_PASSWORD"),
		"CARTRADE_DATABASE_DBNAME":              os.Getenv("CARTRADE_DATABASE_DBNAME"),
		"CARTRADE_DATABASE_SSLMODE":             os.Getenv("CARTRADE_DATABASE_SSLMODE"),
		"CARTRADE_DATABASE_MAX_OPEN_CONNS":      os.Getenv("CARTRADE_DATABASE_MAX_OPEN_CONNS"),
		"CARTRADE_DATABASE_MAX_IDLE_CONNS":      os.Getenv("CARTRADE_DATABASE_MAX_IDLE_CONNS"),
		"CARTRADE_JWT_SECRET":                   os.Getenv("CARTRADE_JWT_SECRET"),
		"CARTRADE_FINANCE_VAT_RATE":             os.Getenv("CARTRADE_FINANCE_VAT_RATE"),
		"CARTRADE_FINANCE_BASE_COMMISSION_RATE": os.Getenv("CARTRADE_FINANCE_BASE_COMMISSION_RATE"),
		"CARTRADE_FINANCE_RESERVATION_DAYS":     os.Getenv("CARTRADE_FINANCE_RESERVATION_DAYS"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "cartrade-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "cartrade", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "19", cfg.Finance.VATRate)
		assert.Equal(t, "10", cfg.Finance.BaseCommissionRate)
		assert.Equal(t, 7, cfg.Finance.ReservationDays)
	})

	t.Run("loads values from environment variables with CARTRADE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_APP_NAME", "test-app")
		os.Setenv("CARTRADE_APP_ENV", "testing")
		os.Setenv("CARTRADE_APP_PORT", "9000")
		os.Setenv("CARTRADE_DATABASE_HOST", "testdb.local")
		os.Setenv("CARTRADE_DATABASE_PORT", "5433")
		os.Setenv("CARTRADE_DATABASE_USER", "testuser")
		os.Setenv("CARTRADE_DATABASE_PASSWORD", "testpass")
		os.Setenv("CARTRADE_DATABASE_DBNAME", "testdb")
		os.Setenv("CARTRADE_DATABASE_SSLMODE", "require")
		os.Setenv("CARTRADE_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("CARTRADE_DATABASE_MAX_IDLE_CONNS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("CARTRADE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("rejects non-decimal vat rate", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_FINANCE_VAT_RATE", "nineteen")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "finance.vat_rate")
	})

	t.Run("parses finance params into decimals", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_FINANCE_VAT_RATE", "9")
		os.Setenv("CARTRADE_FINANCE_BASE_COMMISSION_RATE", "12.5")
		os.Setenv("CARTRADE_FINANCE_RESERVATION_DAYS", "14")

		cfg, err := Load()
		require.NoError(t, err)

		params, err := cfg.FinanceParams()
		require.NoError(t, err)
		assert.True(t, params.VATRate.Equal(decimal.NewFromInt(9)))
		assert.True(t, params.BaseCommissionRate.Equal(decimal.RequireFromString("12.5")))
		assert.Equal(t, 14, params.ReservationDays)
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"CARTRADE_APP_ENV":           os.Getenv("CARTRADE_APP_ENV"),
		"CARTRADE_JWT_SECRET":        os.Getenv("CARTRADE_JWT_SECRET"),
		"CARTRADE_DATABASE_PASSWORD": os.Getenv("CARTRADE_DATABASE_PASSWORD"),
		"CARTRADE_DATABASE_SSLMODE":  os.Getenv("CARTRADE_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("requires jwt.secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_APP_ENV", "production")
		os.Setenv("CARTRADE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("CARTRADE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required in production")
	})

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_APP_ENV", "production")
		os.Setenv("CARTRADE_JWT_SECRET", "short-secret")
		os.Setenv("CARTRADE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("CARTRADE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_APP_ENV", "production")
		os.Setenv("CARTRADE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("CARTRADE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_APP_ENV", "production")
		os.Setenv("CARTRADE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("CARTRADE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("CARTRADE_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		os.Setenv("CARTRADE_APP_ENV", "production")
		os.Setenv("CARTRADE_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("CARTRADE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("CARTRADE_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		// URL-encoded password should be in the DSN
		assert.Contains(t, dsn, "pass%40word%23123")
	})

	t.Run("handles empty password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.NotEmpty(t, dsn)
	})
}
