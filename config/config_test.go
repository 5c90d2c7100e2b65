package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "logia_db", cfg.Postgres.DBName)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "admin", cfg.Auth.AdminUsername)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUTH_TOKEN_TTL", "2h")
	t.Setenv("POSTGRES_DB_NAME", "other_db")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "other_db", cfg.Postgres.DBName)
}

func TestLoadDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_JWT_SECRET=from-dotenv-file-secret\nAUTH_ADMIN_NAME=Secretario\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("AUTH_JWT_SECRET")
		_ = os.Unsetenv("AUTH_ADMIN_NAME")
	})

	cfg, err := load(path)
	require.NoError(t, err)
	require.Equal(t, "from-dotenv-file-secret", cfg.Auth.JWTSecret)
	require.Equal(t, "Secretario", cfg.Auth.AdminName)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "short")

	_, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: 8080},
		Postgres: PostgresConfig{Host: "localhost", User: "u", Password: "p", DBName: "d"},
		Auth:     AuthConfig{JWTSecret: "0123456789abcdef", TokenTTL: time.Hour, BcryptCost: 10},
	}
	require.NoError(t, valid.Validate())

	noPort := valid
	noPort.Server.Port = 0
	require.Error(t, noPort.Validate())

	noHost := valid
	noHost.Postgres.Host = ""
	require.Error(t, noHost.Validate())

	badCost := valid
	badCost.Auth.BcryptCost = 1
	require.Error(t, badCost.Validate())
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "logia", SSLMode: "disable"}
	require.Equal(t, "host=db port=5432 user=u password=p dbname=logia sslmode=disable", p.DSN())
}
