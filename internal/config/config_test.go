package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const validConfig = `
server:
  host: "localhost"
  port: 8080
database:
  host: "localhost"
  port: 5432
  user: "test"
  password: "test"
  database: "groupfund_test"
jwt:
  secret: "test-secret"
log:
  level: "debug"
  format: "text"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	assert.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.GetServerAddress())
	assert.Contains(t, cfg.GetDatabaseConnectionString(), "dbname=groupfund_test")
	assert.Contains(t, cfg.GetDatabaseConnectionString(), "sslmode=disable")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	assert.NoError(t, err)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.OverdueLoanReminders)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(writeConfig(t, validConfig))
	assert.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoad_MissingSecret(t *testing.T) {
	content := `
server:
  port: 8080
database:
  host: "localhost"
  database: "groupfund_test"
`
	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
