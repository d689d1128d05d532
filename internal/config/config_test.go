package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "hostel" {
		t.Errorf("default dbname = %q, want hostel", cfg.Database.DBName)
	}
	if cfg.JWT.TokenExpiration != "24h" {
		t.Errorf("default token expiration = %q, want 24h", cfg.JWT.TokenExpiration)
	}
	if cfg.JWT.Issuer != "pcte-hostel" {
		t.Errorf("default issuer = %q, want pcte-hostel", cfg.JWT.Issuer)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: \"9090\"\n  mode: production\ndatabase:\n  dbname: hostel_test\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Mode != "production" {
		t.Errorf("mode = %q, want production", cfg.Server.Mode)
	}
	if cfg.Database.DBName != "hostel_test" {
		t.Errorf("dbname = %q, want hostel_test", cfg.Database.DBName)
	}
	// Values absent from the file keep their defaults
	if cfg.Database.Host != "localhost" {
		t.Errorf("host = %q, want localhost", cfg.Database.Host)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("port = %q, want 7070 from env", cfg.Server.Port)
	}
	if cfg.Database.Password != "hunter2" {
		t.Errorf("password = %q, want env override", cfg.Database.Password)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("secret = %q, want env-secret", cfg.JWT.Secret)
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig accepted an empty JWT secret")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.example.com"
	cfg.Database.Port = "5433"
	cfg.Database.User = "hostel"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "hosteldb"
	cfg.Database.SSLMode = "require"

	want := "postgres://hostel:pw@db.example.com:5433/hosteldb?sslmode=require"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
