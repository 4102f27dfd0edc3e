package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.JWTTTL != 6*time.Hour {
		t.Errorf("JWTTTL = %v, want 6h", cfg.JWTTTL)
	}
	if cfg.DemoEmail != "johndoe.test@example.com" {
		t.Errorf("DemoEmail = %q", cfg.DemoEmail)
	}
	if cfg.DBMaxConns != 10 {
		t.Errorf("DBMaxConns = %d, want 10", cfg.DBMaxConns)
	}
	if cfg.DBPingTimeout != 5*time.Second {
		t.Errorf("DBPingTimeout = %v, want 5s", cfg.DBPingTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %q, want 9090", cfg.HTTPPort)
	}
	if cfg.JWTTTL != 30*time.Minute {
		t.Errorf("JWTTTL = %v, want 30m", cfg.JWTTTL)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if cfg.DBMaxConns != 25 {
		t.Errorf("DBMaxConns = %d, want 25", cfg.DBMaxConns)
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "six hours")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unparseable JWT_TTL")
	}
}

func TestLoadRejectsBadMaxConns(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a non-positive DB_MAX_CONNS")
	}
}
