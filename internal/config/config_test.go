package config

import (
	"os"
	"testing"
)

func TestConfigLoad_ProviderDefaults(t *testing.T) {
	// clear env vars
	_ = os.Unsetenv("HEALTH_GATEWAY_PROVIDER_BASE_URL")
	_ = os.Unsetenv("HEALTH_GATEWAY_PROVIDER_TIMEOUT_SECONDS")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.ProviderBaseURL != "https://api.healthprovider.example" || cfg.ProviderTimeoutSeconds != 15 {
		t.Fatalf("unexpected default provider config: %+v", cfg)
	}
}

func TestConfigLoad_ProviderEnvOverride(t *testing.T) {
	_ = os.Setenv("HEALTH_GATEWAY_PROVIDER_BASE_URL", "http://localhost:9000")
	defer func() { _ = os.Unsetenv("HEALTH_GATEWAY_PROVIDER_BASE_URL") }()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.ProviderBaseURL != "http://localhost:9000" {
		t.Fatalf("provider base url env override failed, got %s", cfg.ProviderBaseURL)
	}
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	if cfg.DBDriver != "sqlite" || cfg.BuildTarget != "local" {
		t.Fatalf("testing config must use the local sqlite target: %+v", cfg)
	}
	if !cfg.IsTesting() {
		t.Fatal("IsTesting should report true for the testing config")
	}
	if cfg.IsProduction() {
		t.Fatal("IsProduction should report false for the testing config")
	}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("testing config should resolve cleanly: %v", err)
	}
}

func TestConfigLoad_HTTPPortDefault(t *testing.T) {
	_ = os.Unsetenv("HEALTH_GATEWAY_HTTP_PORT")

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default http port: %d", cfg.HTTPPort)
	}
	if cfg.GetHTTPAddr() != ":8080" {
		t.Fatalf("unexpected http addr: %s", cfg.GetHTTPAddr())
	}
}
