package internal

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	cfg := HTTPConfig{Port: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("port 0 should fail")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("port 70000 should fail")
	}
	cfg.Port = 8080
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
	if got := cfg.Address(); got != ":8080" {
		t.Errorf("address = %q", got)
	}
}

func TestStoreConfig_PathRequired(t *testing.T) {
	cfg := StoreConfig{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty store path should fail")
	}
}

func TestStreamConfig_DelayBounds(t *testing.T) {
	cfg := StreamConfig{BlockDelayMS: -1}
	if err := cfg.Validate(); err == nil {
		t.Error("negative delay should fail")
	}
	cfg.BlockDelayMS = 10001
	if err := cfg.Validate(); err == nil {
		t.Error("delay above 10s should fail")
	}
	cfg.BlockDelayMS = 400
	if err := cfg.Validate(); err != nil {
		t.Errorf("400ms delay should pass: %v", err)
	}
	if got := cfg.BlockDelay(); got != 400*time.Millisecond {
		t.Errorf("BlockDelay = %v", got)
	}
}

func TestStreamConfig_ZeroDelayAllowed(t *testing.T) {
	cfg := StreamConfig{BlockDelayMS: 0}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero delay should pass: %v", err)
	}
}

func TestAuthConfig_DisabledMode(t *testing.T) {
	cfg := AuthConfig{Mode: "disabled", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled mode should pass: %v", err)
	}
	if cfg.AuthEnabled() {
		t.Error("disabled mode should not be enabled")
	}
}

func TestAuthConfig_EmptyModeDefaultsDisabled(t *testing.T) {
	cfg := AuthConfig{Mode: "", Token: ""}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty mode should default to disabled: %v", err)
	}
	if cfg.Mode != AuthModeDisabled {
		t.Errorf("mode = %q, want %q", cfg.Mode, AuthModeDisabled)
	}
}

func TestAuthConfig_TokenModeValid(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: "mysecret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("token mode with token should pass: %v", err)
	}
	if !cfg.AuthEnabled() {
		t.Error("token mode should be enabled")
	}
}

func TestAuthConfig_TokenModeEmptyToken(t *testing.T) {
	cfg := AuthConfig{Mode: "token", Token: ""}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("token mode with empty token should fail")
	}
	if !strings.Contains(err.Error(), "token is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthConfig_InvalidMode(t *testing.T) {
	cfg := AuthConfig{Mode: "magic", Token: "x"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid mode should fail validation")
	}
}

func TestFullConfig_AuthValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Auth.Mode = "token"
	cfg.Auth.Token = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch auth error")
	}
}
