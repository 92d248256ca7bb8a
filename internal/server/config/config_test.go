// Package config defines the server configuration structure.
package config

import (
	"os"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Check server defaults
	if cfg.Server.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.Server.HTTP.Addr, DefaultHTTPAddr)
	}
	if cfg.Server.HTTP.RateLimit != 0 {
		t.Error("rate limiting should be disabled by default")
	}
	if cfg.Server.HTTP.RateBurst != DefaultRateBurst {
		t.Errorf("RateBurst = %d, want %d", cfg.Server.HTTP.RateBurst, DefaultRateBurst)
	}

	// Check storage defaults
	if cfg.Storage.DataDir != DefaultDataDir {
		t.Errorf("DataDir = %q, want %q", cfg.Storage.DataDir, DefaultDataDir)
	}
	if cfg.Storage.GCInterval != DefaultGCInterval {
		t.Errorf("GCInterval = %v, want %v", cfg.Storage.GCInterval, DefaultGCInterval)
	}
	if cfg.Storage.GCThreshold != DefaultGCThreshold {
		t.Errorf("GCThreshold = %v, want %v", cfg.Storage.GCThreshold, DefaultGCThreshold)
	}

	// Check eval defaults
	if cfg.Eval.CacheSize != DefaultCacheSize {
		t.Errorf("CacheSize = %d, want %d", cfg.Eval.CacheSize, DefaultCacheSize)
	}
	if cfg.Eval.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", cfg.Eval.Workers, DefaultWorkers)
	}
	if cfg.Eval.Epsilon != 0 {
		t.Error("Epsilon should default to zero (built-in value)")
	}

	// Check log defaults
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}
}

func TestVerify_ValidConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Storage.DataDir = dir

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestVerify_EmptyHTTPAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.HTTP.Addr = ""
	cfg.Storage.DataDir = t.TempDir()

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for empty http addr")
	}
}

func TestVerify_TLSPairing(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Server.HTTP.TLSCertFile = "/path/to/cert.pem"

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for cert without key")
	}
}

func TestVerify_TLSMissingFiles(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Server.HTTP.TLSCertFile = "/nonexistent/cert.pem"
	cfg.Server.HTTP.TLSKeyFile = "/nonexistent/key.pem"

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for missing TLS files")
	}
}

func TestVerify_EmptyDataDir(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = ""

	if err := Verify(cfg); err == nil {
		t.Error("Expected error for empty data_dir")
	}
}

func TestVerify_InMemorySkipsDataDir(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = ""
	cfg.Storage.InMemory = true

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestVerify_CreateDataDir(t *testing.T) {
	dir := t.TempDir()
	newDir := dir + "/subdir/data"

	cfg := Default()
	cfg.Storage.DataDir = newDir

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify failed: %v", err)
	}

	// Check directory was created
	if _, err := os.Stat(newDir); os.IsNotExist(err) {
		t.Error("Data directory should have been created")
	}
}

func TestVerify_EvalBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServerConfig)
	}{
		{"negative epsilon", func(c *ServerConfig) { c.Eval.Epsilon = -1e-10 }},
		{"zero cache size", func(c *ServerConfig) { c.Eval.CacheSize = 0 }},
		{"zero workers", func(c *ServerConfig) { c.Eval.Workers = 0 }},
		{"negative rate limit", func(c *ServerConfig) { c.Eval.RateLimit = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Storage.DataDir = t.TempDir()
			tt.mutate(cfg)

			if err := Verify(cfg); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestVerify_LogValues(t *testing.T) {
	cfg := Default()
	cfg.Storage.DataDir = t.TempDir()

	cfg.Log.Level = "trace"
	if err := Verify(cfg); err == nil {
		t.Error("Expected error for unknown log level")
	}

	cfg.Log.Level = "debug"
	cfg.Log.Format = "logfmt"
	if err := Verify(cfg); err == nil {
		t.Error("Expected error for unknown log format")
	}
}

func TestConstants(t *testing.T) {
	// Verify constants are as expected
	if DefaultHTTPAddr != "127.0.0.1:7080" {
		t.Errorf("DefaultHTTPAddr = %q", DefaultHTTPAddr)
	}
	if DefaultGCInterval != 10*time.Minute {
		t.Errorf("DefaultGCInterval = %v", DefaultGCInterval)
	}
	if DefaultLogLevel != "info" {
		t.Errorf("DefaultLogLevel = %q", DefaultLogLevel)
	}
	if DefaultLogFormat != "json" {
		t.Errorf("DefaultLogFormat = %q", DefaultLogFormat)
	}
}

func TestServerConfig_Struct(t *testing.T) {
	// Test that the struct can be instantiated with all fields
	cfg := ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:        "0.0.0.0:8080",
				TLSCertFile: "/path/to/cert.pem",
				TLSKeyFile:  "/path/to/key.pem",
				RateLimit:   50,
				RateBurst:   100,
			},
		},
		Storage: StorageSection{
			DataDir:     "/data",
			SyncWrites:  true,
			GCInterval:  5 * time.Minute,
			GCThreshold: 0.7,
		},
		Eval: EvalSection{
			Epsilon:   1e-8,
			CacheSize: 256,
			Workers:   8,
			RateLimit: 10,
		},
		Log: LogSection{
			Level:  "debug",
			Format: "text",
		},
	}

	// Verify struct values
	if cfg.Server.HTTP.Addr != "0.0.0.0:8080" {
		t.Error("HTTP addr not set correctly")
	}
	if cfg.Eval.Epsilon != 1e-8 {
		t.Error("Eval epsilon not set correctly")
	}
	if !cfg.Storage.SyncWrites {
		t.Error("SyncWrites should be set")
	}
}
