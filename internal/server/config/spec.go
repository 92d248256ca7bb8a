// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for gravsweep-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Eval    EvalSection    `koanf:"eval"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP  HTTPConfig  `koanf:"http"`
	Local LocalConfig `koanf:"local"`
}

// LocalConfig configures the Unix-socket API endpoint. An empty
// socket path disables it.
type LocalConfig struct {
	SocketPath string `koanf:"socket_path"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`

	// RateLimit caps inbound requests per second. Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// StorageSection configures the run store.
type StorageSection struct {
	DataDir string `koanf:"data_dir"`

	// InMemory keeps runs in memory only. DataDir is ignored when set.
	InMemory   bool `koanf:"in_memory"`
	SyncWrites bool `koanf:"sync_writes"`

	GCInterval  time.Duration `koanf:"gc_interval"`
	GCThreshold float64       `koanf:"gc_threshold"`
}

// EvalSection configures the evaluation service.
type EvalSection struct {
	// Epsilon is the radial-component regularization term.
	// Zero means the built-in default.
	Epsilon float64 `koanf:"epsilon"`

	CacheSize int `koanf:"cache_size"`
	Workers   int `koanf:"workers"`

	// RateLimit caps sweep variant dispatches per second.
	// Zero disables limiting.
	RateLimit float64 `koanf:"rate_limit"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
