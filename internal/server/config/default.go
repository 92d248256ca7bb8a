// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr  = "127.0.0.1:7080"
	DefaultRateBurst = 16

	DefaultDataDir     = "/var/lib/gravsweep/data"
	DefaultGCInterval  = 10 * time.Minute
	DefaultGCThreshold = 0.5

	DefaultCacheSize = 1024
	DefaultWorkers   = 4

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:      DefaultHTTPAddr,
				RateBurst: DefaultRateBurst,
			},
		},
		Storage: StorageSection{
			DataDir:     DefaultDataDir,
			GCInterval:  DefaultGCInterval,
			GCThreshold: DefaultGCThreshold,
		},
		Eval: EvalSection{
			CacheSize: DefaultCacheSize,
			Workers:   DefaultWorkers,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
