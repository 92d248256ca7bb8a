// Package config defines the server configuration structure.
package config

import (
	"errors"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifyEval(&cfg.Eval); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}

	cert, key := cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile
	if (cert == "") != (key == "") {
		return errors.New("server.http: tls_cert_file and tls_key_file must be set together")
	}
	for _, path := range []string{cert, key} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			return errors.New("server.http: cannot read TLS file " + path + ": " + err.Error())
		}
	}

	if cfg.HTTP.RateLimit < 0 {
		return errors.New("server.http.rate_limit must not be negative")
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	if cfg.InMemory {
		return nil
	}
	if cfg.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}

	// Check if data directory exists or can be created
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return errors.New("cannot create data directory: " + err.Error())
	}

	if cfg.GCThreshold < 0 || cfg.GCThreshold > 1 {
		return errors.New("storage.gc_threshold must be between 0 and 1")
	}
	return nil
}

func verifyEval(cfg *EvalSection) error {
	if cfg.Epsilon < 0 {
		return errors.New("eval.epsilon must not be negative")
	}
	if cfg.CacheSize < 1 {
		return errors.New("eval.cache_size must be at least 1")
	}
	if cfg.Workers < 1 {
		return errors.New("eval.workers must be at least 1")
	}
	if cfg.RateLimit < 0 {
		return errors.New("eval.rate_limit must not be negative")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch cfg.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log.level must be one of: debug, info, warn, error")
	}
	switch cfg.Format {
	case "json", "text":
	default:
		return errors.New("log.format must be one of: json, text")
	}
	return nil
}
