// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// DefaultCurrency is the currency suggested by the setup command.
	DefaultCurrency string
}

// ClientAdapter holds settings of the remote REST store.
type ClientAdapter struct {
	// HTTPAddress is the REST backend base URL.
	HTTPAddress string
	// APIKey authenticates every request.
	APIKey string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains database connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL connection string.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	// Driver is one of [DriverSQLite], [DriverPostgres] or [DriverRemote].
	Driver string
	// DB holds SQL database settings; unused by the remote driver.
	DB ClientDB
	// SettingsPath is where local settings are persisted.
	SettingsPath string
}

// ClientRebase contains currency conversion tuning.
type ClientRebase struct {
	Concurrency int
	ChunkSize   int
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// AutoLockAfter is the idle timeout of an unlocked session; zero disables it.
	AutoLockAfter time.Duration
}

// ClientConfig is the validated runtime view assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Rebase  ClientRebase
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config from defaults, the
// optional JSON file, the environment and the parsed flag set fs.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			DefaultCurrency: cfg.App.DefaultCurrency,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIKey:         cfg.Adapter.APIKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver:       cfg.Storage.Driver,
			DB:           ClientDB{DSN: cfg.Storage.DB.DSN},
			SettingsPath: cfg.Storage.SettingsPath,
		},
		Rebase: ClientRebase{
			Concurrency: cfg.Rebase.Concurrency,
			ChunkSize:   cfg.Rebase.ChunkSize,
		},
		Workers: ClientWorkers{AutoLockAfter: cfg.Workers.AutoLockAfter},
	}
}
