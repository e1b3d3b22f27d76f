// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	FlagConfig          = "config"
	FlagDriver          = "driver"
	FlagDSN             = "dsn"
	FlagSettings        = "settings"
	FlagAdapterAddress  = "adapter-address"
	FlagAdapterAPIKey   = "adapter-api-key"
	FlagRequestTimeout  = "request-timeout"
	FlagRebaseWorkers   = "rebase-concurrency"
	FlagRebaseChunkSize = "rebase-chunk-size"
	FlagAutoLockAfter   = "auto-lock-after"
	FlagDefaultCurrency = "default-currency"
)

// BindFlags registers all configuration flags on fs. It is meant to be
// called with the persistent flag set of the CLI root command.
//
// Flags:
//
//	-c/--config              json file path with configs
//	--driver                 record store: sqlite, postgres or remote
//	-d/--dsn                 database DSN
//	--settings               local settings file path
//	--adapter-address        REST backend base URL
//	--adapter-api-key        REST backend API key
//	--request-timeout        REST request timeout (e.g. "10s")
//	--rebase-concurrency     records rewritten at once during currency conversion
//	--rebase-chunk-size      records per conversion checkpoint
//	--auto-lock-after        idle time before the key is dropped (e.g. "15m")
//	--default-currency       currency offered during setup
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagDriver, "", "Record store driver: sqlite, postgres or remote")
	fs.StringP(FlagDSN, "d", "", "Database DSN")
	fs.String(FlagSettings, "", "Local settings file path")
	fs.String(FlagAdapterAddress, "", "REST backend base URL")
	fs.String(FlagAdapterAPIKey, "", "REST backend API key")
	fs.Duration(FlagRequestTimeout, 0, "REST request timeout (e.g., 10s)")
	fs.Int(FlagRebaseWorkers, 0, "Records rewritten in parallel during currency conversion")
	fs.Int(FlagRebaseChunkSize, 0, "Records persisted per conversion checkpoint")
	fs.Duration(FlagAutoLockAfter, 0, "Idle time before the session locks (e.g., 15m)")
	fs.String(FlagDefaultCurrency, "", "Currency offered during setup")
}

// parseFlags reads the flags registered by [BindFlags]. Only flags the user
// actually set are copied; the rest stay zero so they never override
// lower-priority layers.
func parseFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	str := func(name string, dst *string) {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}

	str(FlagConfig, &cfg.JSONFilePath)
	str(FlagDriver, &cfg.Storage.Driver)
	str(FlagDSN, &cfg.Storage.DB.DSN)
	str(FlagSettings, &cfg.Storage.SettingsPath)
	str(FlagAdapterAddress, &cfg.Adapter.HTTPAddress)
	str(FlagAdapterAPIKey, &cfg.Adapter.APIKey)
	str(FlagDefaultCurrency, &cfg.App.DefaultCurrency)

	if fs.Changed(FlagRequestTimeout) {
		cfg.Adapter.RequestTimeout, _ = fs.GetDuration(FlagRequestTimeout)
	}
	if fs.Changed(FlagAutoLockAfter) {
		cfg.Workers.AutoLockAfter, _ = fs.GetDuration(FlagAutoLockAfter)
	}
	if fs.Changed(FlagRebaseWorkers) {
		cfg.Rebase.Concurrency, _ = fs.GetInt(FlagRebaseWorkers)
	}
	if fs.Changed(FlagRebaseChunkSize) {
		cfg.Rebase.ChunkSize, _ = fs.GetInt(FlagRebaseChunkSize)
	}

	return cfg
}
