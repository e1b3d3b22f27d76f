// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(defaultConfig())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{
			name:    "empty settings path",
			mutate:  func(c *ClientConfig) { c.Storage.SettingsPath = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "sqlite without dsn",
			mutate:  func(c *ClientConfig) { c.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(c *ClientConfig) { c.Storage.Driver = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "remote with address",
			mutate: func(c *ClientConfig) {
				c.Storage.Driver = DriverRemote
				c.Storage.DB.DSN = ""
				c.Adapter.HTTPAddress = "https://ledger.example.co"
			},
		},
		{
			name: "remote without timeout",
			mutate: func(c *ClientConfig) {
				c.Storage.Driver = DriverRemote
				c.Adapter.HTTPAddress = "https://ledger.example.co"
				c.Adapter.RequestTimeout = 0
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *ClientConfig) { c.Rebase.Concurrency = 0 },
			wantErr: ErrInvalidRebaseConfigs,
		},
		{
			name:    "zero chunk size",
			mutate:  func(c *ClientConfig) { c.Rebase.ChunkSize = 0 },
			wantErr: ErrInvalidRebaseConfigs,
		},
		{
			name:    "negative auto lock",
			mutate:  func(c *ClientConfig) { c.Workers.AutoLockAfter = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:   "auto lock disabled",
			mutate: func(c *ClientConfig) { c.Workers.AutoLockAfter = 0 },
		},
		{
			name:    "bad default currency",
			mutate:  func(c *ClientConfig) { c.App.DefaultCurrency = "EURO" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
