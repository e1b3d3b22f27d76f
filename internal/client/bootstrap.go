// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

// BootstrapFunc opens the stores selected by cfg and wires the services over
// them. The closer releases the stores.
type BootstrapFunc func(ctx context.Context, cfg *config.ClientConfig) (*service.ClientServices, io.Closer, error)

// NewBootstrap returns the production [BootstrapFunc]: a SQL database for
// the sqlite and postgres drivers, the REST adapter for the remote driver,
// and a local settings file in every case.
func NewBootstrap(log *logger.Logger) BootstrapFunc {
	return func(ctx context.Context, cfg *config.ClientConfig) (*service.ClientServices, io.Closer, error) {
		storages, err := openStorages(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}

		services, err := service.NewClientServices(ctx, storages, cfg.Rebase, log)
		if err != nil {
			_ = storages.Close()
			return nil, nil, fmt.Errorf("create client services: %w", err)
		}

		return services, storages, nil
	}
}

func openStorages(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*store.ClientStorages, error) {
	if cfg.Storage.Driver != config.DriverRemote {
		storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("create local storage: %w", err)
		}
		return storages, nil
	}

	records, err := adapter.NewRESTStore(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create rest adapter: %w", err)
	}
	return store.NewRemoteClientStorages(records, cfg.Storage), nil
}
