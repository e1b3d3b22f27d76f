// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	restPrefix = "/rest/v1/"

	headerPrefer = "Prefer"

	returnRepresentation = "return=representation"

	retryCount   = 2
	retryBackoff = 200 * time.Millisecond
)

type restStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewRESTStore constructs a [store.Store] backed by the REST API at
// adapterCfg.HTTPAddress. Every request carries the API key both as the
// apikey header and as a bearer token.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewRESTStore(adapterCfg config.ClientAdapter, log *logger.Logger) (store.Store, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout).WithAPIKey(adapterCfg.APIKey)
	client.
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryBackoff).
		AddRetryCondition(retryableResponse)

	return &restStore{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ReadAll implements [store.Store] via GET /rest/v1/{table}.
func (r *restStore) ReadAll(ctx context.Context, tableName string) ([]models.StorageRow, error) {
	table, err := store.LookupTable(tableName)
	if err != nil {
		return nil, err
	}

	var flat []map[string]any
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "created_at.asc,id.asc").
		SetResult(&flat).
		Get(restPrefix + table.Name)
	if err != nil {
		r.logger.Err(err).Str("func", "restStore.ReadAll").Str("table", table.Name).Msg("request failed")
		return nil, fmt.Errorf("read %s request: %w", table.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeRows(table, flat)
}

// Insert implements [store.Store] via POST /rest/v1/{table}.
func (r *restStore) Insert(ctx context.Context, tableName string, row models.StorageRow) (models.StorageRow, error) {
	table, err := store.LookupTable(tableName)
	if err != nil {
		return models.StorageRow{}, err
	}

	body := store.FlatColumns(table, row)
	body[models.ColumnID] = row.ID

	var flat []map[string]any
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, returnRepresentation).
		SetBody(body).
		SetResult(&flat).
		Post(restPrefix + table.Name)
	if err != nil {
		r.logger.Err(err).Str("func", "restStore.Insert").Str("table", table.Name).Msg("request failed")
		return models.StorageRow{}, fmt.Errorf("insert %s request: %w", table.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StorageRow{}, err
	}

	return singleRow(table, flat, row.ID)
}

// Update implements [store.Store] via PATCH /rest/v1/{table}?id=eq.{id}.
func (r *restStore) Update(ctx context.Context, tableName, id string, partial models.StorageRow) (models.StorageRow, error) {
	table, err := store.LookupTable(tableName)
	if err != nil {
		return models.StorageRow{}, err
	}

	var flat []map[string]any
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerPrefer, returnRepresentation).
		SetQueryParam(models.ColumnID, "eq."+id).
		SetBody(store.FlatColumns(table, partial)).
		SetResult(&flat).
		Patch(restPrefix + table.Name)
	if err != nil {
		r.logger.Err(err).Str("func", "restStore.Update").Str("table", table.Name).Msg("request failed")
		return models.StorageRow{}, fmt.Errorf("update %s request: %w", table.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StorageRow{}, err
	}

	return singleRow(table, flat, id)
}

// Delete implements [store.Store] via DELETE /rest/v1/{table}?id=eq.{id}.
func (r *restStore) Delete(ctx context.Context, tableName, id string) error {
	table, err := store.LookupTable(tableName)
	if err != nil {
		return err
	}

	var flat []map[string]any
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader(headerPrefer, returnRepresentation).
		SetQueryParam(models.ColumnID, "eq."+id).
		SetResult(&flat).
		Delete(restPrefix + table.Name)
	if err != nil {
		r.logger.Err(err).Str("func", "restStore.Delete").Str("table", table.Name).Msg("request failed")
		return fmt.Errorf("delete %s request: %w", table.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if len(flat) == 0 {
		return fmt.Errorf("%w: %s/%s", store.ErrRowNotFound, table.Name, id)
	}
	return nil
}

func decodeRows(table models.Table, flat []map[string]any) ([]models.StorageRow, error) {
	rows := make([]models.StorageRow, 0, len(flat))
	for _, item := range flat {
		row, err := store.RowFromColumns(table, item)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// singleRow extracts the one representation row returned for id. An empty
// representation means no row matched.
func singleRow(table models.Table, flat []map[string]any, id string) (models.StorageRow, error) {
	if len(flat) == 0 {
		return models.StorageRow{}, fmt.Errorf("%w: %s/%s", store.ErrRowNotFound, table.Name, id)
	}

	rows, err := decodeRows(table, flat[:1])
	if err != nil {
		return models.StorageRow{}, err
	}
	return rows[0], nil
}
