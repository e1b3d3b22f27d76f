// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a remote implementation of [store.Store] that
// talks to a PostgREST-style backend over HTTP.
//
// Rows travel as flat JSON objects with one key per column, the same layout
// the SQL store writes. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401).
package adapter
