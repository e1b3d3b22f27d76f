// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks ledger records and patches before the services
// encode them. Validation runs on decrypted records, so the store never
// receives a record the service would refuse to read back.
package validators

import "context"

// Validator validates obj. fields optionally restricts the check to the
// named fields; with none, every rule applies.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
