// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrEmptyDate              = errors.New("date is required")
	ErrInvalidAmount          = errors.New("amount must be a finite number")
	ErrEmptyName              = errors.New("name is required")
	ErrNegativeAmount         = errors.New("goal amounts cannot be negative")
	ErrNoFieldsToUpdate       = errors.New("at least one field must be provided for update")
	ErrEmptyTag               = errors.New("tags cannot be empty")
)
