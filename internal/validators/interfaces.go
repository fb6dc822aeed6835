// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the local input validation applied before any
// request is forwarded to the upstream marketplace.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Implement Validator to encode request-specific rules.
//  2. Inject Validator implementations into services.
//  3. Call Validate with context, value, and optional field names to enforce rules.
//
// Every rule violation is reported with one of the sentinel errors in
// errors.go, possibly wrapped with the index of the offending list entry.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
