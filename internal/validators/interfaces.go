// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the structural rules of strings data at the
// boundaries: payloads leaving the client, baselines arriving from the
// remote, and partitions typed by the user.
//
// A Validator validates the provided value, optionally restricted to the
// named fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
