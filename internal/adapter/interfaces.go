// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the editing core to the remote strings
// repository.
//
// The core only sees [SyncCollaborator]. The package ships an HTTP/REST
// implementation ([NewHTTPSyncCollaborator]) that manages stored
// credentials, bearer tokens and the wire format.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrBadCredentials] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-strings-editor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_collaborator_mock.go -package=mock

// SyncCollaborator loads, switches and pushes the strings of one partition.
// Every successful call returns the full replacement baseline.
type SyncCollaborator interface {
	// Load fetches the current partition. It fails with [ErrNoCredentials]
	// when nothing is stored and [ErrBadCredentials] when the remote rejects
	// the stored login.
	Load(ctx context.Context) (models.LoadedState, error)

	// ChangePartition fetches target. The collaborator only adopts target as
	// its current partition when the fetch succeeds.
	ChangePartition(ctx context.Context, target models.Partition) (models.LoadedState, error)

	// Push commits insertions and edits (keyed by original baseline key)
	// with message and returns the baseline after the commit.
	Push(ctx context.Context, insertions []models.Entry, edits map[string]models.Entry, message string) (models.LoadedState, error)

	// StoreCredentials persists a login for later Loads. It reports whether
	// the credentials were stored.
	StoreCredentials(ctx context.Context, username, password string) bool

	// Logout forgets stored credentials and any cached token.
	Logout(ctx context.Context)
}
