// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrAlreadyInBaseline = errors.New("key already exists")
	ErrAlreadyQueued     = errors.New("key already queued")

	ErrEmptyRejected = errors.New("empty key or value")
	ErrImmutableKey  = errors.New("key cannot be changed")
	ErrDuplicateKey  = errors.New("key already in use")
	ErrRowOutOfRange = errors.New("row out of range")

	ErrSyncInFlight       = errors.New("sync operation in flight")
	ErrEmptyCommitMessage = errors.New("commit message is required")
	ErrNothingToCommit    = errors.New("nothing to commit")

	ErrNotReady             = errors.New("session is not ready")
	ErrLaunchInProgress     = errors.New("launch already in progress")
	ErrCredentialsNotStored = errors.New("credentials could not be stored")
)
