// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the editing core of the strings editor.
//
// [EditingSession] tracks local insertions and edits of one partition
// against the last remote baseline and turns them into a commit payload.
// [Coordinator] drives the application phases around it and reacts to the
// outcome of the initial load. Both reach the remote only through an
// injected adapter.SyncCollaborator and report progress to an [Observer].
package service
