// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
)

// CommitPayload is the minimal change set of one commit. It is immutable
// once constructed: accessors return copies.
type CommitPayload struct {
	insertions []Entry
	edits      map[string]Entry
	message    string
}

// NewCommitPayload builds a payload from the queued insertions, the edits
// keyed by the ORIGINAL baseline key, and a commit message. Inputs are copied.
func NewCommitPayload(insertions []Entry, edits map[string]Entry, message string) CommitPayload {
	e := make(map[string]Entry, len(edits))
	maps.Copy(e, edits)

	return CommitPayload{
		insertions: slices.Clone(insertions),
		edits:      e,
		message:    message,
	}
}

// Insertions returns a copy of the queued new entries, newest first.
func (p CommitPayload) Insertions() []Entry {
	return slices.Clone(p.insertions)
}

// Edits returns a copy of the replacements keyed by original baseline key.
func (p CommitPayload) Edits() map[string]Entry {
	e := make(map[string]Entry, len(p.edits))
	maps.Copy(e, p.edits)
	return e
}

// Message returns the commit message.
func (p CommitPayload) Message() string {
	return p.message
}

// Len returns the number of changes carried by the payload.
func (p CommitPayload) Len() int {
	return len(p.insertions) + len(p.edits)
}

// IsEmpty reports whether the payload carries no changes.
func (p CommitPayload) IsEmpty() bool {
	return p.Len() == 0
}

// MarshalJSON renders the payload for logs and diagnostics.
func (p CommitPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Insertions []Entry          `json:"insertions"`
		Edits      map[string]Entry `json:"edits"`
		Message    string           `json:"message"`
	}{
		Insertions: p.insertions,
		Edits:      p.edits,
		Message:    p.message,
	})
}
