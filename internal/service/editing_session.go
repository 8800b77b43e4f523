// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-strings-editor/internal/adapter"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/store"
	"github.com/MKhiriev/go-strings-editor/models"
)

// EditOutcome reports what a successful Edit did to the pending edits.
type EditOutcome int

const (
	// EditApplied means the row now has a pending replacement.
	EditApplied EditOutcome = iota + 1
	// EditReverted means the row matches its baseline entry again and has
	// no pending replacement.
	EditReverted
)

func (o EditOutcome) String() string {
	switch o {
	case EditApplied:
		return "applied"
	case EditReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// EditingSession tracks local changes to one partition against the last
// baseline received from the remote.
//
// The baseline is never modified in place. Pending edits map a baseline row
// to its replacement and exist only while the replacement differs from the
// baseline row. Pending insertions are new entries, newest first. Keys are
// unique across the effective baseline and the pending insertions.
//
// All methods are safe for concurrent use. At most one remote operation
// (commit or partition switch) runs at a time; while it runs, local
// mutations fail with [ErrSyncInFlight].
type EditingSession struct {
	collaborator adapter.SyncCollaborator
	preferences  store.PreferenceRepository
	observer     Observer
	logger       *logger.Logger

	// preferred is the partition read from the preference store at
	// construction.
	preferred models.Partition

	mu            sync.Mutex
	partition     models.Partition
	baseline      []models.Entry
	edits         map[int]models.Entry
	insertions    []models.Entry
	filter        *string
	commitMessage string
	inFlight      bool
	// phase is stamped on emitted events.
	phase Phase
}

// NewEditingSession creates an empty session. The last selected partition is
// read once from preferences; defaultPartition is used when none was saved
// or the saved one cannot be read.
func NewEditingSession(
	ctx context.Context,
	collaborator adapter.SyncCollaborator,
	preferences store.PreferenceRepository,
	observer Observer,
	log *logger.Logger,
	defaultPartition models.Partition,
) *EditingSession {
	preferred := defaultPartition

	saved, err := preferences.LastPartition(ctx)
	switch {
	case err == nil:
		preferred = saved
	case errors.Is(err, store.ErrPreferenceNotFound):
		log.Debug().Stringer("partition", defaultPartition).Msg("no saved partition, using default")
	default:
		log.Warn().Err(err).Stringer("partition", defaultPartition).Msg("reading saved partition failed, using default")
	}

	return &EditingSession{
		collaborator: collaborator,
		preferences:  preferences,
		observer:     observerOrNop(observer),
		logger:       log,
		preferred:    preferred,
		partition:    preferred,
		edits:        make(map[int]models.Entry),
		phase:        PhaseReady,
	}
}

// LoadBaseline replaces the baseline with entries of partition and clears
// pending edits, pending insertions and the filter.
func (s *EditingSession) LoadBaseline(entries []models.Entry, partition models.Partition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadBaselineLocked(entries, partition)
}

func (s *EditingSession) loadBaselineLocked(entries []models.Entry, partition models.Partition) {
	baseline := make([]models.Entry, len(entries))
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		e.Partition = partition
		baseline[i] = e

		if first, dup := seen[e.Key]; dup {
			s.logger.Warn().Str("key", e.Key).Int("first_row", first).Int("row", i).
				Msg("baseline contains duplicate key")
			continue
		}
		seen[e.Key] = i
	}

	s.partition = partition
	s.baseline = baseline
	s.edits = make(map[int]models.Entry)
	s.insertions = nil
	s.filter = nil
}

// loadStateLocked absorbs a full state returned by the collaborator.
func (s *EditingSession) loadStateLocked(state models.LoadedState) {
	partition := state.Partition
	if partition.IsZero() {
		partition = s.partition
	}
	s.loadBaselineLocked(state.Entries, partition)
	s.commitMessage = state.CommitMessage
}

// Insert queues a new entry at the front of the pending insertions. Key and
// value are trimmed first.
func (s *EditingSession) Insert(key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" || value == "" {
		return ErrEmptyRejected
	}
	if key == models.ImmutableKey {
		return fmt.Errorf("%s: %w", key, ErrImmutableKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrSyncInFlight
	}

	for row, original := range s.baseline {
		if original.Key == key || s.effectiveLocked(row).Key == key {
			return fmt.Errorf("%s: %w", key, ErrAlreadyInBaseline)
		}
	}
	for _, queued := range s.insertions {
		if queued.Key == key {
			return fmt.Errorf("%s: %w", key, ErrAlreadyQueued)
		}
	}

	s.insertions = slices.Insert(s.insertions, 0, models.NewEntry(key, value, s.partition))
	return nil
}

// RemoveInsertion drops the pending insertion at index. Out-of-range indexes
// are ignored.
func (s *EditingSession) RemoveInsertion(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.insertions) {
		s.logger.Debug().Int("index", index).Int("len", len(s.insertions)).Msg("ignoring stale insertion index")
		return
	}
	if s.inFlight {
		s.logger.Warn().Int("index", index).Msg("insertion not removed: sync in flight")
		return
	}

	s.insertions = slices.Delete(s.insertions, index, index+1)
}

// Edit changes the key, the value, or both, of the entry at row. A nil
// argument keeps the current text. Input is trimmed.
//
// The candidate is compared with the ORIGINAL baseline entry at row, so
// retyping the original text reverts the row instead of leaving a no-op
// replacement. Text carried over from the baseline row is trimmed, and a
// replacement with an empty key or value is rejected. A rejected edit leaves
// the session unchanged.
func (s *EditingSession) Edit(row int, newKey, newValue *string) (EditOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return 0, ErrSyncInFlight
	}
	if row < 0 || row >= len(s.baseline) {
		return 0, fmt.Errorf("row %d of %d: %w", row, len(s.baseline), ErrRowOutOfRange)
	}

	original := s.baseline[row]
	current := s.effectiveLocked(row)
	candidate := current

	if newKey != nil {
		candidate.Key = strings.TrimSpace(*newKey)
		if candidate.Key == "" {
			return 0, ErrEmptyRejected
		}
	}
	if newValue != nil {
		candidate.Value = strings.TrimSpace(*newValue)
		if candidate.Value == "" {
			return 0, ErrEmptyRejected
		}
	}
	// text carried over from a baseline row may be blank or untrimmed
	if candidate != original {
		candidate.Key = strings.TrimSpace(candidate.Key)
		candidate.Value = strings.TrimSpace(candidate.Value)
		if candidate.Key == "" || candidate.Value == "" {
			return 0, ErrEmptyRejected
		}
	}

	if original.Key == models.ImmutableKey || candidate.Key == models.ImmutableKey {
		return 0, fmt.Errorf("%s: %w", models.ImmutableKey, ErrImmutableKey)
	}

	if candidate.Key != current.Key && s.keyTakenLocked(candidate.Key, row) {
		return 0, fmt.Errorf("%s: %w", candidate.Key, ErrDuplicateKey)
	}

	if candidate == original {
		delete(s.edits, row)
		return EditReverted, nil
	}

	s.edits[row] = candidate
	return EditApplied, nil
}

// effectiveLocked returns the baseline entry at row with its pending edit
// applied.
func (s *EditingSession) effectiveLocked(row int) models.Entry {
	if e, ok := s.edits[row]; ok {
		return e
	}
	return s.baseline[row]
}

// keyTakenLocked reports whether key is the effective key of a row other
// than exceptRow or of a pending insertion.
func (s *EditingSession) keyTakenLocked(key string, exceptRow int) bool {
	for row := range s.baseline {
		if row != exceptRow && s.effectiveLocked(row).Key == key {
			return true
		}
	}
	return slices.ContainsFunc(s.insertions, func(e models.Entry) bool {
		return e.Key == key
	})
}

// HasUnsavedChanges reports whether any edit or insertion is pending.
func (s *EditingSession) HasUnsavedChanges() bool {
	return s.PendingChangeCount() > 0
}

// PendingChangeCount returns the number of pending edits plus insertions.
func (s *EditingSession) PendingChangeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLocked()
}

func (s *EditingSession) pendingLocked() int {
	return len(s.edits) + len(s.insertions)
}

// Partition returns the partition of the current baseline.
func (s *EditingSession) Partition() models.Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.partition
}

// PreferredPartition returns the partition read from the preference store
// when the session was created.
func (s *EditingSession) PreferredPartition() models.Partition {
	return s.preferred
}

// Baseline returns a copy of the baseline.
func (s *EditingSession) Baseline() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.baseline)
}

// PendingEdits returns a copy of the pending replacements by row.
func (s *EditingSession) PendingEdits() map[int]models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.edits)
}

// PendingInsertions returns a copy of the pending insertions, newest first.
func (s *EditingSession) PendingInsertions() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.insertions)
}

// LastCommitMessage returns the message of the last remote commit, if the
// remote reported one.
func (s *EditingSession) LastCommitMessage() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitMessage, s.commitMessage != ""
}

// InFlight reports whether a commit or partition switch is running.
func (s *EditingSession) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// RowForKey returns the row whose effective key is key.
func (s *EditingSession) RowForKey(key string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for row := range s.baseline {
		if s.effectiveLocked(row).Key == key {
			return row, true
		}
	}
	return -1, false
}
