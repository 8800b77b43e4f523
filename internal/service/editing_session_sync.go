// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-strings-editor/models"
)

// SwitchKind tells the caller whether a partition switch needs confirmation.
type SwitchKind int

const (
	// SwitchImmediate means nothing would be lost by switching.
	SwitchImmediate SwitchKind = iota + 1
	// SwitchConfirmRequired means Count pending changes would be discarded.
	SwitchConfirmRequired
)

// SwitchDecision is the answer of RequestPartitionSwitch.
type SwitchDecision struct {
	Kind  SwitchKind
	Count int
}

// RequestPartitionSwitch asks whether switching to target may proceed
// without confirmation. It changes nothing.
func (s *EditingSession) RequestPartitionSwitch(target models.Partition) SwitchDecision {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n := s.pendingLocked(); n > 0 {
		s.logger.Debug().Stringer("target", target).Int("pending", n).Msg("partition switch needs confirmation")
		return SwitchDecision{Kind: SwitchConfirmRequired, Count: n}
	}
	return SwitchDecision{Kind: SwitchImmediate}
}

// CommitPartitionSwitch loads target from the collaborator and replaces the
// session state with it, discarding all pending changes and the filter. If
// the collaborator fails, the session is left exactly as it was. On success
// target is saved as the preferred partition.
func (s *EditingSession) CommitPartitionSwitch(ctx context.Context, target models.Partition) error {
	pending, err := s.begin()
	if err != nil {
		return err
	}

	s.notify(Event{Kind: EventSyncStarted, Op: SyncSwitch, Pending: pending})

	state, err := s.collaborator.ChangePartition(ctx, target)

	s.mu.Lock()
	s.inFlight = false
	if err == nil {
		if state.Partition.IsZero() {
			state.Partition = target
		}
		s.loadStateLocked(state)
	}
	pending = s.pendingLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Err(err).Stringer("target", target).Msg("partition switch failed")
		s.notify(Event{Kind: EventSyncFinished, Op: SyncSwitch, Err: err, Pending: pending})
		return fmt.Errorf("switch to %s: %w", target, err)
	}

	if err = s.preferences.SaveLastPartition(ctx, state.Partition); err != nil {
		s.logger.Warn().Err(err).Stringer("partition", state.Partition).Msg("saving partition preference failed")
	}

	s.logger.Info().Stringer("partition", state.Partition).Int("entries", len(state.Entries)).Msg("partition switched")
	s.notify(Event{Kind: EventSyncFinished, Op: SyncSwitch, Pending: pending})
	return nil
}

// BuildCommitPayload returns the pending changes as a payload. Edits are
// keyed by the ORIGINAL baseline key of their row. Pending state is not
// cleared.
func (s *EditingSession) BuildCommitPayload(message string) models.CommitPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildCommitPayloadLocked(message)
}

func (s *EditingSession) buildCommitPayloadLocked(message string) models.CommitPayload {
	edits := make(map[string]models.Entry, len(s.edits))
	for row, replacement := range s.edits {
		edits[s.baseline[row].Key] = replacement
	}
	return models.NewCommitPayload(s.insertions, edits, message)
}

// AbsorbCommitResult applies the outcome of a push. On success the returned
// state becomes the new baseline and pending changes are cleared. On failure
// pending changes are kept and err is returned.
func (s *EditingSession) AbsorbCommitResult(state models.LoadedState, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.absorbCommitResultLocked(state, err)
}

func (s *EditingSession) absorbCommitResultLocked(state models.LoadedState, err error) error {
	if err != nil {
		return err
	}
	s.loadStateLocked(state)
	return nil
}

// Commit pushes the pending changes with message and absorbs the result.
func (s *EditingSession) Commit(ctx context.Context, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyCommitMessage
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrSyncInFlight
	}
	if s.pendingLocked() == 0 {
		s.mu.Unlock()
		return ErrNothingToCommit
	}
	payload := s.buildCommitPayloadLocked(message)
	s.inFlight = true
	s.mu.Unlock()

	s.notify(Event{Kind: EventSyncStarted, Op: SyncPush, Pending: payload.Len()})
	s.logger.Debug().Any("payload", payload).Msg("pushing pending changes")

	state, err := s.collaborator.Push(ctx, payload.Insertions(), payload.Edits(), payload.Message())

	s.mu.Lock()
	s.inFlight = false
	err = s.absorbCommitResultLocked(state, err)
	pending := s.pendingLocked()
	s.mu.Unlock()

	s.notify(Event{Kind: EventSyncFinished, Op: SyncPush, Err: err, Pending: pending})

	if err != nil {
		s.logger.Err(err).Int("pending", pending).Msg("push failed, pending changes kept")
		return fmt.Errorf("push: %w", err)
	}

	s.logger.Info().Int("changes", payload.Len()).Str("message", message).Msg("changes pushed")
	return nil
}

// begin marks a remote operation as in flight.
func (s *EditingSession) begin() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return 0, ErrSyncInFlight
	}
	s.inFlight = true
	return s.pendingLocked(), nil
}

func (s *EditingSession) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

func (s *EditingSession) notify(e Event) {
	s.mu.Lock()
	e.Phase = s.phase
	s.mu.Unlock()
	s.observer.Notify(e)
}
