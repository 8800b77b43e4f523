// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-strings-editor/internal/adapter"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/store"
	"github.com/MKhiriev/go-strings-editor/models"
)

// Coordinator sequences the application phases: launching, logged out and
// ready. It owns the EditingSession while ready and drops it on every
// transition.
//
// Load failures caused by missing or rejected credentials lead to
// PhaseLoggedOut. Any other load failure also leads to PhaseLoggedOut, with
// the error attached to the EventDidLogout notification and returned from
// Start.
//
// A Logout or a newer Start during a launch supersedes it; the superseded
// launch discards its result.
type Coordinator struct {
	collaborator     adapter.SyncCollaborator
	preferences      store.PreferenceRepository
	observer         Observer
	defaultPartition models.Partition
	logger           *logger.Logger

	mu      sync.Mutex
	phase   Phase
	session *EditingSession
	// launch counts launches and logouts; a launch owns the phase only while
	// it matches.
	launch uint64
}

func NewCoordinator(
	collaborator adapter.SyncCollaborator,
	preferences store.PreferenceRepository,
	observer Observer,
	log *logger.Logger,
	defaultPartition models.Partition,
) *Coordinator {
	return &Coordinator{
		collaborator:     collaborator,
		preferences:      preferences,
		observer:         observerOrNop(observer),
		defaultPartition: defaultPartition,
		logger:           log,
		phase:            PhaseLoggedOut,
	}
}

// Start loads the remote state and moves to PhaseReady or PhaseLoggedOut.
// The current session, if any, is dropped first.
func (c *Coordinator) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseLaunching {
		c.mu.Unlock()
		return ErrLaunchInProgress
	}
	c.session = nil
	c.phase = PhaseLaunching
	c.launch++
	launch := c.launch
	c.mu.Unlock()

	c.observer.Notify(Event{Kind: EventLaunching, Phase: PhaseLaunching})
	c.observer.Notify(Event{Kind: EventSyncStarted, Phase: PhaseLaunching, Op: SyncLoad})

	state, err := c.collaborator.Load(ctx)

	c.observer.Notify(Event{Kind: EventSyncFinished, Phase: PhaseLaunching, Op: SyncLoad, Err: err})

	if err != nil {
		loginRequired := errors.Is(err, adapter.ErrNoCredentials) || errors.Is(err, adapter.ErrBadCredentials)
		cause := err
		if loginRequired {
			cause = nil
		}

		if !c.endLaunch(launch, cause) {
			c.logger.Info().Err(err).Msg("launch superseded")
			return nil
		}
		if loginRequired {
			c.logger.Info().Err(err).Msg("login required")
			return nil
		}

		c.logger.Err(err).Msg("loading strings failed")
		return fmt.Errorf("load: %w", err)
	}

	if !c.owns(launch) {
		c.logger.Info().Msg("launch superseded, dropping loaded strings")
		return nil
	}

	session := NewEditingSession(ctx, c.collaborator, c.preferences, c.observer, c.logger, c.defaultPartition)
	session.mu.Lock()
	session.loadStateLocked(state)
	session.phase = PhaseLaunching
	session.mu.Unlock()

	if preferred := session.PreferredPartition(); preferred != session.Partition() {
		c.logger.Info().Stringer("loaded", session.Partition()).Stringer("preferred", preferred).
			Msg("switching to saved partition")
		if err = session.CommitPartitionSwitch(ctx, preferred); err != nil {
			c.logger.Warn().Err(err).Msg("staying on loaded partition")
		}
	}

	c.mu.Lock()
	if c.phase != PhaseLaunching || c.launch != launch {
		c.mu.Unlock()
		c.logger.Info().Msg("launch superseded, dropping session")
		return nil
	}
	session.setPhase(PhaseReady)
	c.session = session
	c.phase = PhaseReady
	c.mu.Unlock()

	c.logger.Info().Stringer("partition", session.Partition()).Int("entries", len(state.Entries)).Msg("ready")
	c.observer.Notify(Event{Kind: EventDidLogin, Phase: PhaseReady})
	return nil
}

// owns reports whether launch is still the current launch.
func (c *Coordinator) owns(launch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase == PhaseLaunching && c.launch == launch
}

// Resume restarts the lifecycle, e.g. after the process was suspended.
func (c *Coordinator) Resume(ctx context.Context) error {
	return c.Start(ctx)
}

// Logout drops the stored credentials and the session.
func (c *Coordinator) Logout(ctx context.Context) {
	c.collaborator.Logout(ctx)
	c.toLoggedOut(nil)
	c.logger.Info().Msg("logged out")
}

// SubmitCredentials stores a login and starts again.
func (c *Coordinator) SubmitCredentials(ctx context.Context, username, password string) error {
	if !c.collaborator.StoreCredentials(ctx, username, password) {
		return ErrCredentialsNotStored
	}
	return c.Start(ctx)
}

// Phase returns the current phase.
func (c *Coordinator) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Session returns the editing session; it fails with [ErrNotReady] outside
// PhaseReady.
func (c *Coordinator) Session() (*EditingSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseReady || c.session == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotReady, c.phase)
	}
	return c.session, nil
}

// endLaunch moves to PhaseLoggedOut if launch is still the current launch.
func (c *Coordinator) endLaunch(launch uint64, cause error) bool {
	c.mu.Lock()
	if c.phase != PhaseLaunching || c.launch != launch {
		c.mu.Unlock()
		return false
	}
	c.loggedOutLocked()
	c.mu.Unlock()

	c.observer.Notify(Event{Kind: EventDidLogout, Phase: PhaseLoggedOut, Err: cause})
	return true
}

func (c *Coordinator) toLoggedOut(cause error) {
	c.mu.Lock()
	c.loggedOutLocked()
	c.mu.Unlock()

	c.observer.Notify(Event{Kind: EventDidLogout, Phase: PhaseLoggedOut, Err: cause})
}

func (c *Coordinator) loggedOutLocked() {
	c.launch++
	c.session = nil
	c.phase = PhaseLoggedOut
}
