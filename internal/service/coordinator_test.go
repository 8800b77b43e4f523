// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-strings-editor/internal/adapter"
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/mock"
	"github.com/MKhiriev/go-strings-editor/internal/store"
	"github.com/MKhiriev/go-strings-editor/models"
)

func newTestCoordinator(t *testing.T, ctrl *gomock.Controller) (
	*Coordinator,
	*mock.MockSyncCollaborator,
	*mock.MockPreferenceRepository,
	*recorder,
) {
	t.Helper()
	mockCollab := mock.NewMockSyncCollaborator(ctrl)
	mockPrefs := mock.NewMockPreferenceRepository(ctrl)
	rec := &recorder{}

	c := NewCoordinator(mockCollab, mockPrefs, rec, logger.Nop(), ios)
	return c, mockCollab, mockPrefs, rec
}

func iosState() models.LoadedState {
	return models.LoadedState{Entries: entries(ios, "a", "1", "b", "2"), CommitMessage: "last", Partition: ios}
}

// ── Start ───────────────────────────────────────────────────────────────────

func TestCoordinator_Start_Ready(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, rec := newTestCoordinator(t, ctrl)

	gomock.InOrder(
		mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil),
		mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(models.Partition{}, store.ErrPreferenceNotFound),
	)

	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, PhaseReady, c.Phase())
	s, err := c.Session()
	require.NoError(t, err)
	assert.Equal(t, iosState().Entries, s.Baseline())
	msg, ok := s.LastCommitMessage()
	assert.True(t, ok)
	assert.Equal(t, "last", msg)

	assert.Equal(t, []EventKind{EventLaunching, EventSyncStarted, EventSyncFinished, EventDidLogin}, rec.kinds())
	assert.Equal(t, PhaseReady, rec.last().Phase)
}

func TestCoordinator_Start_CredentialProblemsLogOut(t *testing.T) {
	for _, loadErr := range []error{adapter.ErrNoCredentials, adapter.ErrBadCredentials} {
		t.Run(loadErr.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c, mockCollab, mockPrefs, rec := newTestCoordinator(t, ctrl)

			mockCollab.EXPECT().Load(gomock.Any()).Return(models.LoadedState{}, loadErr)
			mockPrefs.EXPECT().LastPartition(gomock.Any()).Times(0)

			require.NoError(t, c.Start(context.Background()))

			assert.Equal(t, PhaseLoggedOut, c.Phase())
			_, err := c.Session()
			assert.ErrorIs(t, err, ErrNotReady)
			assert.Equal(t, EventDidLogout, rec.last().Kind)
			assert.NoError(t, rec.last().Err)
		})
	}
}

func TestCoordinator_Start_OtherErrorSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, _, rec := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Load(gomock.Any()).Return(models.LoadedState{}, adapter.ErrNetwork)

	err := c.Start(context.Background())

	require.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Equal(t, PhaseLoggedOut, c.Phase())
	assert.Equal(t, EventDidLogout, rec.last().Kind)
	assert.ErrorIs(t, rec.last().Err, adapter.ErrNetwork)
}

func TestCoordinator_Start_SwitchesToSavedPartition(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, _ := newTestCoordinator(t, ctrl)

	androidState := models.LoadedState{Entries: entries(android, "x", "X"), Partition: android}

	gomock.InOrder(
		mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil),
		mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(android, nil),
		mockCollab.EXPECT().ChangePartition(gomock.Any(), android).Return(androidState, nil),
		mockPrefs.EXPECT().SaveLastPartition(gomock.Any(), android).Return(nil),
	)

	require.NoError(t, c.Start(context.Background()))

	s, err := c.Session()
	require.NoError(t, err)
	assert.Equal(t, android, s.Partition())
	assert.Equal(t, androidState.Entries, s.Baseline())
}

func TestCoordinator_Start_SavedPartitionUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, _ := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil)
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(android, nil)
	mockCollab.EXPECT().ChangePartition(gomock.Any(), android).Return(models.LoadedState{}, adapter.ErrUnknownPartition)

	require.NoError(t, c.Start(context.Background()))

	s, err := c.Session()
	require.NoError(t, err)
	assert.Equal(t, ios, s.Partition())
	assert.Equal(t, iosState().Entries, s.Baseline())
}

func TestCoordinator_Start_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, _ := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.LoadedState, error) {
		assert.Equal(t, PhaseLaunching, c.Phase())
		assert.ErrorIs(t, c.Start(ctx), ErrLaunchInProgress)
		_, err := c.Session()
		assert.ErrorIs(t, err, ErrNotReady)
		return iosState(), nil
	})
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(ios, nil)

	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestCoordinator_Start_SwitchReportedWhileLaunching(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, rec := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil)
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(android, nil)
	mockCollab.EXPECT().ChangePartition(gomock.Any(), android).Return(models.LoadedState{Partition: android}, nil)
	mockPrefs.EXPECT().SaveLastPartition(gomock.Any(), android).Return(nil)

	require.NoError(t, c.Start(context.Background()))

	var switches []Event
	for _, e := range rec.events {
		if e.Op == SyncSwitch {
			switches = append(switches, e)
		}
	}
	require.Len(t, switches, 2)
	for _, e := range switches {
		assert.Equal(t, PhaseLaunching, e.Phase)
	}
	assert.Equal(t, EventSyncFinished, switches[1].Kind)
	assert.Equal(t, []EventKind{
		EventLaunching,
		EventSyncStarted, EventSyncFinished, // load
		EventSyncStarted, EventSyncFinished, // switch
		EventDidLogin,
	}, rec.kinds())

	// после запуска события сессии помечаются как ready
	s, err := c.Session()
	require.NoError(t, err)
	require.NoError(t, s.Insert("k", "v"))
	mockCollab.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any(), "m").Return(models.LoadedState{Partition: android}, nil)
	require.NoError(t, s.Commit(context.Background(), "m"))
	assert.Equal(t, PhaseReady, rec.last().Phase)
}

func TestCoordinator_Resume_ReplacesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, _ := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil).Times(2)
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(ios, nil).Times(2)

	require.NoError(t, c.Start(context.Background()))
	first, err := c.Session()
	require.NoError(t, err)
	require.NoError(t, first.Insert("c", "3"))

	require.NoError(t, c.Resume(context.Background()))
	second, err := c.Session()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.False(t, second.HasUnsavedChanges())
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestCoordinator_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, rec := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil)
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(ios, nil)
	mockCollab.EXPECT().Logout(gomock.Any())

	require.NoError(t, c.Start(context.Background()))
	c.Logout(context.Background())

	assert.Equal(t, PhaseLoggedOut, c.Phase())
	_, err := c.Session()
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Equal(t, EventDidLogout, rec.last().Kind)
}

func TestCoordinator_LogoutDuringLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, rec := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Logout(gomock.Any())
	mockCollab.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.LoadedState, error) {
		c.Logout(ctx)
		return iosState(), nil
	})
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Times(0)

	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, PhaseLoggedOut, c.Phase())
	_, err := c.Session()
	assert.ErrorIs(t, err, ErrNotReady)
	assert.NotContains(t, rec.kinds(), EventDidLogin)
	assert.Equal(t, []EventKind{EventLaunching, EventSyncStarted, EventDidLogout, EventSyncFinished}, rec.kinds())
}

func TestCoordinator_LogoutDuringFailedLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, _, rec := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Logout(gomock.Any())
	mockCollab.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (models.LoadedState, error) {
		c.Logout(ctx)
		return models.LoadedState{}, adapter.ErrNetwork
	})

	// the logout already ended the launch, so the load error is dropped
	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, PhaseLoggedOut, c.Phase())
	logouts := 0
	for _, k := range rec.kinds() {
		if k == EventDidLogout {
			logouts++
		}
	}
	assert.Equal(t, 1, logouts)
}

func TestCoordinator_LogoutDuringSavedPartitionSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, rec := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().Logout(gomock.Any())
	mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil)
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(android, nil)
	mockCollab.EXPECT().ChangePartition(gomock.Any(), android).
		DoAndReturn(func(ctx context.Context, p models.Partition) (models.LoadedState, error) {
			c.Logout(ctx)
			return models.LoadedState{Partition: p}, nil
		})
	mockPrefs.EXPECT().SaveLastPartition(gomock.Any(), android).Return(nil)

	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, PhaseLoggedOut, c.Phase())
	_, err := c.Session()
	assert.ErrorIs(t, err, ErrNotReady)
	assert.NotContains(t, rec.kinds(), EventDidLogin)
}

// ── SubmitCredentials ───────────────────────────────────────────────────────

func TestCoordinator_SubmitCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, mockPrefs, _ := newTestCoordinator(t, ctrl)

	gomock.InOrder(
		mockCollab.EXPECT().StoreCredentials(gomock.Any(), "alice", "secret").Return(true),
		mockCollab.EXPECT().Load(gomock.Any()).Return(iosState(), nil),
	)
	mockPrefs.EXPECT().LastPartition(gomock.Any()).Return(ios, nil)

	require.NoError(t, c.SubmitCredentials(context.Background(), "alice", "secret"))
	assert.Equal(t, PhaseReady, c.Phase())
}

func TestCoordinator_SubmitCredentials_NotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, _, _ := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().StoreCredentials(gomock.Any(), "alice", "secret").Return(false)
	mockCollab.EXPECT().Load(gomock.Any()).Times(0)

	err := c.SubmitCredentials(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, ErrCredentialsNotStored)
	assert.Equal(t, PhaseLoggedOut, c.Phase())
}

func TestCoordinator_SubmitCredentials_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, mockCollab, _, rec := newTestCoordinator(t, ctrl)

	mockCollab.EXPECT().StoreCredentials(gomock.Any(), "alice", "wrong").Return(true)
	mockCollab.EXPECT().Load(gomock.Any()).Return(models.LoadedState{}, adapter.ErrBadCredentials)

	require.NoError(t, c.SubmitCredentials(context.Background(), "alice", "wrong"))
	assert.Equal(t, PhaseLoggedOut, c.Phase())
	assert.Equal(t, EventDidLogout, rec.last().Kind)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "launching", PhaseLaunching.String())
	assert.Equal(t, "logged out", PhaseLoggedOut.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

func TestCoordinator_Observers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollab := mock.NewMockSyncCollaborator(ctrl)
	mockPrefs := mock.NewMockPreferenceRepository(ctrl)

	mockCollab.EXPECT().Load(gomock.Any()).Return(models.LoadedState{}, adapter.ErrNoCredentials).Times(2)

	// nil observer is replaced with a no-op one
	require.NoError(t, NewCoordinator(mockCollab, mockPrefs, nil, logger.Nop(), ios).Start(context.Background()))

	var got []EventKind
	observer := ObserverFunc(func(e Event) { got = append(got, e.Kind) })
	require.NoError(t, NewCoordinator(mockCollab, mockPrefs, observer, logger.Nop(), ios).Start(context.Background()))

	assert.Equal(t, []EventKind{EventLaunching, EventSyncStarted, EventSyncFinished, EventDidLogout}, got)
}
