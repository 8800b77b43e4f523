// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Phase is a step of the application lifecycle driven by the Coordinator.
type Phase int

const (
	// PhaseLaunching is entered while the initial load is in flight.
	PhaseLaunching Phase = iota
	// PhaseLoggedOut means no usable login is available.
	PhaseLoggedOut
	// PhaseReady means an EditingSession holds a loaded baseline.
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLaunching:
		return "launching"
	case PhaseLoggedOut:
		return "logged out"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// EventKind identifies a notification delivered to an Observer.
type EventKind int

const (
	// EventLaunching is emitted when the coordinator starts loading.
	EventLaunching EventKind = iota
	// EventDidLogin is emitted when the coordinator reaches PhaseReady.
	EventDidLogin
	// EventDidLogout is emitted when the coordinator reaches PhaseLoggedOut.
	// Err is set when the load failed for a reason other than credentials.
	EventDidLogout
	// EventSyncStarted is emitted before a remote call of the session.
	EventSyncStarted
	// EventSyncFinished is emitted after a remote call of the session, with
	// Err set on failure.
	EventSyncFinished
)

func (k EventKind) String() string {
	switch k {
	case EventLaunching:
		return "launching"
	case EventDidLogin:
		return "did login"
	case EventDidLogout:
		return "did logout"
	case EventSyncStarted:
		return "sync started"
	case EventSyncFinished:
		return "sync finished"
	default:
		return "unknown"
	}
}

// SyncOp names the remote operation a sync event refers to.
type SyncOp int

const (
	SyncLoad SyncOp = iota
	SyncPush
	SyncSwitch
)

func (o SyncOp) String() string {
	switch o {
	case SyncLoad:
		return "load"
	case SyncPush:
		return "push"
	case SyncSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Event is a notification about a lifecycle or sync step.
type Event struct {
	Kind  EventKind
	Phase Phase
	Op    SyncOp
	Err   error

	// Pending is the number of unsaved changes at the time of the event.
	Pending int
}

// Observer receives events. Notify is called synchronously and must not
// call back into the emitting session or coordinator.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) {
	f(e)
}

type nopObserver struct{}

func (nopObserver) Notify(Event) {}

func observerOrNop(o Observer) Observer {
	if o == nil {
		return nopObserver{}
	}
	return o
}
