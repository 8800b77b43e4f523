package client

import (
	"github.com/MKhiriev/go-strings-editor/internal/logger"
	"github.com/MKhiriev/go-strings-editor/internal/service"
)

// eventLogger writes coordinator and session events to the log.
type eventLogger struct {
	logger *logger.Logger
}

// NewEventLogger returns an observer that logs every event it receives.
// Events carrying an error are logged as warnings.
func NewEventLogger(log *logger.Logger) service.Observer {
	return &eventLogger{logger: log}
}

func (o *eventLogger) Notify(e service.Event) {
	ev := o.logger.Debug()
	if e.Err != nil {
		ev = o.logger.Warn().Err(e.Err)
	}

	ev = ev.Stringer("event", e.Kind).Stringer("phase", e.Phase)
	if e.Kind == service.EventSyncStarted || e.Kind == service.EventSyncFinished {
		ev = ev.Stringer("op", e.Op).Int("pending", e.Pending)
	}
	ev.Msg("session event")
}
