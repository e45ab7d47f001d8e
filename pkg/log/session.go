package log

import (
	"time"

	"github.com/google/uuid"
)

// Session stamps events with a run ID, a timestamp and the source name
// before forwarding them to the wrapped Logger.
type Session struct {
	logger Logger
	runID  string
	source string
	now    func() time.Time
}

// NewSession creates a Session with a fresh run ID.
// A nil logger is replaced by NoopLogger.
func NewSession(logger Logger, source string) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Session{
		logger: logger,
		runID:  uuid.New().String(),
		source: source,
		now:    time.Now,
	}
}

// RunID returns the run ID attached to every event of this session.
func (s *Session) RunID() string {
	return s.runID
}

// Log fills in RunID, Timestamp and Source where unset and forwards the event.
func (s *Session) Log(event Event) {
	if event.RunID == "" {
		event.RunID = s.runID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if event.Source == "" {
		event.Source = s.source
	}
	s.logger.Log(event)
}

// Compile-time interface satisfaction check.
var _ Logger = (*Session)(nil)
