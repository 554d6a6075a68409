// Package notify carries transient user-visible notifications from the admin
// screens to whoever is listening: the HTTP response, the log, the websocket hub.
package notify

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notification is a transient message raised by a screen.
type Notification struct {
	Level   Level     `json:"level"`
	Screen  string    `json:"screen"`
	Message string    `json:"message"`
	Detail  string    `json:"detail,omitempty"`
	Time    time.Time `json:"time"`
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// Fanout delivers each notification to every non-nil notifier in order.
type Fanout []Notifier

func (f Fanout) Notify(n Notification) {
	for _, target := range f {
		if target != nil {
			target.Notify(n)
		}
	}
}

// Recorder keeps notifications in memory, typically for the length of one request.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// LogNotifier writes notifications to a zerolog logger. Errors log at error level.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(n Notification) {
	var event *zerolog.Event
	switch n.Level {
	case LevelError:
		event = l.logger.Error()
	case LevelSuccess:
		event = l.logger.Info()
	default:
		event = l.logger.Debug()
	}
	event = event.Str("screen", n.Screen)
	if n.Detail != "" {
		event = event.Str("detail", n.Detail)
	}
	event.Msg(n.Message)
}
