// Package telemetry provides a JSONL event stream for recording what a
// dashboard session showed. Every render, option change, config reload and
// export is recorded as a structured JSON event, making sessions replayable
// and easy to analyze.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart   = "session_start"
	KindSessionEnd     = "session_end"
	KindViewRender     = "view_render"
	KindOptionsChanged = "options_changed"
	KindConfigReloaded = "config_reloaded"
	KindExport         = "export"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, and optional context (section, element symbol) along with
// arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Section   string    `json:"section,omitempty"`
	Symbol    string    `json:"symbol,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex

	onError  func(error)
	reported bool
	now      func() time.Time
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithErrorHandler sets a callback invoked for the first failed Record.
// Later failures are dropped silently.
func WithErrorHandler(fn func(error)) Option {
	return func(e *Emitter) { e.onError = fn }
}

// WithClock overrides the timestamp source used by Record.
func WithClock(now func() time.Time) Option {
	return func(e *Emitter) { e.now = now }
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string, opts ...Option) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	e := &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
		now:  time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// Emit writes a single event to the JSONL file. It is safe for concurrent use.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Record stamps and emits an event, reporting the first failure to the
// error handler. Telemetry never interrupts rendering.
func (e *Emitter) Record(kind, section, symbol string, data any) {
	if e == nil {
		return
	}
	err := e.Emit(Event{
		Timestamp: e.now().UTC(),
		Kind:      kind,
		Section:   section,
		Symbol:    symbol,
		Data:      data,
	})
	if err == nil {
		return
	}
	e.mu.Lock()
	first := !e.reported
	e.reported = true
	e.mu.Unlock()
	if first && e.onError != nil {
		e.onError(err)
	}
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
