// Package display draws countdown frames on a writer.
package display

import (
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/AnatoleLucet/countdown"
)

// Text writes each frame as the two human readable lines.
type Text struct {
	mu  sync.Mutex
	w   io.Writer
	log zerolog.Logger
}

// NewText returns a text surface writing to w. Write errors are logged.
func NewText(w io.Writer, log zerolog.Logger) *Text {
	return &Text{w: w, log: log}
}

// Render writes frame as two lines.
func (t *Text) Render(frame countdown.Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprintf(t.w, "Random number: %d\nNew random number in: %d seconds.\n", frame.Value, frame.Seconds)
	if err != nil {
		t.log.Error().Err(err).Msg("failed to render frame")
	}
}

// JSON writes each frame as one JSON document per line.
type JSON struct {
	mu  sync.Mutex
	enc *json.Encoder
	log zerolog.Logger
}

// NewJSON returns a JSON lines surface writing to w. Write errors are logged.
func NewJSON(w io.Writer, log zerolog.Logger) *JSON {
	return &JSON{enc: json.NewEncoder(w), log: log}
}

// Render writes frame as one JSON document.
func (j *JSON) Render(frame countdown.Frame) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.enc.Encode(frame); err != nil {
		j.log.Error().Err(err).Msg("failed to render frame")
	}
}

// New returns the surface for format, "text" or "json".
func New(format string, w io.Writer, log zerolog.Logger) (countdown.Surface, error) {
	switch format {
	case "text", "":
		return NewText(w, log), nil
	case "json":
		return NewJSON(w, log), nil
	default:
		return nil, errors.Errorf("unknown display format %q", format)
	}
}
