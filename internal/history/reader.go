package history

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	herrors "github.com/chazuruo/shellhist/internal/errors"
)

// Sink receives commands as the Reader recognizes them. *Store satisfies it.
type Sink interface {
	Append(command string)
}

// AppendFunc adapts a function to the Sink interface.
type AppendFunc func(command string)

// Append calls f(command).
func (f AppendFunc) Append(command string) { f(command) }

// Reader states.
const (
	stateIdle = iota
	stateRoot
	stateCommand
)

// Reader parses a persisted history stream and feeds recognized commands into
// a Sink as it goes, so a failure partway through keeps everything parsed up
// to that point. A Reader holds per-parse state and must not be shared across
// concurrent Read calls.
type Reader struct {
	state   int
	buf     strings.Builder
	version string
}

// NewReader creates a Reader ready for a single parse.
func NewReader() *Reader {
	return &Reader{state: stateIdle}
}

// Version returns the producer version recorded in the file's root element,
// or the empty string if the file predates version tagging.
func (r *Reader) Version() string {
	return r.version
}

// Read consumes the stream and appends each well-formed, non-empty command to
// sink in file order. Unknown elements and attributes are ignored, as are
// close tags that do not match the current state; this keeps files written by
// newer producers, and lightly hand-edited files, readable.
//
// A structurally malformed stream stops the parse and reports
// errors.ErrMalformed; commands appended before the failure are kept. A
// failure of the underlying stream reports errors.ErrIO. A stream with no
// root element yields no commands and no error.
func (r *Reader) Read(src io.Reader, sink Sink) (string, error) {
	dec := xml.NewDecoder(src)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return r.version, nil
		}
		if err != nil {
			var syntax *xml.SyntaxError
			if errors.As(err, &syntax) {
				return r.version, fmt.Errorf("%w: %w", herrors.ErrMalformed, err)
			}
			return r.version, fmt.Errorf("%w: %w", herrors.ErrIO, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			r.startElement(t)
		case xml.EndElement:
			r.endElement(t, sink)
		case xml.CharData:
			if r.state == stateCommand {
				r.buf.Write(t)
			}
		}
	}
}

func (r *Reader) startElement(t xml.StartElement) {
	switch {
	case t.Name.Local == rootElement && r.state == stateIdle:
		r.state = stateRoot
		for _, attr := range t.Attr {
			if attr.Name.Local == versionAttribute {
				r.version = attr.Value
			}
		}
	case t.Name.Local == commandElement && r.state == stateRoot:
		r.state = stateCommand
		r.buf.Reset()
	}
}

func (r *Reader) endElement(t xml.EndElement, sink Sink) {
	switch {
	case t.Name.Local == rootElement && r.state == stateRoot:
		r.state = stateIdle
	case t.Name.Local == commandElement && r.state == stateCommand:
		r.state = stateRoot
		if cmd := strings.TrimSpace(r.buf.String()); cmd != "" {
			sink.Append(cmd)
		}
		r.buf.Reset()
	}
}
