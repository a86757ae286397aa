// Package diagnostics carries positioned load errors out of the loader.
//
// Errors propagate as explicit values; Sink additionally keeps the
// most recent one so callers can read a single "last error" string per
// load without threading the error through themselves.
package diagnostics

import "fmt"

// Position is a (line, column) source location, 1-indexed to match
// yaml.v3's yaml.Node.Line/Column.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error is a single diagnostic: a short code, the position it occurred
// at, the file it came from (filled in by the caller that opened the
// stream, since productions only see nodes), and a human-readable
// message.
type Error struct {
	Code    string
	Pos     Position
	File    string
	Message string
}

func New(code string, pos Position, format string, args ...any) *Error {
	return &Error{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s at %s", e.File, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Sink records the most recent diagnostic raised during one load
// operation. It is scoped to whoever owns it (a Loader), never a
// package-level global, and each recorded diagnostic
// overwrites the previous one.
type Sink struct {
	last *Error
}

// Record stores err as the current diagnostic and returns it, so call
// sites can write `return sink.Record(diagnostics.New(...))`.
func (s *Sink) Record(err *Error) *Error {
	s.last = err
	return err
}

// LastError returns the most recently recorded diagnostic's message, or
// "" if none has been recorded yet.
func (s *Sink) LastError() string {
	if s.last == nil {
		return ""
	}
	return s.last.Error()
}

// Last returns the most recently recorded diagnostic, or nil.
func (s *Sink) Last() *Error {
	return s.last
}
