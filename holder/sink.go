package holder

import (
	"io"
	"os"
	"sync"
)

// Sink receives diagnostic lines. One call is one line; implementations add
// the terminator.
type Sink interface {
	Diagnostic(msg string)
}

// WriterSink writes each diagnostic as msg + "\n" to W.
// Write errors are dropped. It is safe for concurrent use.
type WriterSink struct {
	mu sync.Mutex
	W  io.Writer
}

// NewWriterSink returns a sink writing to w. A nil w writes to os.Stderr.
func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{W: w} }

// Diagnostic writes one line. A nil receiver or nil W writes to os.Stderr, so
// a holder built with either still emits its construction line.
func (s *WriterSink) Diagnostic(msg string) {
	if s == nil {
		_, _ = io.WriteString(os.Stderr, msg+"\n")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.W
	if w == nil {
		w = os.Stderr
	}
	_, _ = io.WriteString(w, msg+"\n")
}

// StderrSink returns a sink on the process error stream.
func StderrSink() *WriterSink { return NewWriterSink(os.Stderr) }

type discardSink struct{}

// Diagnostic drops msg.
func (discardSink) Diagnostic(string) {}

// DiscardSink drops every diagnostic.
func DiscardSink() Sink { return discardSink{} }
