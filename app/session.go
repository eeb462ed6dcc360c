// Package app is the composition root: it wires a ValueHolder into a Session
// that reports results to an output stream.
package app

import (
	"fmt"
	"io"

	"github.com/sghaida/valueholder/config"
	"github.com/sghaida/valueholder/di"
	"github.com/sghaida/valueholder/holder"
)

// KeyHolder is the dependency key the holder is recorded under.
const KeyHolder di.DependencyKey = "holder"

// Session prints holder results to Out.
type Session struct {
	Holder *holder.ValueHolder
	Out    io.Writer
}

// NewSession builds the holder from cfg and reg, then injects it into a new
// Session writing to out.
func NewSession(cfg config.Config, reg di.Registry, out io.Writer) (*di.Service[Session], error) {
	h, err := BuildHolder(cfg, reg)
	if err != nil {
		return nil, err
	}

	session := di.Init(func() *Session { return &Session{Out: out} })
	err = di.Inject(session, KeyHolder, h, func(s *Session, v *holder.ValueHolder) {
		s.Holder = v
	})
	if err != nil {
		return nil, fmt.Errorf("app: wire session: %w", err)
	}
	return session, nil
}

// Combine runs Holder.Combine and prints "combine(a, b) = sum".
func (s *Session) Combine(a, b int32) int32 {
	sum := s.Holder.Combine(a, b)
	_, _ = fmt.Fprintf(s.Out, "combine(%d, %d) = %d\n", a, b, sum)
	return sum
}

// Report prints the accumulator and the formatted scaled value.
func (s *Session) Report() {
	_, _ = fmt.Fprintf(s.Out, "accumulator = %d\n", s.Holder.Accumulator())
	_, _ = fmt.Fprintf(s.Out, "scaled = %s\n", s.Holder.FormatScaled())
}
