package holder

import "fmt"

// ctorMessage is emitted once per construction.
const ctorMessage = "ctor"

// DefaultScaleFactor is the scale factor a new ValueHolder starts with.
const DefaultScaleFactor float32 = 1.6

const (
	fixedMagic int64 = 32

	// scaleOffset is added to the scale factor by FormatScaled.
	scaleOffset float64 = 3.1
)

// ValueHolder keeps the result of the last Combine call and a scale factor
// used by FormatScaled.
//
// A ValueHolder is not safe for concurrent use.
type ValueHolder struct {
	accumulator int32
	scaleFactor float32
	fixedMagic  int64
}

// Option customizes a ValueHolder before its construction diagnostic is emitted.
type Option func(*options)

type options struct {
	sink  Sink
	scale float32
}

// WithSink sets the diagnostic sink. A nil sink keeps the stderr default; a
// nil *WriterSink is accepted too and writes to stderr itself.
func WithSink(s Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithScaleFactor overrides the default scale factor.
func WithScaleFactor(f float32) Option {
	return func(o *options) { o.scale = f }
}

// New constructs a ValueHolder with default state and writes "ctor" to sink.
// A nil sink writes to stderr.
func New(sink Sink) *ValueHolder {
	return NewWithOptions(WithSink(sink))
}

// NewWithOptions is New with options. Exactly one diagnostic line is emitted
// no matter which options are given.
func NewWithOptions(opts ...Option) *ValueHolder {
	o := options{scale: DefaultScaleFactor}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.sink == nil {
		o.sink = StderrSink()
	}

	h := &ValueHolder{
		scaleFactor: o.scale,
		fixedMagic:  fixedMagic,
	}
	o.sink.Diagnostic(ctorMessage)
	return h
}

// CreateAndDiscard constructs one ValueHolder and drops it. The diagnostic
// line is its only effect.
func CreateAndDiscard(sink Sink) {
	_ = New(sink)
}

// Combine stores a+b as the accumulator and returns it. The previous
// accumulator value is overwritten, not added to. int32 overflow wraps.
func (h *ValueHolder) Combine(a, b int32) int32 {
	sum := a + b
	h.accumulator = sum
	return sum
}

// FormatScaled returns 3.1 + scale factor rendered with %f.
// The float32 field is widened to float64 before the addition.
func (h *ValueHolder) FormatScaled() string {
	return fmt.Sprintf("%f", scaleOffset+float64(h.scaleFactor))
}

// Accumulator returns the last Combine result, or 0.
func (h *ValueHolder) Accumulator() int32 { return h.accumulator }

// ScaleFactor returns the value FormatScaled adds to 3.1.
func (h *ValueHolder) ScaleFactor() float32 { return h.scaleFactor }

// SetScaleFactor replaces the scale factor. Any float32 is accepted, NaN and
// infinities included.
func (h *ValueHolder) SetScaleFactor(f float32) { h.scaleFactor = f }

// FixedMagic is always 32.
func (h *ValueHolder) FixedMagic() int64 { return h.fixedMagic }
