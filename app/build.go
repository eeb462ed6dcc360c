package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sghaida/valueholder/config"
	"github.com/sghaida/valueholder/di"
	"github.com/sghaida/valueholder/holder"
)

// Registry keys for optional holder dependencies.
const (
	KeySink  di.DependencyKey = "holder.sink"
	KeyScale di.DependencyKey = "holder.scale"
)

// SinkFor maps cfg.Diagnostics to a sink over the given streams.
// Unknown modes fall back to stderr; Config.Validate rejects them earlier.
func SinkFor(cfg config.Config, stdout, stderr io.Writer) holder.Sink {
	switch cfg.Diagnostics {
	case config.DiagnosticsDiscard:
		return holder.DiscardSink()
	case config.DiagnosticsStdout:
		return holder.NewWriterSink(stdout)
	default:
		return holder.NewWriterSink(stderr)
	}
}

// BuildHolder constructs a ValueHolder from cfg, letting reg override the sink
// (KeySink, a holder.Sink) and the scale factor (KeyScale, a float32).
//
// Missing keys fall back to cfg. Resolution errors are returned before
// construction, so a failed build emits no diagnostic.
func BuildHolder(cfg config.Config, reg di.Registry) (*holder.ValueHolder, error) {
	sink, ok, err := di.ResolveAs[holder.Sink](reg, cfg, KeySink)
	if err != nil {
		return nil, fmt.Errorf("app: resolve %s: %w", KeySink, err)
	}
	if !ok {
		sink = SinkFor(cfg, os.Stdout, os.Stderr)
	}

	scale, ok, err := di.ResolveAs[float32](reg, cfg, KeyScale)
	if err != nil {
		return nil, fmt.Errorf("app: resolve %s: %w", KeyScale, err)
	}
	if !ok {
		scale = cfg.ScaleFactor
	}

	return holder.NewWithOptions(holder.WithSink(sink), holder.WithScaleFactor(scale)), nil
}
