// Package holder implements ValueHolder: a small stateful value that keeps the
// result of its last integer Combine and renders a scaled float as text.
//
// Constructing a ValueHolder writes exactly one "ctor" line to a diagnostic
// Sink. The sink is injected (New or WithSink) so tests can observe
// construction without capturing os.Stderr. The package has no configuration
// of its own; app.BuildHolder maps config and registry entries onto options.
//
//	h := holder.New(holder.StderrSink())
//	h.Combine(2, 3)   // 5, Accumulator() == 5
//	h.Combine(-1, 1)  // 0, Accumulator() == 0
//	h.FormatScaled()  // "4.700000"
package holder
