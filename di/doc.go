// Package di holds the explicit wiring helpers the holder packages are built with.
//
// Two pieces live here:
//
//   - Service[T] + Inject: a constructed value plus a record of what was
//     injected into it. Inject fails with ErrNilTarget or a WiringError
//     (nil dependency, nil bind, duplicate key); Dependency reads the record.
//
//   - Registry: a read-only source of optional dependencies consulted once at
//     build time (see app.BuildHolder).
//
// There is no container and no reflection-based injection. Wiring stays in the
// composition root (app.NewSession, cmd/holderdemo).
//
// Import
//
//	"github.com/sghaida/valueholder/di"
package di
