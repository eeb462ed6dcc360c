package di

import (
	"errors"
	"strconv"
)

// DependencyKey names a dependency recorded in a Service or provided by a Registry.
type DependencyKey string

var (
	// ErrNilTarget is returned when injecting into a nil Service or a Service
	// without a value.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilDep, ErrNilBind and ErrDuplicateKey are the causes carried by WiringError.
	ErrNilDep       = errors.New("nil dependency")
	ErrNilBind      = errors.New("nil bind function")
	ErrDuplicateKey = errors.New("duplicate dependency key")
)

// WiringError reports why a dependency could not be injected under Key.
// It unwraps to one of ErrNilDep, ErrNilBind or ErrDuplicateKey.
type WiringError struct {
	Key DependencyKey
	Err error
}

func (e WiringError) Error() string {
	// di: wire "holder": duplicate dependency key
	return "di: wire " + strconv.Quote(string(e.Key)) + ": " + e.Err.Error()
}

func (e WiringError) Unwrap() error { return e.Err }

// MissingDependencyError is returned by Dependency when nothing was recorded under Key.
type MissingDependencyError struct{ Key DependencyKey }

func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a recorded or registered value has
// a different type than the caller asked for.
type WrongTypeDependencyError struct {
	Key DependencyKey

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

func (e WrongTypeDependencyError) Error() string {
	// di: dependency "holder.scale" has wrong type (string)
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}
