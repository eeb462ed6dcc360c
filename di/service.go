package di

import "reflect"

// Service pairs a constructed value with the dependencies injected into it.
// Deps exists for introspection; read it with Dependency.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init calls ctor once and wraps the result with an empty dependency record.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: map[DependencyKey]any{}}
}

// Inject records dep under key and passes it to bind.
//
// Nothing is recorded or bound when it fails: ErrNilTarget for a missing
// target, otherwise a WiringError naming key.
func Inject[T any, D any](s *Service[T], key DependencyKey, dep *D, bind func(target *T, d *D)) error {
	if s == nil || s.Val == nil {
		return ErrNilTarget
	}

	var cause error
	switch _, seen := s.Deps[key]; {
	case dep == nil:
		cause = ErrNilDep
	case bind == nil:
		cause = ErrNilBind
	case seen:
		cause = ErrDuplicateKey
	}
	if cause != nil {
		return WiringError{Key: key, Err: cause}
	}

	if s.Deps == nil {
		s.Deps = map[DependencyKey]any{}
	}
	s.Deps[key] = dep
	bind(s.Val, dep)
	return nil
}

// Dependency returns what was injected into s under key, typed as *D.
func Dependency[D any, T any](s *Service[T], key DependencyKey) (*D, error) {
	var raw any
	if s != nil {
		raw = s.Deps[key]
	}
	if raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}
