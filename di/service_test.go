package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/valueholder/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ N int }

type reporter struct {
	Counter *counter
	Prefix  *string
}

func newReporter() *di.Service[reporter] {
	return di.Init(func() *reporter { return &reporter{} })
}

func bindCounter(r *reporter, c *counter) { r.Counter = c }

//
// -----------------------------------------------------------------------------
// Init
// -----------------------------------------------------------------------------

// TestInit_CallsCtorOnce verifies Init constructs exactly once and starts with an empty record.
func TestInit_CallsCtorOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	svc := di.Init(func() *counter { calls++; return &counter{N: 7} })

	require.NotNil(t, svc.Val)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, svc.Val.N)
	assert.Empty(t, svc.Deps)
}

//
// -----------------------------------------------------------------------------
// Inject
// -----------------------------------------------------------------------------

// TestInject_BindsAndRecords verifies a successful injection binds the dependency and records it.
func TestInject_BindsAndRecords(t *testing.T) {
	t.Parallel()

	svc := newReporter()
	c := &counter{N: 1}
	prefix := "> "

	require.NoError(t, di.Inject(svc, "counter", c, bindCounter))
	require.NoError(t, di.Inject(svc, "prefix", &prefix, func(r *reporter, p *string) { r.Prefix = p }))

	assert.Same(t, c, svc.Val.Counter)
	assert.Same(t, &prefix, svc.Val.Prefix)
	assert.Len(t, svc.Deps, 2)
}

// TestInject_DuplicateKeyKeepsFirst verifies a second injection under the same key fails and binds nothing.
func TestInject_DuplicateKeyKeepsFirst(t *testing.T) {
	t.Parallel()

	svc := newReporter()
	first := &counter{N: 1}
	require.NoError(t, di.Inject(svc, "counter", first, bindCounter))

	err := di.Inject(svc, "counter", &counter{N: 2}, bindCounter)
	require.Error(t, err)
	assert.ErrorIs(t, err, di.ErrDuplicateKey)
	assert.Equal(t, `di: wire "counter": duplicate dependency key`, err.Error())

	var we di.WiringError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, di.DependencyKey("counter"), we.Key)
	assert.Same(t, first, svc.Val.Counter)
}

// TestInject_Errors verifies each invalid wiring returns its cause and leaves the target untouched.
func TestInject_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		target *di.Service[reporter]
		dep    *counter
		bind   func(*reporter, *counter)
		wantIs error
	}{
		{name: "nil target", target: nil, dep: &counter{}, bind: bindCounter, wantIs: di.ErrNilTarget},
		{name: "nil target value", target: &di.Service[reporter]{}, dep: &counter{}, bind: bindCounter, wantIs: di.ErrNilTarget},
		{name: "nil dependency", target: newReporter(), dep: nil, bind: bindCounter, wantIs: di.ErrNilDep},
		{name: "nil bind", target: newReporter(), dep: &counter{}, bind: nil, wantIs: di.ErrNilBind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := di.Inject(tc.target, "counter", tc.dep, tc.bind)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantIs)
			if tc.target != nil && tc.target.Val != nil {
				assert.Nil(t, tc.target.Val.Counter)
				assert.Empty(t, tc.target.Deps)
			}
		})
	}
}

// TestInject_NilDepsMapIsCreated verifies a zero Deps record is allocated lazily.
func TestInject_NilDepsMapIsCreated(t *testing.T) {
	t.Parallel()

	svc := &di.Service[reporter]{Val: &reporter{}}
	require.NoError(t, di.Inject(svc, "counter", &counter{N: 3}, bindCounter))
	assert.Equal(t, 3, svc.Val.Counter.N)
}

//
// -----------------------------------------------------------------------------
// Dependency
// -----------------------------------------------------------------------------

func TestDependency(t *testing.T) {
	t.Parallel()

	svc := newReporter()
	require.NoError(t, di.Inject(svc, "counter", &counter{N: 9}, bindCounter))

	got, err := di.Dependency[counter](svc, "counter")
	require.NoError(t, err)
	assert.Equal(t, 9, got.N)

	_, err = di.Dependency[counter](svc, "missing")
	var missing di.MissingDependencyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, `di: dependency "missing" missing`, err.Error())

	_, err = di.Dependency[string](svc, "counter")
	var wrong di.WrongTypeDependencyError
	require.True(t, errors.As(err, &wrong))
	assert.Equal(t, "*di_test.counter", wrong.GotType)

	_, err = di.Dependency[counter, reporter](nil, "counter")
	assert.True(t, errors.As(err, &missing))
}
