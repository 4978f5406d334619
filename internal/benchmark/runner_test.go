package benchmark

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spinSink int

func spin(n int) Workload {
	return func() error {
		acc := 0
		for i := 0; i < n; i++ {
			acc += i % 7
		}
		spinSink = acc
		return nil
	}
}

type recordingObserver struct {
	names     []string
	durations []time.Duration
	errs      []error
}

func (o *recordingObserver) Observe(name string, d time.Duration, err error) {
	o.names = append(o.names, name)
	o.durations = append(o.durations, d)
	o.errs = append(o.errs, err)
}

func TestClockRunner_MockClock(t *testing.T) {
	mock := clock.NewMock()
	runner := NewClockRunner(WithClock(mock))

	res, err := runner.Run("advance", func() error {
		mock.Add(1500 * time.Millisecond)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "advance", res.Name)
	assert.Equal(t, 1500*time.Millisecond, res.Duration)
	assert.InDelta(t, 1.5, res.Seconds(), 1e-9)
}

func TestClockRunner_InvokesExactlyOnce(t *testing.T) {
	calls := 0
	res, err := NewClockRunner().Run("count", func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.GreaterOrEqual(t, res.Seconds(), 0.0)
}

func TestClockRunner_EmptyWorkload(t *testing.T) {
	res, err := NewClockRunner().Run("noop", func() error { return nil })

	require.NoError(t, err)
	assert.Equal(t, "noop", res.Name)
	assert.GreaterOrEqual(t, res.Duration, time.Duration(0))
}

func TestClockRunner_SleepWithinTolerance(t *testing.T) {
	const target = 100 * time.Millisecond

	res, err := NewClockRunner().Run("sleep", func() error {
		time.Sleep(target)
		return nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Duration, target)
	assert.InEpsilon(t, target.Seconds(), res.Seconds(), 0.2)
}

func TestClockRunner_ReturnedError(t *testing.T) {
	cause := errors.New("allocation failed")

	res, err := NewClockRunner().Run("alloc", func() error { return cause })

	require.Error(t, err)
	var failure *WorkloadFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "alloc", failure.Name)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Result{}, res)
}

func TestClockRunner_Panic(t *testing.T) {
	res, err := NewClockRunner().Run("boom", func() error {
		panic("out of memory")
	})

	var failure *WorkloadFailure
	require.True(t, errors.As(err, &failure))
	assert.Contains(t, failure.Cause.Error(), "out of memory")
	assert.Equal(t, Result{}, res)
}

func TestClockRunner_PanicWithError(t *testing.T) {
	cause := errors.New("index out of range")

	_, err := NewClockRunner().Run("boom", func() error {
		panic(cause)
	})

	assert.ErrorIs(t, err, cause)
}

func TestClockRunner_NilWorkload(t *testing.T) {
	_, err := NewClockRunner().Run("nil", nil)

	assert.ErrorIs(t, err, ErrNilWorkload)
}

func TestClockRunner_NegativeElapsedClamped(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Unix(1000, 0))
	runner := NewClockRunner(WithClock(mock))

	res, err := runner.Run("rewind", func() error {
		mock.Set(time.Unix(999, 0))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), res.Duration)
}

func TestClockRunner_Independent(t *testing.T) {
	runner := NewClockRunner()

	first, err := runner.Run("spin", spin(200000))
	require.NoError(t, err)
	second, err := runner.Run("spin", spin(200000))
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.Positive(t, first.Duration)
	assert.Positive(t, second.Duration)
	ratio := first.Seconds() / second.Seconds()
	assert.Greater(t, ratio, 0.1)
	assert.Less(t, ratio, 10.0)
}

func TestClockRunner_Observer(t *testing.T) {
	mock := clock.NewMock()
	obs := &recordingObserver{}
	runner := NewClockRunner(WithClock(mock), WithObserver(obs))

	_, _ = runner.Run("ok", func() error {
		mock.Add(time.Second)
		return nil
	})
	_, _ = runner.Run("bad", func() error { return errors.New("nope") })

	require.Len(t, obs.names, 2)
	assert.Equal(t, []string{"ok", "bad"}, obs.names)
	assert.Equal(t, time.Second, obs.durations[0])
	assert.NoError(t, obs.errs[0])
	assert.Error(t, obs.errs[1])
}
