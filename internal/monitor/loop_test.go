package monitor

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandem-cli/tandem/internal/config"
	"github.com/tandem-cli/tandem/internal/logger"
)

// fakeSampler returns canned snapshots or errors and counts calls.
type fakeSampler struct {
	calls int32
	snap  *Snapshot
	err   error

	// errFirst makes only the first call fail.
	errFirst bool
}

func (f *fakeSampler) Collect(ctx context.Context) (*Snapshot, error) {
	n := atomic.AddInt32(&f.calls, 1)
	if f.err != nil && (!f.errFirst || n == 1) {
		return nil, f.err
	}
	if f.snap != nil {
		return f.snap, nil
	}
	return &Snapshot{Timestamp: time.Now(), CPU: CPUMetrics{Percent: 50, Cores: 4}}, nil
}

func (f *fakeSampler) callCount() int32 {
	return atomic.LoadInt32(&f.calls)
}

func testRunner(sampler Sampler, buf *bytes.Buffer, interval time.Duration) *Runner {
	cfg := config.DefaultConfig().Monitor
	return &Runner{
		sampler:  sampler,
		composer: NewComposer(cfg),
		out:      termenv.NewOutput(buf),
		interval: interval,
		log:      logger.Noop(),
	}
}

func TestNewRunner_IntervalFallback(t *testing.T) {
	cfg := config.DefaultConfig().Monitor
	cfg.Interval = 0

	r := NewRunner(&fakeSampler{}, cfg, &bytes.Buffer{})
	assert.Equal(t, config.DefaultInterval, r.interval)

	cfg.Interval = 5 * time.Second
	r = NewRunner(&fakeSampler{}, cfg, &bytes.Buffer{})
	assert.Equal(t, 5*time.Second, r.interval)
}

func TestRunner_RendersImmediatelyAndStopsOnCancel(t *testing.T) {
	var buf bytes.Buffer
	sampler := &fakeSampler{}
	r := testRunner(sampler, &buf, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// The first report renders before the first interval elapses.
	require.Eventually(t, func() bool { return sampler.callCount() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	out := buf.String()
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, " 50%")
	assert.Contains(t, out, "4 cores")
	assert.NotContains(t, out, "\x1b[2J", "non-terminal writers are never cleared")
	assert.Equal(t, int32(1), sampler.callCount())
}

func TestRunner_FailedCollectRendersZeroReport(t *testing.T) {
	var buf bytes.Buffer
	sampler := &fakeSampler{err: errors.New("exec: \"sh\": executable file not found in $PATH")}
	r := testRunner(sampler, &buf, time.Hour)
	blog := logger.NewBufferLogger()
	r.log = blog

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return sampler.callCount() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	out := buf.String()
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "MEM")
	assert.Contains(t, out, "  0%")
	assert.True(t, blog.HasLevel("debug"), "the fallback is logged, not surfaced")
	assert.True(t, blog.HasMessage("collect failed"))
}

func TestRunner_KeepsTickingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	sampler := &fakeSampler{err: errors.New("boom"), errFirst: true}
	r := testRunner(sampler, &buf, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	// Wait out the failed first tick plus at least one successful one.
	require.Eventually(t, func() bool { return sampler.callCount() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Contains(t, buf.String(), " 50%", "later ticks render real samples")
}

func TestRunner_NoRenderWhenContextCanceledMidCollect(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sampler := &fakeSampler{err: ctx.Err()}
	r := testRunner(sampler, &buf, time.Hour)

	r.tick(ctx)

	assert.Zero(t, buf.Len(), "a canceled tick draws nothing")
}
