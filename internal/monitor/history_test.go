package monitor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cpuSnap(percent float64) *Snapshot {
	return &Snapshot{CPU: CPUMetrics{Percent: percent}}
}

func TestNewHistory(t *testing.T) {
	h := NewHistory(30)
	assert.Equal(t, 0, h.Len())

	// Non-positive sizes fall back to the default
	h = NewHistory(0)
	for i := 0; i < DefaultHistorySize+5; i++ {
		h.Push(cpuSnap(float64(i)))
	}
	assert.Equal(t, DefaultHistorySize, h.Len())
}

func TestHistory_PushAndGet(t *testing.T) {
	h := NewHistory(10)

	h.Push(cpuSnap(10))
	h.Push(cpuSnap(20))
	h.Push(cpuSnap(30))

	values := h.CPU(10)
	assert.Equal(t, []float64{10, 20, 30}, values, "values come back oldest first")

	values = h.CPU(2)
	assert.Equal(t, []float64{20, 30}, values)
}

func TestHistory_RAMStoresPercent(t *testing.T) {
	h := NewHistory(10)

	h.Push(&Snapshot{
		RAM: RAMMetrics{UsedBytes: 4096, TotalBytes: 16384},
	})

	values := h.RAM(10)
	require.Len(t, values, 1)
	assert.InDelta(t, 25.0, values[0], 0.001)
}

func TestHistory_WrapsAtCapacity(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Push(cpuSnap(float64(i * 10)))
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []float64{30, 40, 50}, h.CPU(10), "oldest values are dropped")
}

func TestHistory_GPU(t *testing.T) {
	h := NewHistory(10)

	// No GPU sample yet
	h.Push(cpuSnap(10))
	assert.Nil(t, h.GPU(10))

	// Multi-GPU sample stores the aggregate mean
	h.Push(&Snapshot{
		GPUs: []GPUMetrics{{Percent: 40}, {Percent: 80}},
	})

	values := h.GPU(10)
	require.Len(t, values, 1)
	assert.InDelta(t, 60.0, values[0], 0.001)

	// A later snapshot without GPUs does not push a bogus zero
	h.Push(cpuSnap(20))
	assert.Len(t, h.GPU(10), 1)
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(10)
	h.Push(cpuSnap(50))
	h.Push(&Snapshot{GPUs: []GPUMetrics{{Percent: 30}}})

	h.Clear()

	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.CPU(10))
	assert.Nil(t, h.GPU(10))
}

func TestHistory_PushNil(t *testing.T) {
	h := NewHistory(10)

	h.Push(nil)

	assert.Equal(t, 0, h.Len())
}

func TestHistory_ConcurrentAccess(t *testing.T) {
	h := NewHistory(10)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			h.Push(cpuSnap(float64(n)))
		}(i)
		go func() {
			defer wg.Done()
			_ = h.CPU(10)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, h.Len())
}

func TestRingBuffer_GetLast(t *testing.T) {
	r := newRingBuffer(5)

	assert.Nil(t, r.getLast(3), "empty buffer returns nil")

	r.push(1)
	r.push(2)
	r.push(3)

	assert.Equal(t, []float64{1, 2, 3}, r.getLast(10))
	assert.Equal(t, []float64{3}, r.getLast(1))
	assert.Nil(t, r.getLast(0))
}
