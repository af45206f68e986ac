package monitor

import "sync"

// DefaultHistorySize is the default number of data points to retain per metric.
const DefaultHistorySize = 60

// History stores recent metric percentages in ring buffers for sparkline
// rendering. Access is thread-safe; the dashboard pushes from Update while
// View reads.
type History struct {
	mu   sync.RWMutex
	size int
	cpu  *ringBuffer
	ram  *ringBuffer
	gpu  *ringBuffer // nil until a GPU sample arrives
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a new history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size: size,
		cpu:  newRingBuffer(size),
		ram:  newRingBuffer(size),
	}
}

// Push records one snapshot's percentages.
func (h *History) Push(s *Snapshot) {
	if s == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.cpu.push(s.CPU.Percent)
	h.ram.push(s.RAM.Percent())

	if len(s.GPUs) > 0 {
		if h.gpu == nil {
			h.gpu = newRingBuffer(h.size)
		}
		h.gpu.push(AggregateGPUs(s.GPUs).Percent)
	}
}

// CPU returns the last count CPU percentages, oldest first.
// Returns fewer values if not enough history is available.
func (h *History) CPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.getLast(count)
}

// RAM returns the last count RAM percentages, oldest first.
func (h *History) RAM(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ram.getLast(count)
}

// GPU returns the last count aggregate GPU percentages, oldest first.
// Returns nil when no GPU sample has ever arrived.
func (h *History) GPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.gpu == nil {
		return nil
	}
	return h.gpu.getLast(count)
}

// Len returns the number of CPU samples recorded so far.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.count
}

// Clear drops all recorded samples.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cpu = newRingBuffer(h.size)
	h.ram = newRingBuffer(h.size)
	h.gpu = nil
}

// newRingBuffer creates a new ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is at
	// head-1; take count values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
