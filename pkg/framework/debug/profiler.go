package debug

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Profiler collects timing statistics for named sections of a render.
type Profiler struct {
	mu           sync.RWMutex
	measurements map[string]*Measurement
	enabled      atomic.Bool
	maxSamples   int
}

// Measurement holds timing statistics for a profiled section.
type Measurement struct {
	name        string
	count       uint64
	totalTime   time.Duration
	minTime     time.Duration
	maxTime     time.Duration
	samples     []time.Duration
	sampleIndex int
}

// NewProfiler creates a profiler keeping at most maxSamples recent samples
// per section.
func NewProfiler(maxSamples int) *Profiler {
	if maxSamples <= 0 {
		maxSamples = 1
	}
	p := &Profiler{
		measurements: make(map[string]*Measurement),
		maxSamples:   maxSamples,
	}
	p.enabled.Store(true)
	return p
}

// SetEnabled enables or disables profiling.
func (p *Profiler) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// Start begins timing a named section. Call the returned func to stop.
func (p *Profiler) Start(name string) func() {
	if p == nil || !p.enabled.Load() {
		return func() {}
	}

	start := time.Now()

	return func() {
		p.record(name, time.Since(start))
	}
}

func (p *Profiler) record(name string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, exists := p.measurements[name]
	if !exists {
		m = &Measurement{
			name:    name,
			minTime: elapsed,
			maxTime: elapsed,
			samples: make([]time.Duration, p.maxSamples),
		}
		p.measurements[name] = m
	}

	m.count++
	m.totalTime += elapsed

	if elapsed < m.minTime {
		m.minTime = elapsed
	}
	if elapsed > m.maxTime {
		m.maxTime = elapsed
	}

	m.samples[m.sampleIndex] = elapsed
	m.sampleIndex = (m.sampleIndex + 1) % p.maxSamples
}

// GetMeasurement returns a copy of the measurement for a named section.
func (p *Profiler) GetMeasurement(name string) (*Measurement, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m, exists := p.measurements[name]
	if !exists {
		return nil, false
	}

	c := *m
	c.samples = append([]time.Duration(nil), m.samples...)
	return &c, true
}

func (p *Profiler) names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.measurements))
	for name := range p.measurements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Log writes one debug line per section to logger, sections sorted by name.
func (p *Profiler) Log(logger hclog.Logger) {
	for _, name := range p.names() {
		m, _ := p.GetMeasurement(name)
		logger.Debug("timing", "section", name,
			"count", m.Count(),
			"total", m.Total(),
			"avg", m.Average(),
			"p50", m.Percentile(50),
			"p95", m.Percentile(95),
			"min", m.minTime,
			"max", m.maxTime)
	}
}

// Count returns the number of recorded samples.
func (m *Measurement) Count() uint64 {
	return m.count
}

// Total returns the accumulated time.
func (m *Measurement) Total() time.Duration {
	return m.totalTime
}

// Average returns the average time for this measurement.
func (m *Measurement) Average() time.Duration {
	if m.count == 0 {
		return 0
	}
	return m.totalTime / time.Duration(m.count)
}

// Percentile returns the p-th percentile of the retained samples.
func (m *Measurement) Percentile(p float64) time.Duration {
	if m.count == 0 {
		return 0
	}

	n := len(m.samples)
	if uint64(n) > m.count {
		n = int(m.count)
	}
	valid := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		valid = append(valid, m.samples[i])
	}
	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })

	index := int(float64(len(valid)-1) * p / 100.0)
	return valid[index]
}
