// Package performance provides allocation helpers for the hot loops of the
// transformers.
package performance

import (
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"
)

// DensePool recycles the backing arrays of scratch matrices so that
// repeated transforms do not allocate a window buffer per worker per call.
type DensePool struct {
	pool     sync.Pool
	inUse    atomic.Int64
	created  atomic.Int64
	recycled atomic.Int64
	peak     atomic.Int64
}

// PoolStats tracks pool usage.
type PoolStats struct {
	TotalAllocated   int64
	TotalRecycled    int64
	CurrentInUse     int64
	PeakUsage        int64
	AverageReuseRate float64
}

// NewDensePool creates an empty pool.
func NewDensePool() *DensePool {
	p := &DensePool{}
	p.pool.New = func() any {
		p.created.Add(1)
		return new([]float64)
	}
	return p
}

// Get returns a zeroed rows × cols matrix. rows and cols must be positive.
func (p *DensePool) Get(rows, cols int) *mat.Dense {
	buf := p.pool.Get().(*[]float64)
	n := rows * cols
	if cap(*buf) < n {
		*buf = make([]float64, n)
	} else {
		*buf = (*buf)[:n]
		clear(*buf)
	}

	current := p.inUse.Add(1)
	for {
		peak := p.peak.Load()
		if current <= peak || p.peak.CompareAndSwap(peak, current) {
			break
		}
	}
	return mat.NewDense(rows, cols, *buf)
}

// Put returns the storage of m, which must come from Get and must not be
// used afterwards.
func (p *DensePool) Put(m *mat.Dense) {
	if m == nil {
		return
	}
	data := m.RawMatrix().Data
	p.inUse.Add(-1)
	p.recycled.Add(1)
	p.pool.Put(&data)
}

// GetStats returns current pool statistics.
func (p *DensePool) GetStats() PoolStats {
	total := p.created.Load()
	recycled := p.recycled.Load()

	reuseRate := float64(0)
	if total > 0 {
		reuseRate = float64(recycled) / float64(total)
	}
	return PoolStats{
		TotalAllocated:   total,
		TotalRecycled:    recycled,
		CurrentInUse:     p.inUse.Load(),
		PeakUsage:        p.peak.Load(),
		AverageReuseRate: reuseRate,
	}
}
