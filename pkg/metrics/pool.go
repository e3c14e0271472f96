package metrics

import (
	"database/sql"
	"sync"
)

// Pool states reported on /ready.
const (
	PoolOK        = "ok"
	PoolSaturated = "saturated"
	PoolQueueing  = "queueing"
)

// PoolReport is the readiness view of the connection pool registered with
// RegisterDB. The cumulative counters stay on /metrics; NewWaits counts
// waits since the previous report.
type PoolReport struct {
	Status   string `json:"status"`
	InUse    int    `json:"in_use"`
	Idle     int    `json:"idle"`
	MaxOpen  int    `json:"max_open"`
	NewWaits int64  `json:"new_waits"`
}

type poolWatch struct {
	db *sql.DB

	mu        sync.Mutex
	lastWaits int64
}

func (w *poolWatch) report() PoolReport {
	stats := w.db.Stats()

	w.mu.Lock()
	newWaits := stats.WaitCount - w.lastWaits
	w.lastWaits = stats.WaitCount
	w.mu.Unlock()

	return assessPool(stats, newWaits)
}

// assessPool flags a pool whose connections are all checked out, or one
// where callers had to wait for a connection since the last look. Every
// pessoa request holds at most one connection at a time, so any wait means
// the pool is smaller than the concurrent request load.
func assessPool(stats sql.DBStats, newWaits int64) PoolReport {
	r := PoolReport{
		Status:   PoolOK,
		InUse:    stats.InUse,
		Idle:     stats.Idle,
		MaxOpen:  stats.MaxOpenConnections,
		NewWaits: newWaits,
	}
	switch {
	case newWaits > 0:
		r.Status = PoolQueueing
	case stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections:
		r.Status = PoolSaturated
	}
	return r
}

// DBPool reports on the pool passed to RegisterDB. ok is false when no pool
// was registered.
func (m *Metrics) DBPool() (report PoolReport, ok bool) {
	if m == nil || m.pool == nil {
		return PoolReport{}, false
	}
	return m.pool.report(), true
}
