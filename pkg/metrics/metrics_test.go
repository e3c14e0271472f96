package metrics

import (
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_CountsOperationsAndRequests(t *testing.T) {
	m := New()

	m.IncOperation("create", "ok")
	m.IncOperation("create", "conflict")
	m.IncOperation("create", "conflict")
	m.ObserveRequest("POST", "/pessoas", 201, 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("create", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/pessoas", "201")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncOperation("create", "ok")
		m.ObserveRequest("GET", "/pessoas", 200, time.Millisecond)
		m.RegisterDB("postgres", nil)
	})
}

func TestAssessPool(t *testing.T) {
	tests := []struct {
		name     string
		stats    sql.DBStats
		newWaits int64
		want     string
	}{
		{"unlimited", sql.DBStats{InUse: 40}, 0, PoolOK},
		{"spare connections", sql.DBStats{InUse: 2, Idle: 3, MaxOpenConnections: 25}, 0, PoolOK},
		{"all checked out", sql.DBStats{InUse: 25, MaxOpenConnections: 25}, 0, PoolSaturated},
		{"waited since last report", sql.DBStats{InUse: 3, MaxOpenConnections: 25, WaitCount: 9}, 2, PoolQueueing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := assessPool(tt.stats, tt.newWaits)
			assert.Equal(t, tt.want, r.Status)
			assert.Equal(t, tt.stats.InUse, r.InUse)
			assert.Equal(t, tt.newWaits, r.NewWaits)
		})
	}
}

func TestDBPool_Unregistered(t *testing.T) {
	_, ok := New().DBPool()
	assert.False(t, ok)

	var m *Metrics
	_, ok = m.DBPool()
	assert.False(t, ok)
}
