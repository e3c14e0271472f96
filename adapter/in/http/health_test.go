package http_test

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	handler "github.com/dvrs00/teste-de-software/adapter/in/http"
	"github.com/dvrs00/teste-de-software/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type fixedPool metrics.PoolReport

func (p fixedPool) DBPool() (metrics.PoolReport, bool) { return metrics.PoolReport(p), true }

func TestReady(t *testing.T) {
	tests := []struct {
		name string
		ping error
		want int
	}{
		{"store up", nil, fiber.StatusOK},
		{"store down", errors.New("connection refused"), fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			store := pingFunc(func(context.Context) error { return tt.ping })
			handler.NewHealthHandler(store, nil, nil).Register(app)

			resp, err := app.Test(httptest.NewRequest("GET", "/ready", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	handler.NewHealthHandler(nil, nil, nil).Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestReady_ReportsDBPool(t *testing.T) {
	app := fiber.New()
	store := pingFunc(func(context.Context) error { return nil })
	pool := fixedPool{Status: metrics.PoolQueueing, InUse: 3, MaxOpen: 25, NewWaits: 2}
	handler.NewHealthHandler(store, pool, nil).Register(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"db_pool":{"status":"queueing","in_use":3,"idle":0,"max_open":25,"new_waits":2}`)
}
