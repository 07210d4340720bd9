// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-store-locator/internal/config"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"github.com/MKhiriev/go-store-locator/internal/mock"
	"github.com/MKhiriev/go-store-locator/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// countingWorker records how many times Run was entered and waits for ctx.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersStartAndStop(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately with nothing to wait for
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	auth := mock.NewMockAuthService(gomock.NewController(t))
	services := &service.Services{AuthService: auth}

	enabled := NewWorkers(services, config.Workers{SessionSweepInterval: time.Minute}, logger.Nop())
	assert.Len(t, enabled.workers, 1)
	assert.IsType(t, &SessionSweepWorker{}, enabled.workers[0])

	disabled := NewWorkers(services, config.Workers{SessionSweepInterval: -1}, logger.Nop())
	assert.Empty(t, disabled.workers)
}
