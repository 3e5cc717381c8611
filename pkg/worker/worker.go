package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/limaJavier/classpicker/pkg/model"
)

var (
	ErrNotStarted = errors.New("worker not started")
	ErrStopped    = errors.New("worker stopped")
	ErrNilRequest = errors.New("nil request")
)

// Config configures the worker.
type Config struct {
	BufferSize int
	Logger     *zap.Logger
	Registerer prometheus.Registerer // Metrics are not exported when nil
}

type envelope struct {
	request Request
	reply   chan Response
}

// Worker serializes scheduling requests onto a single goroutine. A search that has started always
// runs to completion; a caller that stops waiting simply never reads its response.
type Worker struct {
	scheduler model.Scheduler
	logger    *zap.Logger
	metrics   *metrics

	envelopes chan envelope
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	started   bool
}

// New builds a worker answering requests with scheduler.
func New(scheduler model.Scheduler, cfg Config) (*Worker, error) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 16
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	metrics, err := newMetrics(cfg.Registerer)
	if err != nil {
		return nil, err
	}

	return &Worker{
		scheduler: scheduler,
		logger:    cfg.Logger,
		metrics:   metrics,
		envelopes: make(chan envelope, cfg.BufferSize),
	}, nil
}

// Start begins consuming requests. Safe to call once.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.ctx, w.cancel = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.loop()
	w.started = true
	w.logger.Sugar().Infow("worker started", "buffer", cap(w.envelopes))
}

// Stop cancels the worker and waits for the request in progress to finish.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.cancel()
	w.mu.Unlock()
	w.wg.Wait()
	w.logger.Sugar().Infow("worker stopped")
}

// Submit queues the request and waits for its response. Scheduling failures are reported in
// Response.Err; the returned error only covers delivery (not started, stopped, ctx done).
func (w *Worker) Submit(ctx context.Context, request Request) (Response, error) {
	w.mu.Lock()
	workerCtx := w.ctx
	started := w.started
	w.mu.Unlock()

	if request == nil {
		return Response{}, ErrNilRequest
	}
	if !started {
		return Response{}, ErrNotStarted
	}
	if err := workerCtx.Err(); err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrStopped, err)
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	reply := make(chan Response, 1)
	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-workerCtx.Done():
		return Response{}, fmt.Errorf("%w: %w", ErrStopped, workerCtx.Err())
	case w.envelopes <- envelope{request: request, reply: reply}:
	}

	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-workerCtx.Done():
		return Response{}, fmt.Errorf("%w: %w", ErrStopped, workerCtx.Err())
	case response := <-reply:
		return response, nil
	}
}

func (w *Worker) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case envelope := <-w.envelopes:
			envelope.reply <- w.handle(envelope.request)
		}
	}
}

func (w *Worker) handle(request Request) Response {
	start := time.Now()

	var response Response
	switch request := request.(type) {
	case TableRequest:
		response = handleTable(w.scheduler, request)
	case AutoScheduleRequest:
		response = handleAutoSchedule(w.scheduler, request)
	default:
		response = Response{ID: request.RequestID(), Err: fmt.Errorf("unsupported request %T", request)}
	}

	elapsed := time.Since(start)
	w.metrics.observe(request.Kind(), response, elapsed)

	if response.Err != nil {
		w.logger.Sugar().Warnw("request failed", "id", request.RequestID(), "kind", request.Kind(), "error", response.Err)
	} else {
		w.logger.Sugar().Debugw("request handled", "id", request.RequestID(), "kind", request.Kind(), "duration", elapsed)
	}
	return response
}
