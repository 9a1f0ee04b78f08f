package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cryptobuzz-srv/pkg/log"
)

var ErrInvalidInterval = errors.New("scheduler: interval must be positive")

// Task is one tick of work.
type Task func(ctx context.Context) error

// Job runs a Task on a fixed interval. Ticks never overlap: a tick that
// overruns the interval makes the ticker drop the missed ticks.
type Job interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type Config struct {
	Name     string
	Interval time.Duration
	// RunOnStart runs one tick immediately instead of waiting a full interval.
	RunOnStart bool
	// Timeout bounds a single tick. Zero means the interval.
	Timeout time.Duration
}

type job struct {
	l    log.Logger
	cfg  Config
	task Task

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func New(l log.Logger, cfg Config, task Task) (Job, error) {
	if cfg.Interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = cfg.Interval
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &job{l: l, cfg: cfg, task: task, ctx: ctx, cancel: cancel}, nil
}

func (j *job) Start() error {
	j.wg.Add(1)
	go j.loop()
	j.l.Infof(j.ctx, "pkg.scheduler.Start: %s every %s", j.cfg.Name, j.cfg.Interval)
	return nil
}

func (j *job) loop() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.cfg.Interval)
	defer ticker.Stop()

	if j.cfg.RunOnStart {
		j.runOnce()
	}

	for {
		select {
		case <-j.ctx.Done():
			return
		case <-ticker.C:
			j.runOnce()
		}
	}
}

func (j *job) runOnce() {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(j.ctx), j.cfg.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			j.l.Errorf(ctx, "pkg.scheduler.runOnce: %s panicked: %v", j.cfg.Name, r)
		}
	}()

	if err := j.task(ctx); err != nil {
		j.l.Errorf(ctx, "pkg.scheduler.runOnce: %s: %v", j.cfg.Name, err)
	}
}

// Shutdown stops scheduling new ticks and waits for the in-flight tick, bounded by ctx.
func (j *job) Shutdown(ctx context.Context) error {
	j.once.Do(j.cancel)

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		j.l.Infof(ctx, "pkg.scheduler.Shutdown: %s stopped", j.cfg.Name)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pkg.scheduler.Shutdown: %s: %w", j.cfg.Name, ctx.Err())
	}
}
