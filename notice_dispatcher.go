package goAuthClient

import (
	"context"
	"sync"
	"sync/atomic"
)

type noticeDispatcher struct {
	cfg       NoticeConfig
	sink      NoticeSink
	ch        chan Notice
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

func newNoticeDispatcher(cfg NoticeConfig, sink NoticeSink) *noticeDispatcher {
	if !cfg.Enabled {
		return nil
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1
	}
	if sink == nil {
		sink = NoOpSink{}
	}

	d := &noticeDispatcher{
		cfg:  cfg,
		sink: sink,
		ch:   make(chan Notice, cfg.BufferSize),
		done: make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *noticeDispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case notice := <-d.ch:
			d.sink.Emit(context.Background(), notice)
		case <-d.done:
			for {
				select {
				case notice := <-d.ch:
					d.sink.Emit(context.Background(), notice)
				default:
					return
				}
			}
		}
	}
}

// Emit enqueues one notice. With DropIfFull set the call never blocks; a
// full buffer increments the drop counter instead.
func (d *noticeDispatcher) Emit(ctx context.Context, notice Notice) {
	if d == nil || d.closed.Load() {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if d.cfg.DropIfFull {
		select {
		case d.ch <- notice:
		case <-d.done:
		default:
			d.dropped.Add(1)
		}
		return
	}

	select {
	case d.ch <- notice:
	case <-ctx.Done():
	case <-d.done:
	}
}

// Close drains buffered notices into the sink and stops the worker.
func (d *noticeDispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		close(d.done)
		d.wg.Wait()
	})
}

func (d *noticeDispatcher) Dropped() uint64 {
	if d == nil {
		return 0
	}
	return d.dropped.Load()
}
