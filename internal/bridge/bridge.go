// Package bridge hands work from a synchronous callback to a long-lived
// worker goroutine and blocks the caller until the result is back.
//
// The readline editing surface invokes completion callbacks synchronously and
// cannot suspend, but fetching remote completer candidates needs a network
// round trip. The bridge runs that round trip on its own goroutine; the
// callback blocks on a one-shot reply channel, never sharing an execution
// context with the worker, so there is no self-join deadlock and the editing
// surface's own event handling stays untouched.
package bridge

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultTimeout bounds one bridged call. A slow completer round trip blocks
// keystroke handling until it returns or times out; the timeout keeps that
// window finite.
const DefaultTimeout = 3 * time.Second

// ErrClosed is returned by Do after Close.
var ErrClosed = errors.New("bridge closed")

type outcome struct {
	value string
	err   error
}

type request struct {
	fn    func(context.Context) (string, error)
	reply chan outcome
}

// Bridge owns a worker goroutine executing bridged calls one at a time.
type Bridge struct {
	requests  chan request
	quit      chan struct{}
	timeout   time.Duration
	closeOnce sync.Once
}

// New creates a started bridge. A non-positive timeout falls back to
// DefaultTimeout.
func New(timeout time.Duration) *Bridge {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	b := &Bridge{
		requests: make(chan request),
		quit:     make(chan struct{}),
		timeout:  timeout,
	}
	go b.run()
	return b
}

func (b *Bridge) run() {
	for {
		select {
		case req := <-b.requests:
			ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
			value, err := req.fn(ctx)
			cancel()
			req.reply <- outcome{value: value, err: err}
		case <-b.quit:
			return
		}
	}
}

// Do executes fn on the worker goroutine and blocks the caller until it
// finishes. The context handed to fn carries the bridge timeout.
func (b *Bridge) Do(fn func(context.Context) (string, error)) (string, error) {
	req := request{fn: fn, reply: make(chan outcome, 1)}
	select {
	case b.requests <- req:
	case <-b.quit:
		return "", ErrClosed
	}
	res := <-req.reply
	return res.value, res.err
}

// Close stops the worker. Calls in flight complete; later Do calls fail with
// ErrClosed.
func (b *Bridge) Close() {
	b.closeOnce.Do(func() { close(b.quit) })
}
