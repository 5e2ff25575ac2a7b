package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type circuitBreaker struct {
	mu    sync.Mutex
	state Status

	// window holds the outcome of the last len(window) calls, true means failed.
	window []bool
	pos    int

	// failureRatio of the window that opens the breaker.
	failureRatio float64
	// openTimeout before an open breaker lets a probe through.
	openTimeout time.Duration
	openedAt    time.Time

	// recoveryRequests successful probes in a row close a half-open breaker.
	recoveryRequests int
	successCount     int

	// isFailure decides which errors count against the window.
	isFailure func(error) bool
}

type Option func(cb *circuitBreaker)

// WithFailurePredicate makes only errors matching fn count as failures.
// Errors such as a 404 from a healthy upstream should not open the breaker.
func WithFailurePredicate(fn func(error) bool) Option {
	return func(cb *circuitBreaker) {
		cb.isFailure = fn
	}
}

func New(windowSize int, openTimeout time.Duration, failureRatio float64, recoveryRequests int, opts ...Option) CircuitBreaker {
	if windowSize <= 0 {
		windowSize = 1
	}
	cb := &circuitBreaker{
		state:            Closed,
		window:           make([]bool, windowSize),
		failureRatio:     failureRatio,
		openTimeout:      openTimeout,
		recoveryRequests: recoveryRequests,
		isFailure:        func(err error) bool { return err != nil },
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(service func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if time.Since(cb.openedAt) <= cb.openTimeout {
			cb.mu.Unlock()
			return ErrOpenCB
		}
		cb.state = HalfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := service()
	failed := err != nil && cb.isFailure(err)

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.window)

	if cb.state == HalfOpen {
		if failed {
			cb.trip()
			return err
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
		return err
	}

	fails := 0
	for _, f := range cb.window {
		if f {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.window)) >= cb.failureRatio {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.openedAt = time.Now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = Closed
}
