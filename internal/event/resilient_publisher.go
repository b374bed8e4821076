package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CoffeeGarden_Go/internal/logger"
)

type retryEntry struct {
	event    Event
	attempts int
	lastErr  error
}

// ResilientPublisher wraps a Bus with background retries and a dead-letter file.
//
// PublishWithRetry never blocks the caller on a failing bus: the first attempt
// runs inline and failures are handed to a single retry worker that backs off
// exponentially. Events that exhaust their retries, or that arrive while the
// queue is full, are appended to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown     chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// NewResilientPublisher creates a publisher and starts its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry publishes an event, queuing it for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	log.Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)

	entry := retryEntry{event: evt, attempts: 1, lastErr: err}

	select {
	case <-p.shutdown:
		log.Warn(LogMsgEventDroppedShutdown, "event_type", evt.Type)
		p.writeDeadLetter(entry)
		return
	default:
	}

	select {
	case p.retryQueue <- entry:
	default:
		log.Error(LogMsgRetryQueueFull, "event_type", evt.Type)
		p.writeDeadLetter(entry)
	}
}

// Publish satisfies Bus so the publisher can stand in for the bus it wraps
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case entry := <-p.retryQueue:
			p.retry(entry, p.shutdown)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

// retry republishes one entry until it succeeds, exhausts its attempts, or
// stop is closed. A closed stop skips the remaining backoff waits.
func (p *ResilientPublisher) retry(entry retryEntry, stop <-chan struct{}) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	for retryNum := 1; retryNum <= p.maxRetries; retryNum++ {
		delay := CalculateRetryDelay(p.retryDelay, retryNum)
		if stop != nil {
			select {
			case <-time.After(delay):
			case <-stop:
				stop = nil
			}
		}

		entry.attempts++
		err := p.bus.Publish(ctx, entry.event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempts", entry.attempts)
			return
		}
		entry.lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempts, "error", err)
	}

	log.Error(LogMsgEventRetryExhausted, "event_type", entry.event.Type, "attempts", entry.attempts)
	p.writeDeadLetter(entry)
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			p.retry(entry, nil)
			drained++
		default:
			if drained > 0 {
				logger.FromContext(context.Background()).Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if err := p.deadLetter.Write(entry.event, entry.attempts, entry.lastErr); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgDeadLetterWriteFailed,
			"event_type", entry.event.Type, "error", err)
	}
}

// Shutdown stops the retry worker after draining the queue and closes the
// dead-letter file. It returns the context error if draining outlives ctx.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.shutdownOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.FromContext(ctx).Error(LogMsgShutdownTimeout)
		return fmt.Errorf(ErrMsgShutdownTimeout, ctx.Err())
	}
}
