package event

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Handler reacts to a single event delivery. A returned error is logged by
// the bus and dropped: reconciliation is best-effort and a failing handler
// must never surface to the publisher's caller. Handlers must be idempotent
// (set-add, unset-if-matching) so that retries could be added later without
// changing correctness.
type Handler func(ctx context.Context, e Event) error

// Bus is a process-wide publish/subscribe channel. It is constructed once at
// startup and injected into every service that publishes or subscribes —
// there is no package-level singleton.
//
// Delivery contract: handlers for a given event name run in registration
// order on a single background goroutine per Publish call. Completion is not
// awaited by the publisher, so the reactive side effect may finish after the
// originating request has already responded.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	wg       sync.WaitGroup
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers h for every future publish of the named event.
// Registration happens once, at service construction, for the lifetime of
// the process; there is no unsubscribe.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish dispatches e to all registered handlers and returns immediately.
// The handler context is detached from ctx's cancellation: the originating
// request finishing (or being canceled) must not abort reconciliation that
// is already in flight.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	hs := b.handlers[e.Name()]
	b.mu.RUnlock()

	if len(hs) == 0 {
		return
	}

	detached := context.WithoutCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for _, h := range hs {
			b.dispatch(detached, h, e)
		}
	}()
}

// dispatch runs one handler, containing both errors and panics so that a
// failing handler cannot crash the process or starve later handlers.
func (b *Bus) dispatch(ctx context.Context, h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("event", e.Name()).
				Interface("panic", r).
				Msg("event handler panicked")
		}
	}()
	if err := h(ctx, e); err != nil {
		log.Error().
			Str("event", e.Name()).
			Err(err).
			Msg("event handler failed")
	}
}

// Wait blocks until every in-flight delivery has completed. Used during
// graceful shutdown and by tests that need the reconciled state.
func (b *Bus) Wait() {
	b.wg.Wait()
}
