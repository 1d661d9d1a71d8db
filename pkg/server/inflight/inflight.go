package inflight

import (
	"context"
	"sync"
)

// Tracker lets the newest call for a key win. Starting a call cancels the context of
// the call it replaces, and the replaced call can tell it was superseded.
type Tracker struct {
	mu         sync.Mutex
	generation uint64
	calls      map[string]*Call
}

type Call struct {
	tracker    *Tracker
	key        string
	generation uint64
	cancel     context.CancelFunc
	superseded bool
}

func NewTracker() *Tracker {
	return &Tracker{calls: make(map[string]*Call)}
}

// Begin registers a call for kind and token. An empty token groups every call of the kind.
func (t *Tracker) Begin(ctx context.Context, kind, token string) (context.Context, *Call) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	key := kind + "\x00" + token

	if previous, found := t.calls[key]; found {
		previous.superseded = true
		previous.cancel()
	}

	call := &Call{tracker: t, key: key, generation: t.generation, cancel: cancel}
	t.calls[key] = call

	return ctx, call
}

// Superseded reports whether a newer call with the same key has started since this one,
// even if that newer call has already finished.
func (c *Call) Superseded() bool {
	c.tracker.mu.Lock()
	defer c.tracker.mu.Unlock()

	return c.superseded
}

// Done releases the call's context and forgets it unless a newer call took its place.
func (c *Call) Done() {
	c.cancel()

	c.tracker.mu.Lock()
	defer c.tracker.mu.Unlock()

	if current, found := c.tracker.calls[c.key]; found && current.generation == c.generation {
		delete(c.tracker.calls, c.key)
	}
}

// Len is the number of calls still running.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.calls)
}
