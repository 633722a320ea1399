package util

import "sync"

// Broadcaster fans values out to subscribers. Each subscriber holds at most
// one pending value and a slow subscriber only ever sees the newest one, so
// Publish never blocks.
type Broadcaster[T any] struct {
	mu        sync.Mutex
	subs      map[int]chan T
	nextID    int
	replay    bool
	latest    T
	hasLatest bool
	closed    bool
}

// NewBroadcaster creates a broadcaster. With replay set, new subscribers
// first receive the most recently published value.
func NewBroadcaster[T any](replay bool) *Broadcaster[T] {
	return &Broadcaster[T]{
		subs:   make(map[int]chan T),
		replay: replay,
	}
}

// NewBroadcasterWithInitial creates a replaying broadcaster seeded with initial.
func NewBroadcasterWithInitial[T any](initial T) *Broadcaster[T] {
	b := NewBroadcaster[T](true)
	b.latest = initial
	b.hasLatest = true

	return b
}

// Publish delivers v to every subscriber.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.latest = v
	b.hasLatest = true

	for _, ch := range b.subs {
		deliverLatest(ch, v)
	}
}

// Subscribe registers a subscriber. The returned func unsubscribes and closes
// the channel; calling it more than once is safe.
func (b *Broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan T, 1)
	if b.closed {
		close(ch)

		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	if b.replay && b.hasLatest {
		ch <- b.latest
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}

	return ch, cancel
}

// Latest returns the most recently published value.
func (b *Broadcaster[T]) Latest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.latest, b.hasLatest
}

// Close closes every subscriber channel. Later publishes are dropped.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func deliverLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}

	// drop the stale pending value
	select {
	case <-ch:
	default:
	}

	select {
	case ch <- v:
	default:
	}
}
