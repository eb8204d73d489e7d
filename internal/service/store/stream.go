package store

import "sync"

// Stream broadcasts snapshots of a collection to any number of subscribers.
// New subscribers immediately receive the most recent snapshot, then every
// subsequent one. A subscriber that falls behind is conflated to the latest
// snapshot rather than blocking the publisher.
type Stream[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]chan T
	nextID  int
}

// NewStream creates a stream holding the given initial snapshot.
func NewStream[T any](initial T) *Stream[T] {
	return &Stream[T]{current: initial, subs: make(map[int]chan T)}
}

// Value returns the current snapshot without subscribing.
func (s *Stream[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Publish replaces the current snapshot and delivers it to all subscribers.
func (s *Stream[T]) Publish(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = value
	for _, ch := range s.subs {
		// Drop the undelivered snapshot, if any, so the send below never blocks.
		select {
		case <-ch:
		default:
		}
		ch <- value
	}
}

// Subscribe registers a new subscriber. The returned channel carries the
// current snapshot immediately, then every published one. The cancel function
// detaches the subscriber and closes the channel; it is safe to call twice.
func (s *Stream[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan T, 1)
	ch <- s.current
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
