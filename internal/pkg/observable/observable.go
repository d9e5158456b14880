// Package observable holds a value that is replaced wholesale and announces
// every replacement to its subscribers.
package observable

import "sync"

type Listener[T any] func(T)

// Value notifies listeners in commit order: a replacement is never announced
// after a later one. Listeners run on the writer's goroutine and must not call
// Set or Update on the same Value.
type Value[T any] struct {
	// held from commit until every listener has returned
	notifyMu sync.Mutex

	mu        sync.RWMutex
	current   T
	closed    bool
	nextID    int
	listeners map[int]Listener[T]
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{
		current:   initial,
		listeners: make(map[int]Listener[T]),
	}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set publishes next. It reports false, changing nothing, once the Value is closed.
func (v *Value[T]) Set(next T) bool {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return false
	}
	v.current = next
	listeners := v.snapshotListeners()
	v.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return true
}

// Update applies fn to the current value under the lock. When fn fails the
// value is left as is and nobody is notified.
func (v *Value[T]) Update(fn func(T) (T, error)) (T, error) {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	if v.closed {
		cur := v.current
		v.mu.Unlock()
		return cur, ErrClosed
	}
	next, err := fn(v.current)
	if err != nil {
		cur := v.current
		v.mu.Unlock()
		return cur, err
	}
	v.current = next
	listeners := v.snapshotListeners()
	v.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next, nil
}

// Subscribe registers l and returns a func that removes it.
func (v *Value[T]) Subscribe(l Listener[T]) (cancel func()) {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	if !v.closed {
		v.listeners[id] = l
	}
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.listeners, id)
			v.mu.Unlock()
		})
	}
}

// Close drops every listener and freezes the value. Get keeps working. Once
// Close returns no listener is running, so it must not be called from one.
func (v *Value[T]) Close() {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.listeners = make(map[int]Listener[T])
}

func (v *Value[T]) snapshotListeners() []Listener[T] {
	out := make([]Listener[T], 0, len(v.listeners))
	for id := 0; id < v.nextID; id++ {
		if l, ok := v.listeners[id]; ok {
			out = append(out, l)
		}
	}
	return out
}
