package editor

import "sync"

// KeyboardEvent reports the on-screen keyboard appearing or going away
type KeyboardEvent struct {
	Visible bool
	Height  float32
}

// KeyboardNotifier fans keyboard events out to subscribers. Subscriptions are
// explicit: whoever subscribes keeps the cancel func and calls it on teardown.
type KeyboardNotifier struct {
	mu       sync.Mutex
	next     int
	handlers map[int]func(KeyboardEvent)
}

// NewKeyboardNotifier creates a notifier with no subscribers
func NewKeyboardNotifier() *KeyboardNotifier {
	return &KeyboardNotifier{handlers: make(map[int]func(KeyboardEvent))}
}

// Subscribe registers handler and returns the func that removes it. Calling
// the returned func more than once is harmless.
func (n *KeyboardNotifier) Subscribe(handler func(KeyboardEvent)) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	n.handlers[id] = handler

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.handlers, id)
	}
}

// Publish delivers ev to every current subscriber
func (n *KeyboardNotifier) Publish(ev KeyboardEvent) {
	n.mu.Lock()
	handlers := make([]func(KeyboardEvent), 0, len(n.handlers))
	for _, h := range n.handlers {
		handlers = append(handlers, h)
	}
	n.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Subscribers returns the number of live subscriptions
func (n *KeyboardNotifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.handlers)
}
