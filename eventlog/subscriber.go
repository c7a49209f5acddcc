package eventlog

import "sync"

const subscriberBuffer = 64

// GenericSubscriberImpl fans published values out to named subscribers. A subscriber that
// falls more than subscriberBuffer values behind misses values; consumers that need every
// event read the log from their own cursor and use the subscription as a wake-up.
type GenericSubscriberImpl[T any] struct {
	// map of subscribers with names
	subs map[chan T]string
	mu   sync.RWMutex
}

func NewGenericSubscriberImpl[T any]() *GenericSubscriberImpl[T] {
	return &GenericSubscriberImpl[T]{
		subs: make(map[chan T]string),
	}
}

func (g *GenericSubscriberImpl[T]) Subscribe(subscriberName string) <-chan T {
	ch := make(chan T, subscriberBuffer)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subs[ch] = subscriberName
	return ch
}

func (g *GenericSubscriberImpl[T]) Publish(data T) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for ch := range g.subs {
		select {
		case ch <- data:
		default:
		}
	}
}
