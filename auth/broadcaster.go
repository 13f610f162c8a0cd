package auth

import "sync"

// broadcaster fans auth state out to subscriber channels. Each channel holds at
// most one pending state; a newer state replaces an unread older one so slow
// readers always end on the latest value.
type broadcaster struct {
	mu          sync.Mutex
	subscribers map[chan *User]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subscribers: make(map[chan *User]struct{})}
}

// subscribe registers a channel and primes it with initial
func (b *broadcaster) subscribe(initial *User) (<-chan *User, func()) {
	ch := make(chan *User, 1)
	ch <- initial

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subscribers[ch]; ok {
				delete(b.subscribers, ch)
				close(ch)
			}
		})
	}
}

func (b *broadcaster) publish(u *User) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- u:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- u
		}
	}
}

// closeAll closes and removes every subscriber channel
func (b *broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		delete(b.subscribers, ch)
		close(ch)
	}
}
