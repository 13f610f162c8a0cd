package auth

import (
	"context"
	"sync"
)

// Session owns the current user for one application shell. It holds exactly
// one subscription to the provider between Start and Close.
type Session struct {
	provider IdentityProvider
	events   *broadcaster

	mu          sync.RWMutex
	user        *User
	unsubscribe func()
	done        chan struct{}
	closed      bool
}

// NewSession creates a session over provider. Call Start to begin tracking.
func NewSession(provider IdentityProvider) *Session {
	return &Session{
		provider: provider,
		events:   newBroadcaster(),
	}
}

// Start subscribes to the provider's auth state stream. It may be called once.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.unsubscribe != nil {
		return ErrAlreadyStarted
	}

	ch, unsubscribe := s.provider.OnAuthStateChanged()
	s.unsubscribe = unsubscribe
	s.done = make(chan struct{})
	go s.watch(ch, s.done)
	return nil
}

func (s *Session) watch(ch <-chan *User, done chan struct{}) {
	defer close(done)
	for u := range ch {
		s.mu.Lock()
		s.user = u
		s.mu.Unlock()
		s.events.publish(u)
	}
}

// Close releases the provider subscription and waits for the watcher to exit.
// Subscribers' channels are closed. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubscribe, done := s.unsubscribe, s.done
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
		<-done
	}
	s.events.closeAll()
}

// CurrentUser returns the signed-in user, or nil
func (s *Session) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Subscribe returns a channel receiving the current user now and after every
// change, plus a func to stop receiving. After Close the channel is already closed.
func (s *Session) Subscribe() (<-chan *User, func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		ch := make(chan *User)
		close(ch)
		return ch, func() {}
	}
	return s.events.subscribe(s.user)
}

// Signup creates an email/password account through the provider
func (s *Session) Signup(ctx context.Context, email, password string) (*User, error) {
	return s.provider.Signup(ctx, email, password)
}

// Login signs in with email/password through the provider
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	return s.provider.Login(ctx, email, password)
}

// LoginWithGoogle runs the provider's Google sign-in
func (s *Session) LoginWithGoogle(ctx context.Context) (*User, error) {
	return s.provider.LoginWithGoogle(ctx)
}

// Logout signs the current user out through the provider
func (s *Session) Logout(ctx context.Context) error {
	return s.provider.Logout(ctx)
}
