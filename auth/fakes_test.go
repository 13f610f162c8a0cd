package auth

import (
	"context"
	"sync"
)

// fakeProvider is an in-memory IdentityProvider recording subscriptions
type fakeProvider struct {
	events *broadcaster

	mu            sync.Mutex
	current       *User
	subscriptions int
	active        int
	err           error
}

func newFakeProvider(initial *User) *fakeProvider {
	return &fakeProvider{events: newBroadcaster(), current: initial}
}

func (p *fakeProvider) set(u *User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = u
	p.events.publish(u)
}

func (p *fakeProvider) Signup(ctx context.Context, email, password string) (*User, error) {
	if p.err != nil {
		return nil, p.err
	}
	u := &User{UID: "new", Email: email}
	p.set(u)
	return u, nil
}

func (p *fakeProvider) Login(ctx context.Context, email, password string) (*User, error) {
	if p.err != nil {
		return nil, p.err
	}
	u := &User{UID: "existing", Email: email}
	p.set(u)
	return u, nil
}

func (p *fakeProvider) LoginWithGoogle(ctx context.Context) (*User, error) {
	if p.err != nil {
		return nil, p.err
	}
	u := &User{UID: "google", Email: "g@example.com", ProviderID: "google.com"}
	p.set(u)
	return u, nil
}

func (p *fakeProvider) Logout(ctx context.Context) error {
	if p.err != nil {
		return p.err
	}
	p.set(nil)
	return nil
}

func (p *fakeProvider) OnAuthStateChanged() (<-chan *User, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscriptions++
	p.active++

	ch, unsubscribe := p.events.subscribe(p.current)
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			p.active--
			p.mu.Unlock()
			unsubscribe()
		})
	}
}

func (p *fakeProvider) counts() (subscriptions, active int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.subscriptions, p.active
}

// memStore is an in-memory Store
type memStore struct {
	mu      sync.Mutex
	user    *User
	saves   int
	clears  int
	loadErr error
	saveErr error
}

func (m *memStore) Load(ctx context.Context) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, m.loadErr
}

func (m *memStore) Save(ctx context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.user = u
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	m.user = nil
	return nil
}
