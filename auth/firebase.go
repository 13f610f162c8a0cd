package auth

import (
	"context"
	"log"
	"net/url"
	"sync"
	"time"

	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// IDTokenSource obtains a Google ID token, e.g. through an OAuth consent flow
type IDTokenSource interface {
	IDToken(ctx context.Context) (string, error)
}

// identityAPI is the subset of the Identity Toolkit used by Firebase
type identityAPI interface {
	signUp(ctx context.Context, email, password string) (*User, error)
	signIn(ctx context.Context, email, password string) (*User, error)
	signInWithIDP(ctx context.Context, postBody string) (*User, error)
}

// Firebase is an IdentityProvider backed by Firebase Authentication
// (Identity Toolkit v3). The signed-in user survives restarts through store.
type Firebase struct {
	api    identityAPI
	google IDTokenSource
	store  Store
	events *broadcaster

	mu      sync.Mutex
	current *User
}

// NewFirebase creates the provider and restores any persisted user.
// google may be nil when Google sign-in is not configured.
func NewFirebase(ctx context.Context, apiKey string, google IDTokenSource, store Store, opts ...option.ClientOption) (*Firebase, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return newFirebase(ctx, &toolkitAPI{svc: svc}, google, store), nil
}

func newFirebase(ctx context.Context, api identityAPI, google IDTokenSource, store Store) *Firebase {
	f := &Firebase{
		api:    api,
		google: google,
		store:  store,
		events: newBroadcaster(),
	}

	if store != nil {
		u, err := store.Load(ctx)
		if err != nil {
			log.Printf("⚠️ Could not restore session: %v", err)
		}
		f.current = u
	}
	return f
}

func (f *Firebase) Signup(ctx context.Context, email, password string) (*User, error) {
	u, err := f.api.signUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	f.setUser(ctx, u)
	return u, nil
}

func (f *Firebase) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := f.api.signIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	f.setUser(ctx, u)
	return u, nil
}

func (f *Firebase) LoginWithGoogle(ctx context.Context) (*User, error) {
	if f.google == nil {
		return nil, ErrGoogleNotConfigured
	}

	idToken, err := f.google.IDToken(ctx)
	if err != nil {
		return nil, err
	}

	postBody := url.Values{"id_token": {idToken}, "providerId": {"google.com"}}.Encode()
	u, err := f.api.signInWithIDP(ctx, postBody)
	if err != nil {
		return nil, err
	}
	f.setUser(ctx, u)
	return u, nil
}

func (f *Firebase) Logout(ctx context.Context) error {
	f.mu.Lock()
	f.current = nil
	f.events.publish(nil)
	f.mu.Unlock()

	if f.store != nil {
		return f.store.Clear(ctx)
	}
	return nil
}

func (f *Firebase) OnAuthStateChanged() (<-chan *User, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events.subscribe(f.current)
}

func (f *Firebase) setUser(ctx context.Context, u *User) {
	f.mu.Lock()
	f.current = u
	f.events.publish(u)
	f.mu.Unlock()

	if f.store != nil {
		if err := f.store.Save(ctx, u); err != nil {
			log.Printf("⚠️ Could not persist session: %v", err)
		}
	}
}

// toolkitAPI calls the Identity Toolkit relying-party endpoints
type toolkitAPI struct {
	svc *identitytoolkit.Service
}

func (t *toolkitAPI) signUp(ctx context.Context, email, password string) (*User, error) {
	resp, err := t.svc.Relyingparty.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &User{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		ProviderID:   "password",
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiry(resp.ExpiresIn),
	}, nil
}

func (t *toolkitAPI) signIn(ctx context.Context, email, password string) (*User, error) {
	resp, err := t.svc.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &User{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		ProviderID:   "password",
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiry(resp.ExpiresIn),
	}, nil
}

func (t *toolkitAPI) signInWithIDP(ctx context.Context, postBody string) (*User, error) {
	resp, err := t.svc.Relyingparty.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          postBody,
		RequestUri:        "http://localhost",
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &User{
		UID:          resp.LocalId,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		ProviderID:   resp.ProviderId,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiry(resp.ExpiresIn),
	}, nil
}

func expiry(seconds int64) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return time.Now().Add(time.Duration(seconds) * time.Second)
}
