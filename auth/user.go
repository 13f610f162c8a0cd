package auth

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAlreadyStarted       = errors.New("session already subscribed to auth state")
	ErrSessionClosed        = errors.New("session closed")
	ErrGoogleNotConfigured  = errors.New("google sign-in is not configured")
	ErrProviderNotAvailable = errors.New("identity provider is not configured")
)

// User is the signed-in identity. It is replaced wholesale on every auth state
// change and never mutated in place.
type User struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName,omitempty"`
	ProviderID   string    `json:"providerId,omitempty"`
	IDToken      string    `json:"idToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt,omitempty"`
}

// Name returns the best label for display
func (u *User) Name() string {
	if u == nil {
		return ""
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// IdentityProvider is the external identity SDK
type IdentityProvider interface {
	Signup(ctx context.Context, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	LoginWithGoogle(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error

	// OnAuthStateChanged delivers the current user right away and again after
	// every change (nil when signed out). The returned func unsubscribes and
	// closes the channel.
	OnAuthStateChanged() (<-chan *User, func())
}
