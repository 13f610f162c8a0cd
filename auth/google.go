package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"factguard/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleFlow obtains a Google ID token with the OAuth loopback redirect flow:
// a short-lived local server receives the authorization code.
type GoogleFlow struct {
	oauth   oauth2.Config
	addr    string
	prompt  func(authURL string)
	timeout time.Duration
}

// NewGoogleFlow creates a flow listening on 127.0.0.1:port. prompt is called with
// the consent URL the user must open.
func NewGoogleFlow(clientID, clientSecret, port string, prompt func(authURL string)) *GoogleFlow {
	return &GoogleFlow{
		oauth: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		addr:    net.JoinHostPort("127.0.0.1", port),
		prompt:  prompt,
		timeout: config.OAuthTimeout,
	}
}

type callbackResult struct {
	code string
	err  error
}

// IDToken runs one consent round trip and returns the id_token from the token response
func (g *GoogleFlow) IDToken(ctx context.Context) (string, error) {
	ln, err := net.Listen("tcp", g.addr)
	if err != nil {
		return "", fmt.Errorf("failed to start callback listener: %w", err)
	}

	cfg := g.oauth
	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", ln.Addr().String())
	state := uuid.NewString()
	results := make(chan callbackResult, 1)

	srv := &http.Server{Handler: g.callbackRouter(state, results)}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ OAuth callback server error: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if g.prompt != nil {
		g.prompt(cfg.AuthCodeURL(state, oauth2.AccessTypeOnline))
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var res callbackResult
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("google sign-in not completed: %w", ctx.Err())
	case res = <-results:
	}
	if res.err != nil {
		return "", res.err
	}

	tok, err := cfg.Exchange(ctx, res.code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idToken, _ := tok.Extra("id_token").(string)
	if idToken == "" {
		return "", errors.New("google token response carried no id_token")
	}
	return idToken, nil
}

func (g *GoogleFlow) callbackRouter(state string, results chan<- callbackResult) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/callback", func(c *gin.Context) {
		if c.Query("state") != state {
			c.String(http.StatusBadRequest, "Invalid sign-in state.")
			return
		}

		res := callbackResult{code: c.Query("code")}
		if reason := c.Query("error"); reason != "" {
			res = callbackResult{err: fmt.Errorf("google sign-in failed: %s", reason)}
		} else if res.code == "" {
			res = callbackResult{err: errors.New("google sign-in returned no code")}
		}

		select {
		case results <- res:
		default:
		}

		if res.err != nil {
			c.String(http.StatusOK, "Sign-in was not completed. You can close this window.")
			return
		}
		c.String(http.StatusOK, "Signed in. You can close this window and return to FactGuard.")
	})

	return r
}
