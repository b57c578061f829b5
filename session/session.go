// Package session is the mock identity collaborator for the demo bank.
// It issues and validates opaque session tokens for the single demo
// user. The data store never consults it; tenancy comes from the seed
// data, and this provider only backs the sign-in/sign-out surface.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidCredentials is returned when the email/password pair does
// not match the demo user.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken is returned for unknown, expired or signed-out tokens.
var ErrInvalidToken = errors.New("invalid or expired session token")

// Token is an issued session token.
type Token struct {
	Value     string
	UserID    string
	ExpiresAt time.Time
}

// Provider simulates an identity service with a single demo user.
type Provider struct {
	email    string
	password string
	userID   string
	ttl      time.Duration
	tokens   map[string]Token
	mutex    sync.Mutex
}

// NewProvider initializes the provider with the demo credentials.
func NewProvider() *Provider {
	return &Provider{
		email:    "alex.morgan@example.com",
		password: "demo1234",
		userID:   "user-alex-morgan",
		ttl:      time.Hour,
		tokens:   make(map[string]Token),
	}
}

// SignIn checks the demo credentials and issues a fresh token.
func (p *Provider) SignIn(email, password string) (Token, error) {
	if email != p.email || password != p.password {
		return Token{}, ErrInvalidCredentials
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	token := Token{
		Value:     fmt.Sprintf("session-%d", time.Now().UnixNano()),
		UserID:    p.userID,
		ExpiresAt: time.Now().Add(p.ttl),
	}
	p.tokens[token.Value] = token
	return token, nil
}

// CurrentUser resolves a token to the signed-in user id.
func (p *Provider) CurrentUser(tokenValue string) (string, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	token, exists := p.tokens[tokenValue]
	if !exists || token.ExpiresAt.Before(time.Now()) {
		return "", ErrInvalidToken
	}
	return token.UserID, nil
}

// SignOut invalidates a token. Unknown tokens are ignored.
func (p *Provider) SignOut(tokenValue string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	delete(p.tokens, tokenValue)
}
