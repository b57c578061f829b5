package session

import (
	"errors"
	"testing"
)

func TestSignIn_DemoCredentials(t *testing.T) {
	p := NewProvider()

	token, err := p.SignIn("alex.morgan@example.com", "demo1234")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if token.Value == "" || token.UserID != "user-alex-morgan" {
		t.Errorf("unexpected token: %+v", token)
	}

	userID, err := p.CurrentUser(token.Value)
	if err != nil || userID != "user-alex-morgan" {
		t.Errorf("CurrentUser = %q, %v", userID, err)
	}
}

func TestSignIn_RejectsBadCredentials(t *testing.T) {
	p := NewProvider()
	if _, err := p.SignIn("alex.morgan@example.com", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignOut_InvalidatesToken(t *testing.T) {
	p := NewProvider()
	token, err := p.SignIn("alex.morgan@example.com", "demo1234")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	p.SignOut(token.Value)
	if _, err := p.CurrentUser(token.Value); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after sign-out, got %v", err)
	}

	// Unknown tokens are ignored.
	p.SignOut("never-issued")
}

func TestCurrentUser_UnknownToken(t *testing.T) {
	p := NewProvider()
	if _, err := p.CurrentUser("bogus"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
