package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Session is an opened session and the token that carries it.
type Session struct {
	ID        string
	UserID    uint
	Token     string
	ExpiresAt time.Time
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID    uint
	SessionID string
}

// Gate opens, resolves and closes sessions.
type Gate struct {
	signer *TokenSigner
	store  SessionStore
}

// NewGate creates a gate issuing tokens with signer and tracking them in store.
func NewGate(signer *TokenSigner, store SessionStore) *Gate {
	return &Gate{signer: signer, store: store}
}

// Open starts a session for userID.
func (g *Gate) Open(ctx context.Context, userID uint) (*Session, error) {
	id, token, expiresAt, err := g.signer.Issue(userID)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	if err := g.store.Put(ctx, id, userID, g.signer.TTL()); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return &Session{ID: id, UserID: userID, Token: token, ExpiresAt: expiresAt}, nil
}

// Resolve returns the principal behind token. A bad or unknown token gives ErrInvalidToken
// or ErrSessionNotFound.
func (g *Gate) Resolve(ctx context.Context, token string) (*Principal, error) {
	claims, err := g.signer.Parse(token)
	if err != nil {
		return nil, err
	}
	userID, err := g.store.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if userID != claims.UserID {
		return nil, ErrInvalidToken
	}
	return &Principal{UserID: userID, SessionID: claims.ID}, nil
}

// Close ends the session with sessionID.
func (g *Gate) Close(ctx context.Context, sessionID string) error {
	return g.store.Delete(ctx, sessionID)
}
