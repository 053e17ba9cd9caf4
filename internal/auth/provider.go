package auth

import (
	"context"
	"sync"

	"github.com/example/portfolio-api/internal/models"
)

// Identity is a signed-in authentication identity.
type Identity struct {
	UID   string
	Email string
	// Token is the ID token issued at sign-in, usable as a bearer credential.
	Token string
}

// Phase is the session resolution phase.
type Phase int

const (
	// PhaseLoading is the initial phase, before the identity has resolved.
	PhaseLoading Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticated
)

// State is the session state exposed to observers. Role is only meaningful
// when Phase is PhaseAuthenticated, and is always resolved before the state
// is published: observers never see a signed-in state with an unknown role.
type State struct {
	Phase    Phase
	Identity *Identity
	Role     models.Role
}

// IsAdmin reports whether the session is authenticated with the admin role.
func (s State) IsAdmin() bool {
	return s.Phase == PhaseAuthenticated && s.Role == models.RoleAdmin
}

// Authenticator is the external authentication backend. State changes are
// push-based: a nil identity on the channel means signed out.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	SignOut(ctx context.Context) error
	StateChanges() <-chan *Identity
}

// Provider observes the authenticator, resolves each signed-in identity to a
// role, and exposes the derived session state.
type Provider struct {
	authn Authenticator
	roles RoleResolver

	mu    sync.RWMutex
	state State
	subs  []chan State
}

// NewProvider creates a Provider in the loading phase. Call Run to start
// consuming authentication state changes.
func NewProvider(authn Authenticator, roles RoleResolver) *Provider {
	return &Provider{
		authn: authn,
		roles: roles,
		state: State{Phase: PhaseLoading},
	}
}

// Run consumes authentication state changes until ctx is cancelled or the
// authenticator closes its channel.
func (p *Provider) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ident, ok := <-p.authn.StateChanges():
			if !ok {
				return
			}
			p.onAuthChange(ctx, ident)
		}
	}
}

// onAuthChange settles the session state for a change. The role lookup is
// awaited before the authenticated state is published.
func (p *Provider) onAuthChange(ctx context.Context, ident *Identity) {
	if ident == nil {
		p.setState(State{Phase: PhaseUnauthenticated})
		return
	}
	role, err := p.roles.Resolve(ctx, ident.UID)
	if err != nil {
		// A failed lookup never blocks sign-in; it just denies admin.
		role = models.RoleUser
	}
	p.setState(State{Phase: PhaseAuthenticated, Identity: ident, Role: role})
}

// SignIn delegates to the authenticator and returns the signed-in identity.
// On failure the session state is unchanged; on success the observed state
// change drives the transition.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	return p.authn.SignIn(ctx, email, password)
}

// SignOut delegates to the authenticator and clears the role immediately;
// the observed state change confirms the unauthenticated state.
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	if p.state.Phase == PhaseAuthenticated {
		if p.state.Identity != nil {
			p.roles.Invalidate(p.state.Identity.UID)
		}
		p.state.Role = models.RoleUser
	}
	p.mu.Unlock()
	return p.authn.SignOut(ctx)
}

// State returns the current session state.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// IsAdmin reports whether the current session is an admin session.
func (p *Provider) IsAdmin() bool {
	return p.State().IsAdmin()
}

// Subscribe registers an observer. Every settled state change is delivered in
// order. The returned cancel func unregisters the observer.
func (p *Provider) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 8)
	p.mu.Lock()
	p.subs = append(p.subs, ch)
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, sub := range p.subs {
			if sub == ch {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

func (p *Provider) setState(s State) {
	p.mu.Lock()
	p.state = s
	subs := make([]chan State, len(p.subs))
	copy(subs, p.subs)
	p.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- s:
		default: // slow observer, drop rather than block the loop
		}
	}
}
