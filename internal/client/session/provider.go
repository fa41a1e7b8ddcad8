// Package session exposes the shared session capability: the state store
// together with the login, signup and logout operations. One Provider is
// created per application and attached to the root context.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authflow/internal/client/models"
	"github.com/dmitrijs2005/authflow/internal/client/services"
	"github.com/dmitrijs2005/authflow/internal/client/state"
	"github.com/dmitrijs2005/authflow/internal/logging"
)

// Provider drives a state.Store from the results of a SessionService.
// Every operation leaves IsLoading false when it returns, on success and
// on failure alike.
type Provider struct {
	svc   services.SessionService
	store *state.Store
	log   logging.Logger
	mount sync.Once
}

func NewProvider(svc services.SessionService, log logging.Logger) *Provider {
	if log == nil {
		log = logging.Nop()
	}
	return &Provider{
		svc:   svc,
		store: state.NewStore(state.Initial()),
		log:   log,
	}
}

// Mount restores the persisted session. Only the first call does any work.
func (p *Provider) Mount(ctx context.Context) state.State {
	p.mount.Do(func() {
		u := p.svc.RestoreSession(ctx)
		p.store.Dispatch(state.Restored{User: u})
		if u != nil {
			p.log.Info(ctx, "session restored", "email", u.Email)
		}
	})
	return p.store.State()
}

// Login signs in. On failure the previous session, if any, is kept.
func (p *Provider) Login(ctx context.Context, creds models.LoginCredentials) (*models.User, error) {
	return p.authenticate(func() (*models.User, error) {
		return p.svc.Login(ctx, creds)
	})
}

// Signup registers and signs in. On failure no session is created.
func (p *Provider) Signup(ctx context.Context, creds models.SignupCredentials) (*models.User, error) {
	return p.authenticate(func() (*models.User, error) {
		return p.svc.Signup(ctx, creds)
	})
}

func (p *Provider) authenticate(op func() (*models.User, error)) (*models.User, error) {
	p.store.Dispatch(state.BeginLoading{})
	u, err := op()
	if err != nil {
		p.store.Dispatch(state.LoadingFinished{})
		return nil, err
	}
	p.store.Dispatch(state.Authenticated{User: u})
	return u, nil
}

// Logout ends the session.
func (p *Provider) Logout(ctx context.Context) error {
	p.store.Dispatch(state.BeginLoading{})
	if err := p.svc.Logout(ctx); err != nil {
		p.store.Dispatch(state.LoadingFinished{})
		return err
	}
	p.store.Dispatch(state.Unauthenticated{})
	return nil
}

func (p *Provider) State() state.State { return p.store.State() }

func (p *Provider) User() *models.User { return p.store.State().User }

func (p *Provider) IsLoading() bool { return p.store.State().IsLoading }

func (p *Provider) IsAuthenticated() bool { return p.store.State().IsAuthenticated }

// Subscribe forwards to the underlying store.
func (p *Provider) Subscribe() (<-chan state.State, func()) {
	return p.store.Subscribe()
}
