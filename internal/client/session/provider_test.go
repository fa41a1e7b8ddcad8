package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authflow/internal/client/directory"
	"github.com/dmitrijs2005/authflow/internal/client/models"
	"github.com/dmitrijs2005/authflow/internal/client/services"
	"github.com/dmitrijs2005/authflow/internal/client/state"
	"github.com/dmitrijs2005/authflow/internal/client/storage"
)

// ---- fake service ----

type fakeService struct {
	mu sync.Mutex

	restoreUser  *models.User
	restoreCalls int

	loginUser *models.User
	loginErr  error
	signupErr error
	logoutErr error

	// observed is the provider state seen while an operation runs.
	provider *Provider
	observed []state.State
}

func (f *fakeService) snapshot() {
	if f.provider != nil {
		f.observed = append(f.observed, f.provider.State())
	}
}

func (f *fakeService) Login(ctx context.Context, c models.LoginCredentials) (*models.User, error) {
	f.snapshot()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginUser, nil
}

func (f *fakeService) Signup(ctx context.Context, c models.SignupCredentials) (*models.User, error) {
	f.snapshot()
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &models.User{ID: "n", Email: c.Email, Name: c.Name}, nil
}

func (f *fakeService) Logout(ctx context.Context) error {
	f.snapshot()
	return f.logoutErr
}

func (f *fakeService) RestoreSession(ctx context.Context) *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restoreCalls++
	return f.restoreUser
}

var demo = &models.User{ID: "1", Email: "demo@example.com", Name: "Demo User"}

// ---- tests ----

func TestProvider_InitialStateIsLoading(t *testing.T) {
	p := NewProvider(&fakeService{}, nil)
	assert.True(t, p.IsLoading())
	assert.False(t, p.IsAuthenticated())
	assert.Nil(t, p.User())
}

func TestProvider_MountRestoresOnce(t *testing.T) {
	svc := &fakeService{restoreUser: demo}
	p := NewProvider(svc, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Mount(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, svc.restoreCalls)
	assert.Equal(t, state.State{User: demo, IsAuthenticated: true}, p.State())
}

func TestProvider_MountWithoutSession(t *testing.T) {
	p := NewProvider(&fakeService{}, nil)
	st := p.Mount(context.Background())
	assert.Equal(t, state.State{}, st)
}

func TestProvider_LoginSuccess(t *testing.T) {
	svc := &fakeService{loginUser: demo}
	p := NewProvider(svc, nil)
	svc.provider = p
	p.Mount(context.Background())

	u, err := p.Login(context.Background(), models.LoginCredentials{Email: "demo@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, demo, u)

	require.Len(t, svc.observed, 1)
	assert.True(t, svc.observed[0].IsLoading, "loading while in flight")
	assert.Equal(t, state.State{User: demo, IsAuthenticated: true}, p.State())
}

func TestProvider_LoginFailureKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	fail := &services.Error{Kind: services.KindInvalidCredentials, Message: services.MsgInvalidCredentials}

	t.Run("guest stays guest", func(t *testing.T) {
		p := NewProvider(&fakeService{loginErr: fail}, nil)
		p.Mount(ctx)

		_, err := p.Login(ctx, models.LoginCredentials{})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Equal(t, state.State{}, p.State())
	})

	t.Run("signed in stays signed in", func(t *testing.T) {
		p := NewProvider(&fakeService{restoreUser: demo, loginErr: fail}, nil)
		p.Mount(ctx)

		_, err := p.Login(ctx, models.LoginCredentials{})
		require.Error(t, err)
		assert.Equal(t, state.State{User: demo, IsAuthenticated: true}, p.State())
	})
}

func TestProvider_SignupFailureCreatesNoSession(t *testing.T) {
	p := NewProvider(&fakeService{signupErr: errors.New("nope")}, nil)
	p.Mount(context.Background())

	_, err := p.Signup(context.Background(), models.SignupCredentials{Name: "Al", Email: "al@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, state.State{}, p.State())
}

func TestProvider_Logout(t *testing.T) {
	ctx := context.Background()

	p := NewProvider(&fakeService{restoreUser: demo}, nil)
	p.Mount(ctx)
	require.NoError(t, p.Logout(ctx))
	assert.Equal(t, state.State{}, p.State())

	failing := NewProvider(&fakeService{restoreUser: demo, logoutErr: errors.New("io")}, nil)
	failing.Mount(ctx)
	require.Error(t, failing.Logout(ctx))
	assert.Equal(t, state.State{User: demo, IsAuthenticated: true}, failing.State())
}

func TestProvider_SubscribersSeeTransitions(t *testing.T) {
	p := NewProvider(&fakeService{loginUser: demo}, nil)
	p.Mount(context.Background())

	ch, cancel := p.Subscribe()
	defer cancel()

	_, err := p.Login(context.Background(), models.LoginCredentials{})
	require.NoError(t, err)

	select {
	case st := <-ch:
		assert.Equal(t, state.State{User: demo, IsAuthenticated: true}, st)
	case <-time.After(time.Second):
		t.Fatal("no state delivered")
	}
}

// End to end with the real service, directory and store.

func newRealProvider(t *testing.T, store storage.Store) *Provider {
	t.Helper()
	dir := directory.NewMemoryRepository()
	_, err := directory.Seed(context.Background(), dir, directory.DemoRecords(time.Now())...)
	require.NoError(t, err)
	return NewProvider(services.NewAuthService(dir, store, services.WithDelays(0, 0)), nil)
}

func TestProvider_DemoLoginScenario(t *testing.T) {
	ctx := context.Background()
	p := newRealProvider(t, storage.NewMemoryStore())
	p.Mount(ctx)

	u, err := p.Login(ctx, models.LoginCredentials{Email: "demo@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", u.Email)
	assert.Equal(t, "Demo User", u.Name)
	assert.True(t, p.IsAuthenticated())
	assert.False(t, p.IsLoading())
}

func TestProvider_WrongPasswordScenario(t *testing.T) {
	ctx := context.Background()
	p := newRealProvider(t, storage.NewMemoryStore())
	p.Mount(ctx)

	_, err := p.Login(ctx, models.LoginCredentials{Email: "demo@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.False(t, p.IsAuthenticated())
	assert.False(t, p.IsLoading())
}

func TestProvider_RestoreAcrossProcesses(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := newRealProvider(t, store)
	first.Mount(ctx)
	_, err := first.Login(ctx, models.LoginCredentials{Email: "demo@example.com", Password: "password123"})
	require.NoError(t, err)

	second := newRealProvider(t, store)
	assert.True(t, second.IsLoading())
	st := second.Mount(ctx)
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Equal(t, "demo@example.com", st.User.Email)
}

// flakyStore fails writes to one key. It is not a storage.Batcher.
type flakyStore struct {
	inner   *storage.MemoryStore
	failKey string
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	return f.inner.Get(ctx, key)
}

func (f *flakyStore) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errors.New("disk full")
	}
	return f.inner.Set(ctx, key, value)
}

func (f *flakyStore) Remove(ctx context.Context, key string) error {
	if key == f.failKey {
		return errors.New("disk full")
	}
	return f.inner.Remove(ctx, key)
}

func TestProvider_PartialStorageFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{inner: storage.NewMemoryStore()}
	p := newRealProvider(t, store)
	p.Mount(ctx)

	_, err := p.Login(ctx, models.LoginCredentials{Email: "demo@example.com", Password: "password123"})
	require.NoError(t, err)
	before := p.State()

	store.failKey = services.KeyUser
	_, err = p.Login(ctx, models.LoginCredentials{Email: "test@example.com", Password: "test123"})
	require.ErrorIs(t, err, services.ErrStorage)
	assert.Equal(t, before, p.State())

	require.ErrorIs(t, p.Logout(ctx), services.ErrStorage)
	assert.Equal(t, before, p.State())

	store.failKey = ""
	restarted := newRealProvider(t, store)
	st := restarted.Mount(ctx)
	require.True(t, st.IsAuthenticated)
	assert.Equal(t, "demo@example.com", st.User.Email)
}
