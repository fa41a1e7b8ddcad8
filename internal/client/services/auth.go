// Package services contains the session service: the single owner of what
// it means to be logged in. It validates credentials, consults the user
// directory and keeps the session artifact in the key-value store.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/authflow/internal/client/directory"
	"github.com/dmitrijs2005/authflow/internal/client/models"
	"github.com/dmitrijs2005/authflow/internal/client/storage"
	"github.com/dmitrijs2005/authflow/internal/client/validation"
	"github.com/dmitrijs2005/authflow/internal/logging"
)

// Storage keys of the session artifact.
const (
	KeyUser  = "@auth_user"
	KeyToken = "@auth_token"
)

// Default simulated latencies.
const (
	DefaultNetworkDelay = time.Second
	DefaultLogoutDelay  = 800 * time.Millisecond
)

// SessionService defines the session operations used by the provider.
//
// Login and Signup persist the returned user as the session artifact;
// Logout removes it and is idempotent. RestoreSession never fails: a
// missing, unreadable or corrupt artifact yields nil.
type SessionService interface {
	Login(ctx context.Context, creds models.LoginCredentials) (*models.User, error)
	Signup(ctx context.Context, creds models.SignupCredentials) (*models.User, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) *models.User
}

// AuthService is the SessionService backed by a directory.Repository and a
// storage.Store. Operations are serialized.
type AuthService struct {
	dir    directory.Repository
	store  storage.Store
	tokens *TokenIssuer
	log    logging.Logger

	networkDelay time.Duration
	logoutDelay  time.Duration
	now          func() time.Time
	newID        func() string

	mu sync.Mutex
}

var _ SessionService = (*AuthService)(nil)

type Option func(*AuthService)

func WithLogger(l logging.Logger) Option { return func(s *AuthService) { s.log = l } }

func WithTokenIssuer(t *TokenIssuer) Option { return func(s *AuthService) { s.tokens = t } }

// WithDelays sets the simulated latency of login/signup and of logout.
func WithDelays(network, logout time.Duration) Option {
	return func(s *AuthService) {
		s.networkDelay = network
		s.logoutDelay = logout
	}
}

func WithClock(now func() time.Time) Option { return func(s *AuthService) { s.now = now } }

func WithIDGenerator(f func() string) Option { return func(s *AuthService) { s.newID = f } }

// NewAuthService constructs an AuthService over the given directory and store.
func NewAuthService(dir directory.Repository, store storage.Store, opts ...Option) *AuthService {
	s := &AuthService{
		dir:          dir,
		store:        store,
		tokens:       NewTokenIssuer(""),
		log:          logging.Nop(),
		networkDelay: DefaultNetworkDelay,
		logoutDelay:  DefaultLogoutDelay,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Login authenticates against the directory and persists the session.
// Unknown emails fail with KindNotFound, wrong passwords with
// KindInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, creds models.LoginCredentials) (*models.User, error) {
	if r := validation.ValidateLoginForm(creds.Email, creds.Password); !r.IsValid {
		return nil, validationError(r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := sleep(ctx, s.networkDelay); err != nil {
		return nil, err
	}

	rec, err := s.dir.Get(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			s.log.Info(ctx, "login rejected", "email", creds.Email, "reason", KindNotFound)
			return nil, &Error{Kind: KindNotFound, Message: MsgNoAccount, Err: err}
		}
		s.log.Error(ctx, "directory lookup failed", "email", creds.Email, "error", err)
		return nil, storageError(MsgDirectory, fmt.Errorf("lookup %s: %w", creds.Email, err))
	}
	if rec.Password != creds.Password {
		s.log.Info(ctx, "login rejected", "email", creds.Email, "reason", KindInvalidCredentials)
		return nil, &Error{Kind: KindInvalidCredentials, Message: MsgInvalidCredentials}
	}

	user := rec.User()
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "login succeeded", "email", user.Email, "user_id", user.ID)
	return user, nil
}

// Signup registers a new account and logs it in. The email must not be
// present in the directory.
func (s *AuthService) Signup(ctx context.Context, creds models.SignupCredentials) (*models.User, error) {
	if r := validation.ValidateSignupForm(creds.Name, creds.Email, creds.Password, nil); !r.IsValid {
		return nil, validationError(r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := sleep(ctx, s.networkDelay); err != nil {
		return nil, err
	}

	exists, err := s.dir.Exists(ctx, creds.Email)
	if err != nil {
		s.log.Error(ctx, "directory lookup failed", "email", creds.Email, "error", err)
		return nil, storageError(MsgDirectory, fmt.Errorf("lookup %s: %w", creds.Email, err))
	}
	if exists {
		s.log.Info(ctx, "signup rejected", "email", creds.Email, "reason", KindConflict)
		return nil, &Error{Kind: KindConflict, Message: MsgAccountExists}
	}

	rec := &directory.CredentialRecord{
		ID:        s.newID(),
		Email:     creds.Email,
		Name:      creds.Name,
		Password:  creds.Password,
		CreatedAt: s.now(),
	}
	if err := s.dir.Create(ctx, rec); err != nil {
		if errors.Is(err, directory.ErrAlreadyExists) {
			return nil, &Error{Kind: KindConflict, Message: MsgAccountExists, Err: err}
		}
		s.log.Error(ctx, "directory insert failed", "email", creds.Email, "error", err)
		return nil, storageError(MsgDirectory, fmt.Errorf("create %s: %w", creds.Email, err))
	}

	// The account exists from here on even if persisting the session fails.
	user := rec.User()
	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "signup succeeded", "email", user.Email, "user_id", user.ID)
	return user, nil
}

// Logout clears the session artifact. The directory is not touched.
func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := sleep(ctx, s.logoutDelay); err != nil {
		return err
	}
	if err := storage.RemoveAll(ctx, s.store, KeyToken, KeyUser); err != nil {
		s.log.Error(ctx, "failed to clear session", "error", err)
		return storageError(MsgStorage, err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// RestoreSession returns the persisted user, or nil when there is none or
// it cannot be read.
func (s *AuthService) RestoreSession(ctx context.Context) *models.User {
	raw, ok, err := s.store.Get(ctx, KeyUser)
	if err != nil {
		s.log.Warn(ctx, "failed to restore session", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var user *models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn(ctx, "discarding corrupt session", "error", err)
		return nil
	}
	if user != nil {
		s.log.Debug(ctx, "session restored", "email", user.Email)
	}
	return user
}

// StoredSession returns the raw persisted artifact.
func (s *AuthService) StoredSession(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, KeyUser)
}

// StoredToken returns the persisted session token.
func (s *AuthService) StoredToken(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, KeyToken)
}

// TokenSubject verifies the persisted token and returns its user ID.
func (s *AuthService) TokenSubject(ctx context.Context) (string, error) {
	tok, ok, err := s.StoredToken(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidToken
	}
	return s.tokens.Subject(tok)
}

func (s *AuthService) persist(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return storageError(MsgStorage, fmt.Errorf("encode user: %w", err))
	}
	token, err := s.tokens.Issue(user.ID, s.now())
	if err != nil {
		return storageError(MsgStorage, err)
	}

	// The user key is what RestoreSession reads, so it is written last.
	err = storage.SetAll(ctx, s.store,
		storage.Entry{Key: KeyToken, Value: token},
		storage.Entry{Key: KeyUser, Value: string(data)},
	)
	if err != nil {
		s.log.Error(ctx, "failed to persist session", "email", user.Email, "error", err)
		return storageError(MsgStorage, err)
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
