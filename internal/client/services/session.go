// Package services contains the application services of the portal client.
// This file defines the session store: the single owner of the process-wide
// authentication state, its durable-storage synchronization, and the
// subscription mechanism the rest of the application observes it through.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/mkresic/karijera/internal/client/api"
	"github.com/mkresic/karijera/internal/client/models"
	"github.com/mkresic/karijera/internal/client/repositories/metadata"
	"github.com/mkresic/karijera/internal/dbx"
	"github.com/mkresic/karijera/internal/logging"
)

// Session is the client's current belief about who is logged in and with
// what credential. Token and user are set and cleared together; a session is
// only ever replaced wholesale.
type Session struct {
	User  *models.User
	Token string
}

// IsAuthenticated holds exactly when a user is present.
func (s Session) IsAuthenticated() bool { return s.User != nil }

// SessionStore owns the Session for the running client.
//
// Contract:
//   - Restore: validate a cached token+user pair against the backend once at
//     startup; any failure clears the cache.
//   - Login / Register: authenticate and persist token+user atomically.
//   - Logout: always ends the local session, even when the backend call fails.
//   - RefreshUser: re-fetch the identity; a rejected token ends the session.
//   - IngestExternalToken: accept the OAuth/AAI callback parameters as if
//     they were a normal login.
//
// All methods honor context cancellation. Concurrent calls are safe: state
// is swapped under a mutex as a whole value, so observers never see a token
// without a user or vice versa, and each storage write commits together with
// its in-memory swap under commitMu, so memory and durable storage cannot
// end up disagreeing about whether a session exists.
type SessionStore struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	// commitMu serializes the storage-write half of a transition with its
	// session swap. Never held while notifying subscribers or while a
	// backend call is in flight.
	commitMu sync.Mutex

	mu      sync.Mutex
	current Session
	pending bool
	nextSub int
	subs    map[int]func(Session)
}

// NewSessionStore builds a store in the Unauthenticated state with the
// pending-validation flag set. Call Restore before rendering anything that
// depends on authentication, and treat the pending period as loading, not as
// logged-out.
func NewSessionStore(client api.Client, db *sql.DB, log logging.Logger) *SessionStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &SessionStore{
		client:  client,
		db:      db,
		log:     log,
		pending: true,
		subs:    make(map[int]func(Session)),
	}
}

// Current returns a copy of the session.
func (s *SessionStore) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsAuthenticated reports whether a user is logged in.
func (s *SessionStore) IsAuthenticated() bool { return s.Current().IsAuthenticated() }

// Pending reports whether startup validation has not completed yet.
func (s *SessionStore) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Subscribe registers fn to run on every session transition with a copy of
// the new session. The returned function cancels the subscription.
func (s *SessionStore) Subscribe(fn func(Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// replace swaps the session wholesale and returns the subscriber snapshot;
// the caller notifies after releasing commitMu.
func (s *SessionStore) replace(next Session) []func(Session) {
	s.mu.Lock()
	s.current = next
	subs := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	return subs
}

// commitSession persists the token+user pair and swaps the in-memory session
// as one step under commitMu.
func (s *SessionStore) commitSession(ctx context.Context, token string, user *models.User) error {
	s.commitMu.Lock()
	if err := s.persistSession(ctx, token, user); err != nil {
		s.commitMu.Unlock()
		return err
	}
	next := Session{User: user, Token: token}
	subs := s.replace(next)
	s.commitMu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return nil
}

// dropSession clears durable storage and the in-memory session as one step
// under commitMu. The storage error is reported after the swap so the local
// session never survives a failed clear.
func (s *SessionStore) dropSession(ctx context.Context) error {
	s.commitMu.Lock()
	err := s.clearStorage(ctx)
	subs := s.replace(Session{})
	s.commitMu.Unlock()

	for _, fn := range subs {
		fn(Session{})
	}
	return err
}

func (s *SessionStore) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// persistSession writes token and user snapshot in a single transaction, so
// durable storage can never hold one without the other.
func (s *SessionStore) persistSession(ctx context.Context, token string, user *models.User) error {
	snapshot, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing user snapshot: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyUser, string(snapshot))
	})
}

// clearStorage drops every cached entry. Used on logout and on any failed
// validation so a half-set pair can never survive.
func (s *SessionStore) clearStorage(ctx context.Context) error {
	return s.repo().Clear(ctx)
}

// Restore completes the startup transition. When durable storage holds both
// a token and a user snapshot, the token is validated against the backend
// and the cached user is replaced by the fresh one. Any validation failure
// clears the cache and leaves the store Unauthenticated. The pending flag
// drops only after the transition has fully completed.
func (s *SessionStore) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.pending = false
		s.mu.Unlock()
	}()

	repo := s.repo()
	token, err := repo.Get(ctx, metadata.KeyToken)
	if err != nil {
		return err
	}
	snapshot, err := repo.Get(ctx, metadata.KeyUser)
	if err != nil {
		return err
	}

	if token == "" || snapshot == "" {
		if token != "" || snapshot != "" {
			// A lone token or lone user is a torn write from an older
			// crash; get rid of it.
			return s.clearStorage(ctx)
		}
		return nil
	}

	if exp, ok := TokenExpiry(token); ok && exp.Before(nowFn()) {
		s.log.Info(ctx, "cached token expired, skipping validation round trip")
		return s.clearStorage(ctx)
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Info(ctx, "cached session rejected, clearing", "error", err)
		return s.clearStorage(ctx)
	}

	s.log.Debug(ctx, "restored cached session", "user", user.ID)
	return s.commitSession(ctx, token, user)
}

// Login authenticates with the backend. On success the token+user pair is
// persisted and the store transitions to Authenticated. The AAI-redirect
// outcome is returned to the caller untouched and changes nothing here; it
// is the caller's job to send the browser to the identity provider. Any
// other failure propagates without mutating state.
func (s *SessionStore) Login(ctx context.Context, creds api.Credentials) (*api.LoginResult, error) {
	res, err := s.client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if res.Outcome == api.LoginAAIRedirect {
		return res, nil
	}
	if err := s.commitSession(ctx, res.Token, res.User); err != nil {
		return nil, err
	}
	return res, nil
}

// Register is symmetric to Login: success yields a fully authenticated
// session in one step.
func (s *SessionStore) Register(ctx context.Context, reg api.Registration) (*api.LoginResult, error) {
	res, err := s.client.Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	if res.Outcome == api.LoginAAIRedirect {
		return res, nil
	}
	if err := s.commitSession(ctx, res.Token, res.User); err != nil {
		return nil, err
	}
	return res, nil
}

// Logout ends the session. The backend call is best effort; local state and
// durable storage are cleared no matter what, so logout can never leave the
// user logged in.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		s.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	return s.dropSession(ctx)
}

// ErrNotAuthenticated is returned by operations that need a live session.
var ErrNotAuthenticated = errors.New("not authenticated")

// RefreshUser re-fetches the identity with the current token. Success
// replaces the user in memory and on disk, token unchanged. Failure is an
// implicit logout: both entries are cleared, the store transitions to
// Unauthenticated, and the error is rethrown for the caller to react to.
func (s *SessionStore) RefreshUser(ctx context.Context) (*models.User, error) {
	token := s.Current().Token
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		if cerr := s.dropSession(ctx); cerr != nil {
			s.log.Error(ctx, "clearing storage after failed refresh", "error", cerr)
		}
		return nil, err
	}

	if err := s.commitSession(ctx, token, user); err != nil {
		return nil, err
	}
	return user, nil
}

// IngestExternalToken completes an OAuth/AAI browser flow. The callback
// hands back a token and an URL-encoded JSON user in query parameters; they
// are ingested exactly like a normal login success.
func (s *SessionStore) IngestExternalToken(ctx context.Context, token, encodedUser string) error {
	if token == "" || encodedUser == "" {
		return fmt.Errorf("callback missing token or user")
	}
	decoded, err := url.QueryUnescape(encodedUser)
	if err != nil {
		return fmt.Errorf("decoding callback user: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(decoded), &user); err != nil {
		return fmt.Errorf("parsing callback user: %w", err)
	}
	return s.commitSession(ctx, token, &user)
}

// StoredTokenSource adapts durable storage to api.TokenProvider; the HTTP
// client reads the token through it on every request.
type StoredTokenSource struct {
	DB *sql.DB
}

func (t *StoredTokenSource) Token(ctx context.Context) (string, error) {
	return metadata.NewSQLiteRepository(t.DB).Get(ctx, metadata.KeyToken)
}
