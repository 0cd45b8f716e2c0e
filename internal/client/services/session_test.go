package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/mkresic/karijera/internal/client/api"
	"github.com/mkresic/karijera/internal/client/models"
	"github.com/mkresic/karijera/internal/client/repositories/metadata"
)

// fakeClient implements the parts of api.Client the session store touches.
// Calling anything else panics via the embedded nil interface.
type fakeClient struct {
	api.Client

	mu          sync.Mutex
	loginRes    *api.LoginResult
	loginErr    error
	currentUser *models.User
	currentErr  error
	logoutErr   error

	currentCalls int
	logoutCalls  int
}

func (f *fakeClient) Login(ctx context.Context, creds api.Credentials) (*api.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, reg api.Registration) (*api.LoginResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentCalls++
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.currentUser, nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return f.logoutErr
}

func setupSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:session_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)
	return db
}

func studentUser() *models.User {
	return &models.User{
		ID:    7,
		Email: "ana@fer.hr",
		Profile: models.StudentProfile{
			FirstName: "Ana",
			LastName:  "Horvat",
			Faculty:   "fer",
		},
	}
}

func okLogin(user *models.User) *api.LoginResult {
	return &api.LoginResult{Outcome: api.LoginOK, Token: "jwt-abc", User: user}
}

func storedPair(t *testing.T, db *sql.DB) (token, snapshot string) {
	t.Helper()
	repo := metadata.NewSQLiteRepository(db)
	token, err := repo.Get(context.Background(), metadata.KeyToken)
	require.NoError(t, err)
	snapshot, err = repo.Get(context.Background(), metadata.KeyUser)
	require.NoError(t, err)
	return token, snapshot
}

func seedStoredPair(t *testing.T, db *sql.DB, token string, user *models.User) {
	t.Helper()
	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), metadata.KeyToken, token))
	snapshot, err := json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, repo.Set(context.Background(), metadata.KeyUser, string(snapshot)))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestLogin_PersistsTokenAndUserTogether(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	store := NewSessionStore(&fakeClient{loginRes: okLogin(user)}, db, nil)

	res, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, api.LoginOK, res.Outcome)

	require.True(t, store.IsAuthenticated())
	require.Equal(t, "jwt-abc", store.Current().Token)
	require.Equal(t, "Ana Horvat", store.Current().User.DisplayName())

	token, snapshot := storedPair(t, db)
	require.Equal(t, "jwt-abc", token)

	var cached models.User
	require.NoError(t, json.Unmarshal([]byte(snapshot), &cached))
	require.Equal(t, user.Email, cached.Email)
	require.Equal(t, models.RoleStudent, cached.Role())
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	db := setupSessionDB(t)
	store := NewSessionStore(&fakeClient{loginErr: &api.Error{StatusCode: 401, Message: "Invalid credentials"}}, db, nil)

	_, err := store.Login(context.Background(), api.Credentials{Email: "x", Password: "y"})
	require.EqualError(t, err, "Invalid credentials")

	require.False(t, store.IsAuthenticated())
	token, snapshot := storedPair(t, db)
	require.Empty(t, token)
	require.Empty(t, snapshot)
}

func TestLogin_AAIRedirectChangesNothing(t *testing.T) {
	db := setupSessionDB(t)
	store := NewSessionStore(&fakeClient{loginRes: &api.LoginResult{
		Outcome:     api.LoginAAIRedirect,
		AAILoginURL: "https://login.aaiedu.hr/sso",
	}}, db, nil)

	res, err := store.Login(context.Background(), api.Credentials{Email: "ivan@unizg.hr", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, api.LoginAAIRedirect, res.Outcome)
	require.Equal(t, "https://login.aaiedu.hr/sso", res.AAILoginURL)

	require.False(t, store.IsAuthenticated())
	token, snapshot := storedPair(t, db)
	require.Empty(t, token)
	require.Empty(t, snapshot)
}

func TestRegister_PersistsLikeLogin(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	store := NewSessionStore(&fakeClient{loginRes: okLogin(user)}, db, nil)

	res, err := store.Register(context.Background(), api.Registration{Email: user.Email, Password: "pw", Role: models.RoleStudent})
	require.NoError(t, err)
	require.Equal(t, api.LoginOK, res.Outcome)
	require.True(t, store.IsAuthenticated())

	token, snapshot := storedPair(t, db)
	require.Equal(t, "jwt-abc", token)
	require.NotEmpty(t, snapshot)
}

func TestLogout_ClearsEvenWhenServerFails(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	client := &fakeClient{loginRes: okLogin(user), logoutErr: errors.New("boom")}
	store := NewSessionStore(client, db, nil)

	_, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, store.Logout(context.Background()))
	require.Equal(t, 1, client.logoutCalls)

	require.False(t, store.IsAuthenticated())
	require.Empty(t, store.Current().Token)
	token, snapshot := storedPair(t, db)
	require.Empty(t, token)
	require.Empty(t, snapshot)
}

func TestRefreshUser_ReplacesUserKeepsToken(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	client := &fakeClient{loginRes: okLogin(user)}
	store := NewSessionStore(client, db, nil)

	_, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	fresh := studentUser()
	fresh.Profile = models.StudentProfile{FirstName: "Ana", LastName: "Horvat", Faculty: "fsb"}
	client.currentUser = fresh

	got, err := store.RefreshUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fsb", got.Profile.(models.StudentProfile).Faculty)
	require.Equal(t, "jwt-abc", store.Current().Token)

	_, snapshot := storedPair(t, db)
	var cached models.User
	require.NoError(t, json.Unmarshal([]byte(snapshot), &cached))
	require.Equal(t, "fsb", cached.Profile.(models.StudentProfile).Faculty)
}

func TestRefreshUser_Idempotent(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	client := &fakeClient{loginRes: okLogin(user), currentUser: user}
	store := NewSessionStore(client, db, nil)

	_, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	first, err := store.RefreshUser(context.Background())
	require.NoError(t, err)
	second, err := store.RefreshUser(context.Background())
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, "jwt-abc", store.Current().Token)
	require.True(t, store.IsAuthenticated())
}

func TestRefreshUser_FailureIsImplicitLogout(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	client := &fakeClient{loginRes: okLogin(user)}
	store := NewSessionStore(client, db, nil)

	_, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	client.currentErr = &api.Error{StatusCode: 401, Message: "Token expired"}
	_, err = store.RefreshUser(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)

	require.False(t, store.IsAuthenticated())
	token, snapshot := storedPair(t, db)
	require.Empty(t, token)
	require.Empty(t, snapshot)
}

func TestRestore_EmptyStorageStaysLoggedOut(t *testing.T) {
	db := setupSessionDB(t)
	client := &fakeClient{}
	store := NewSessionStore(client, db, nil)

	require.True(t, store.Pending())
	require.NoError(t, store.Restore(context.Background()))
	require.False(t, store.Pending())
	require.False(t, store.IsAuthenticated())
	require.Equal(t, 0, client.currentCalls)
}

func TestRestore_ValidPairRefreshesUser(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	token := signedToken(t, time.Now().Add(time.Hour))
	seedStoredPair(t, db, token, user)

	client := &fakeClient{currentUser: user}
	store := NewSessionStore(client, db, nil)

	require.NoError(t, store.Restore(context.Background()))
	require.False(t, store.Pending())
	require.True(t, store.IsAuthenticated())
	require.Equal(t, token, store.Current().Token)
	require.Equal(t, 1, client.currentCalls)
}

func TestRestore_RejectedTokenClearsStorage(t *testing.T) {
	db := setupSessionDB(t)
	token := signedToken(t, time.Now().Add(time.Hour))
	seedStoredPair(t, db, token, studentUser())

	client := &fakeClient{currentErr: &api.Error{StatusCode: 401, Message: "Token expired"}}
	store := NewSessionStore(client, db, nil)

	require.NoError(t, store.Restore(context.Background()))
	require.False(t, store.IsAuthenticated())

	stored, snapshot := storedPair(t, db)
	require.Empty(t, stored)
	require.Empty(t, snapshot)
}

func TestRestore_ExpiredTokenSkipsRoundTrip(t *testing.T) {
	db := setupSessionDB(t)
	token := signedToken(t, time.Now().Add(-time.Hour))
	seedStoredPair(t, db, token, studentUser())

	client := &fakeClient{}
	store := NewSessionStore(client, db, nil)

	require.NoError(t, store.Restore(context.Background()))
	require.False(t, store.IsAuthenticated())
	require.Equal(t, 0, client.currentCalls)

	stored, snapshot := storedPair(t, db)
	require.Empty(t, stored)
	require.Empty(t, snapshot)
}

func TestRestore_TornPairIsCleared(t *testing.T) {
	db := setupSessionDB(t)
	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), metadata.KeyToken, "lonely-token"))

	client := &fakeClient{}
	store := NewSessionStore(client, db, nil)

	require.NoError(t, store.Restore(context.Background()))
	require.False(t, store.IsAuthenticated())
	require.Equal(t, 0, client.currentCalls)

	stored, snapshot := storedPair(t, db)
	require.Empty(t, stored)
	require.Empty(t, snapshot)
}

func TestSubscribe_NotifiedOnEveryTransition(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	store := NewSessionStore(&fakeClient{loginRes: okLogin(user)}, db, nil)

	var mu sync.Mutex
	var seen []Session
	unsubscribe := store.Subscribe(func(s Session) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	_, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, store.Logout(context.Background()))

	mu.Lock()
	require.Len(t, seen, 2)
	require.True(t, seen[0].IsAuthenticated())
	require.False(t, seen[1].IsAuthenticated())
	mu.Unlock()

	unsubscribe()
	_, err = store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	mu.Lock()
	require.Len(t, seen, 2, "no notifications after unsubscribe")
	mu.Unlock()
}

func TestConcurrentRefreshAndLogout_NeverMixedState(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	client := &fakeClient{loginRes: okLogin(user), currentUser: user}
	store := NewSessionStore(client, db, nil)

	_, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
	require.NoError(t, err)

	var mu sync.Mutex
	var bad []Session
	store.Subscribe(func(s Session) {
		if (s.User == nil) != (s.Token == "") {
			mu.Lock()
			bad = append(bad, s)
			mu.Unlock()
		}
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.RefreshUser(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = store.Logout(context.Background())
		}()
	}
	wg.Wait()

	mu.Lock()
	require.Empty(t, bad, "observed a session with token but no user or vice versa")
	mu.Unlock()

	final := store.Current()
	require.Equal(t, final.User == nil, final.Token == "")
}

func TestConcurrentRefreshAndLogout_StorageMatchesMemory(t *testing.T) {
	db := setupSessionDB(t)
	user := studentUser()
	client := &fakeClient{loginRes: okLogin(user), currentUser: user}
	store := NewSessionStore(client, db, nil)

	for round := 0; round < 5; round++ {
		_, err := store.Login(context.Background(), api.Credentials{Email: user.Email, Password: "pw"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.RefreshUser(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = store.Logout(context.Background())
		}()
		wg.Wait()

		// Whichever call won, durable storage and the in-memory session
		// must tell the same story.
		final := store.Current()
		token, snapshot := storedPair(t, db)
		require.Equal(t, final.Token == "", token == "")
		require.Equal(t, final.User == nil, snapshot == "")
		if final.Token != "" {
			require.Equal(t, final.Token, token)
		}
	}
}

func TestIngestExternalToken(t *testing.T) {
	db := setupSessionDB(t)
	store := NewSessionStore(&fakeClient{}, db, nil)

	raw, err := json.Marshal(studentUser())
	require.NoError(t, err)

	require.NoError(t, store.IngestExternalToken(context.Background(), "oauth-jwt", url.QueryEscape(string(raw))))
	require.True(t, store.IsAuthenticated())
	require.Equal(t, "oauth-jwt", store.Current().Token)
	require.Equal(t, "Ana Horvat", store.Current().User.DisplayName())

	token, snapshot := storedPair(t, db)
	require.Equal(t, "oauth-jwt", token)
	require.NotEmpty(t, snapshot)
}

func TestIngestExternalToken_BadInput(t *testing.T) {
	db := setupSessionDB(t)
	store := NewSessionStore(&fakeClient{}, db, nil)

	require.Error(t, store.IngestExternalToken(context.Background(), "", "user"))
	require.Error(t, store.IngestExternalToken(context.Background(), "tok", ""))
	require.Error(t, store.IngestExternalToken(context.Background(), "tok", "%%%"))
	require.Error(t, store.IngestExternalToken(context.Background(), "tok", "not-json"))

	require.False(t, store.IsAuthenticated())
	token, snapshot := storedPair(t, db)
	require.Empty(t, token)
	require.Empty(t, snapshot)
}

func TestStoredTokenSource(t *testing.T) {
	db := setupSessionDB(t)
	src := &StoredTokenSource{DB: db}

	token, err := src.Token(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)

	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), metadata.KeyToken, "jwt-abc"))

	token, err = src.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, "jwt-abc", token)
}
