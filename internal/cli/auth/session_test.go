package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InventoryManagement/internal/cli/repo"
	"InventoryManagement/internal/errs"
)

// fakeAuthServer имитирует /authenticate и /checkauth.
type fakeAuthServer struct {
	*httptest.Server
	authHits  atomic.Int32
	checkHits atomic.Int32
}

func newFakeAuthServer(t *testing.T) *fakeAuthServer {
	t.Helper()
	f := &fakeAuthServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/authenticate", func(w http.ResponseWriter, r *http.Request) {
		f.authHits.Add(1)
		var req authenticateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		switch {
		case req.Username == "alice" && req.Password == "secret":
			http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok-alice", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case req.Username == "nocookie":
			w.WriteHeader(http.StatusOK)
		case req.Username == "silent":
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid username or password"))
		}
	})
	mux.HandleFunc("/checkauth", func(w http.ResponseWriter, r *http.Request) {
		f.checkHits.Add(1)
		if c, err := r.Cookie("auth_token"); err == nil && c.Value == "tok-alice" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func newTestManager(f *fakeAuthServer, store repo.SecretStore) *Manager {
	return NewManager(store, Options{BaseURL: f.URL + "/", HTTPClient: f.Client()})
}

func TestManager_InitialState(t *testing.T) {
	f := newFakeAuthServer(t)
	m := newTestManager(f, repo.NewMemorySecretStore())
	assert.Equal(t, Status{State: NotAttempted}, m.Status())
	assert.Empty(t, m.Token())
}

func TestAuthenticate_EmptyCredentials_NoNetwork(t *testing.T) {
	f := newFakeAuthServer(t)
	m := newTestManager(f, repo.NewMemorySecretStore())

	for _, c := range [][2]string{{"", "secret"}, {"alice", ""}, {"", ""}} {
		err := m.Authenticate(context.Background(), c[0], c[1], true)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.ErrorIs(t, err, errs.ErrAuth)
		assert.Equal(t, Status{State: Error, Message: MsgMissingCredentials}, m.Status())
	}
	assert.Equal(t, int32(0), f.authHits.Load())
}

func TestAuthenticate_SuccessPersists(t *testing.T) {
	f := newFakeAuthServer(t)
	store := repo.NewMemorySecretStore()
	m := newTestManager(f, store)

	require.NoError(t, m.Authenticate(context.Background(), "alice", "secret", true))
	assert.Equal(t, Success, m.Status().State)
	assert.Equal(t, "auth_token=tok-alice", m.Token())

	tok, _ := store.Get(repo.KeySessionToken)
	user, _ := store.Get(repo.KeyUsername)
	pass, _ := store.Get(repo.KeyPassword)
	assert.Equal(t, "auth_token=tok-alice", tok)
	assert.Equal(t, "alice", user)
	assert.Equal(t, "secret", pass)
}

func TestAuthenticate_WithoutPersistKeepsOnlyToken(t *testing.T) {
	f := newFakeAuthServer(t)
	store := repo.NewMemorySecretStore()
	m := newTestManager(f, store)

	require.NoError(t, m.Authenticate(context.Background(), "alice", "secret", false))
	_, err := store.Get(repo.KeyUsername)
	assert.ErrorIs(t, err, repo.ErrSecretNotFound)
	_, err = store.Get(repo.KeyPassword)
	assert.ErrorIs(t, err, repo.ErrSecretNotFound)
	tok, err := store.Get(repo.KeySessionToken)
	require.NoError(t, err)
	assert.Equal(t, "auth_token=tok-alice", tok)
}

func TestAuthenticate_Failures(t *testing.T) {
	f := newFakeAuthServer(t)
	store := repo.NewMemorySecretStore()
	m := newTestManager(f, store)

	err := m.Authenticate(context.Background(), "alice", "wrong", true)
	assert.ErrorIs(t, err, errs.ErrAuth)
	assert.Equal(t, Status{State: Error, Message: "Invalid username or password"}, m.Status())
	// при неуспехе учётные данные не сохраняются
	_, err = store.Get(repo.KeyUsername)
	assert.ErrorIs(t, err, repo.ErrSecretNotFound)

	err = m.Authenticate(context.Background(), "silent", "x", false)
	assert.ErrorIs(t, err, errs.ErrAuth)
	assert.Equal(t, Status{State: Error, Message: MsgUnknownError}, m.Status())

	err = m.Authenticate(context.Background(), "nocookie", "x", false)
	assert.ErrorIs(t, err, errs.ErrAuth)
	assert.Equal(t, Status{State: Error, Message: MsgNoSessionCookie}, m.Status())
}

func TestAuthenticate_TransportFailure(t *testing.T) {
	f := newFakeAuthServer(t)
	m := newTestManager(f, repo.NewMemorySecretStore())
	f.Close()

	err := m.Authenticate(context.Background(), "alice", "secret", false)
	assert.ErrorIs(t, err, errs.ErrTransport)
	assert.Equal(t, Status{State: Error, Message: MsgUnreachable}, m.Status())
}

func TestVerifySession(t *testing.T) {
	f := newFakeAuthServer(t)
	store := repo.NewMemorySecretStore()
	m := newTestManager(f, store)

	// без токена — NotAttempted, но не Error
	assert.Equal(t, NotAttempted, m.VerifySession(context.Background()).State)

	require.NoError(t, m.Authenticate(context.Background(), "alice", "secret", false))
	assert.Equal(t, Success, m.VerifySession(context.Background()).State)

	// новый менеджер подхватывает сохранённый токен
	m2 := newTestManager(f, store)
	assert.Equal(t, "auth_token=tok-alice", m2.Token())
	assert.Equal(t, Success, m2.VerifySession(context.Background()).State)

	f.Close()
	assert.Equal(t, NotAttempted, m2.VerifySession(context.Background()).State)
	assert.Equal(t, NotAttempted, m2.Status().State)
}

func TestAuthenticateFromStored_NoCredentialsIsInert(t *testing.T) {
	f := newFakeAuthServer(t)
	m := newTestManager(f, repo.NewMemorySecretStore())
	require.NoError(t, m.Authenticate(context.Background(), "alice", "secret", false))
	hits := f.authHits.Load()

	err := m.AuthenticateFromStored(context.Background())
	assert.ErrorIs(t, err, ErrNoStoredCredentials)
	assert.Equal(t, Success, m.Status().State)
	assert.Equal(t, hits, f.authHits.Load())
}

func TestAuthenticateFromStored_UsesStoredCredentials(t *testing.T) {
	f := newFakeAuthServer(t)
	store := repo.NewMemorySecretStore()
	require.NoError(t, store.Set(repo.KeyUsername, "alice"))
	require.NoError(t, store.Set(repo.KeyPassword, "secret"))
	m := newTestManager(f, store)

	require.NoError(t, m.AuthenticateFromStored(context.Background()))
	assert.Equal(t, Success, m.Status().State)
	assert.Equal(t, int32(1), f.authHits.Load())
}

func TestExpire_TriggersSingleReauth(t *testing.T) {
	f := newFakeAuthServer(t)
	store := repo.NewMemorySecretStore()
	m := newTestManager(f, store)
	require.NoError(t, m.Authenticate(context.Background(), "alice", "secret", true))
	before := f.authHits.Load()

	ctx, cancel := context.WithCancel(context.Background())
	m.Expire(ctx)
	cancel() // отмена вызывающего контекста не прерывает повторный вход
	m.Wait()

	assert.Equal(t, before+1, f.authHits.Load())
	assert.Equal(t, Success, m.Status().State)
}

func TestExpire_WithoutCredentialsLeavesNotAttempted(t *testing.T) {
	f := newFakeAuthServer(t)
	m := newTestManager(f, repo.NewMemorySecretStore())
	require.NoError(t, m.Authenticate(context.Background(), "alice", "secret", false))

	m.Expire(context.Background())
	m.Wait()

	assert.Equal(t, NotAttempted, m.Status().State)
	assert.Equal(t, int32(1), f.authHits.Load())
}

func TestLogout_ClearsEverything(t *testing.T) {
	f := newFakeAuthServer(t)
	store := repo.NewMemorySecretStore()
	m := newTestManager(f, store)
	require.NoError(t, m.Authenticate(context.Background(), "alice", "secret", true))

	require.NoError(t, m.Logout())
	assert.Equal(t, Status{State: NotAttempted}, m.Status())
	assert.Empty(t, m.Token())
	for _, k := range []string{repo.KeyUsername, repo.KeyPassword, repo.KeySessionToken} {
		_, err := store.Get(k)
		assert.ErrorIs(t, err, repo.ErrSecretNotFound, k)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "not attempted", NotAttempted.String())
	assert.Equal(t, "State(9)", State(9).String())
}
