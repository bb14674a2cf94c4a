// Package auth отслеживает состояние входа клиента и владеет токеном сессии
// и сохранёнными учётными данными.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"InventoryManagement/internal/cli/api"
	"InventoryManagement/internal/cli/repo"
	"InventoryManagement/internal/errs"
)

// State — состояние входа.
type State int

const (
	NotAttempted State = iota
	Success
	Error
)

func (s State) String() string {
	switch s {
	case NotAttempted:
		return "not attempted"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status — состояние входа и сообщение для пользователя (только при Error).
type Status struct {
	State   State
	Message string
}

// Сообщения, показываемые пользователю в Status.Message.
const (
	MsgMissingCredentials = "You must submit a username and password"
	MsgUnknownError       = "Unknown error"
	MsgUnreachable        = "Unable to reach the server"
	MsgNoSessionCookie    = "Server did not return a session"
)

// ErrNoStoredCredentials — сохранённых учётных данных нет.
var ErrNoStoredCredentials = fmt.Errorf("%w: no stored credentials", errs.ErrAuth)

// DefaultCookieName — имя cookie сессии по умолчанию.
const DefaultCookieName = "auth_token"

// Options настраивает Manager.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	// CookieName — cookie ответа /authenticate, который хранится как токен сессии.
	CookieName string
	Logger     *zap.SugaredLogger
}

// Manager хранит статус входа и токен сессии. Статус и токен — общее изменяемое
// состояние: побеждает последняя запись.
type Manager struct {
	baseURL    string
	client     *http.Client
	cookieName string
	store      repo.SecretStore
	log        *zap.SugaredLogger

	mu     sync.RWMutex
	status Status
	token  string

	reauth sync.WaitGroup
}

// NewManager создаёт менеджер в состоянии NotAttempted и подхватывает ранее сохранённый токен.
func NewManager(store repo.SecretStore, opts Options) *Manager {
	m := &Manager{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		client:     opts.HTTPClient,
		cookieName: opts.CookieName,
		store:      store,
		log:        opts.Logger,
	}
	if m.client == nil {
		m.client = http.DefaultClient
	}
	if m.cookieName == "" {
		m.cookieName = DefaultCookieName
	}
	if m.log == nil {
		m.log = zap.NewNop().Sugar()
	}
	if tok, err := store.Get(repo.KeySessionToken); err == nil {
		m.token = tok
	} else if !errors.Is(err, repo.ErrSecretNotFound) {
		m.log.Warnw("failed to load stored session token", "error", err)
	}
	return m
}

// Status возвращает текущее состояние входа.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Token возвращает текущий токен сессии в виде значения заголовка Cookie.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) setStatus(s Status) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}

// VerifySession проверяет токен через /checkauth. 2xx → Success, любой другой исход → NotAttempted.
// Ошибка не выставляется: это тихая проверка, а не попытка входа.
func (m *Manager) VerifySession(ctx context.Context) Status {
	resp, _, err := api.DoJSON(ctx, m.client, http.MethodGet, m.baseURL+"/checkauth", nil, m.Token())
	st := Status{State: NotAttempted}
	switch {
	case err != nil:
		m.log.Warnw("session check failed", "error", err)
	case resp.StatusCode/100 == 2:
		st = Status{State: Success}
	default:
		m.log.Infow("session is not valid", "status", resp.StatusCode)
	}
	m.setStatus(st)
	return st
}

type authenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate выполняет вход. При успехе сохраняет токен сессии, а при persist — и учётные данные.
// Пустые логин или пароль отклоняются без сетевого вызова.
func (m *Manager) Authenticate(ctx context.Context, username, password string, persist bool) error {
	if username == "" || password == "" {
		m.setStatus(Status{State: Error, Message: MsgMissingCredentials})
		return fmt.Errorf("%w: %w", errs.ErrAuth, errs.Validation(MsgMissingCredentials))
	}

	req := authenticateRequest{Username: username, Password: password}
	resp, body, err := api.DoJSON(ctx, m.client, http.MethodPost, m.baseURL+"/authenticate", req, "")
	if err != nil {
		m.log.Errorw("authenticate request failed", "error", err)
		m.setStatus(Status{State: Error, Message: MsgUnreachable})
		return err
	}

	if resp.StatusCode/100 != 2 {
		msg := api.MessageFromBody(body)
		if msg == "" {
			m.log.Warnw("no error message provided with authenticate response", "status", resp.StatusCode)
			msg = MsgUnknownError
		}
		m.setStatus(Status{State: Error, Message: msg})
		return fmt.Errorf("%w: %s", errs.ErrAuth, msg)
	}

	token, err := api.SessionTokenFromResponse(resp, m.cookieName)
	if err != nil {
		m.log.Errorw("authenticate response without session cookie", "error", err)
		m.setStatus(Status{State: Error, Message: MsgNoSessionCookie})
		return fmt.Errorf("%w: %v", errs.ErrAuth, err)
	}
	if err := m.store.Set(repo.KeySessionToken, token); err != nil {
		m.log.Warnw("failed to persist session token", "error", err)
	}
	if persist {
		if err := m.store.Set(repo.KeyUsername, username); err != nil {
			m.log.Warnw("failed to persist username", "error", err)
		}
		if err := m.store.Set(repo.KeyPassword, password); err != nil {
			m.log.Warnw("failed to persist password", "error", err)
		}
	}

	m.mu.Lock()
	m.token = token
	m.status = Status{State: Success}
	m.mu.Unlock()
	m.log.Infow("authenticated", "username", username)
	return nil
}

// AuthenticateFromStored входит с сохранёнными учётными данными.
// Если их нет — только пишет в лог и возвращает ErrNoStoredCredentials, не меняя состояние.
func (m *Manager) AuthenticateFromStored(ctx context.Context) error {
	username, err := m.store.Get(repo.KeyUsername)
	if err != nil {
		m.log.Infow("no stored username, skipping authentication", "error", err)
		return ErrNoStoredCredentials
	}
	password, err := m.store.Get(repo.KeyPassword)
	if err != nil {
		m.log.Infow("no stored password, skipping authentication", "error", err)
		return ErrNoStoredCredentials
	}
	return m.Authenticate(ctx, username, password, false)
}

// Expire реагирует на 401: переводит состояние в NotAttempted и запускает ровно одну
// фоновую попытку AuthenticateFromStored. Не блокирует и не повторяет исходный запрос.
func (m *Manager) Expire(ctx context.Context) {
	m.setStatus(Status{State: NotAttempted})
	m.reauth.Add(1)
	go func() {
		defer m.reauth.Done()
		if err := m.AuthenticateFromStored(context.WithoutCancel(ctx)); err != nil {
			m.log.Infow("re-authentication after session expiry did not succeed", "error", err)
		}
	}()
}

// Wait блокирует до завершения всех запущенных Expire попыток входа.
func (m *Manager) Wait() {
	m.reauth.Wait()
}

// Logout удаляет сохранённые учётные данные и токен и переводит состояние в NotAttempted.
func (m *Manager) Logout() error {
	var errList []error
	for _, k := range []string{repo.KeyUsername, repo.KeyPassword, repo.KeySessionToken} {
		if err := m.store.Delete(k); err != nil {
			errList = append(errList, fmt.Errorf("delete %s: %w", k, err))
		}
	}
	m.mu.Lock()
	m.token = ""
	m.status = Status{State: NotAttempted}
	m.mu.Unlock()
	return errors.Join(errList...)
}
