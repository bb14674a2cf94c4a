package repo

import (
	"errors"
	"sync"
)

// ErrSecretNotFound возвращается Get, если ключ не сохранён.
var ErrSecretNotFound = errors.New("secret not found")

// Ключи, под которыми клиент хранит сессию и учётные данные.
const (
	KeyUsername     = "username"
	KeyPassword     = "password"
	KeySessionToken = "session_token"
)

// SecretStore описывает абстракцию хранилища секретов на клиенте.
type SecretStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemorySecretStore — хранилище секретов в памяти процесса (тесты, режим без сохранения).
type MemorySecretStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ SecretStore = (*MemorySecretStore)(nil)

// NewMemorySecretStore создаёт пустое хранилище.
func NewMemorySecretStore() *MemorySecretStore {
	return &MemorySecretStore{data: map[string]string{}}
}

func (s *MemorySecretStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", ErrSecretNotFound
	}
	return v, nil
}

func (s *MemorySecretStore) Set(key, value string) error {
	if key == "" {
		return errors.New("empty secret key")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemorySecretStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
