package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"

	"InventoryManagement/internal/cli/crypto"
	"InventoryManagement/internal/cli/repo"
)

// SecretFSStore — файловое хранилище секретов CLI: один файл на ключ,
// значение зашифровано AES‑GCM ключом каталога.
type SecretFSStore struct {
	Dir string
}

var _ repo.SecretStore = SecretFSStore{}

// DefaultDir возвращает каталог секретов по умолчанию в пользовательском конфиг‑каталоге.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "InventoryManagement"), nil
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func (s SecretFSStore) path(key string) (string, error) {
	if s.Dir == "" {
		return "", errors.New("empty secret dir")
	}
	if !keyRe.MatchString(key) || key == crypto.KeyFileName {
		return "", errors.New("invalid secret key: " + key)
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, key+".secret"), nil
}

// Get читает и расшифровывает значение.
func (s SecretFSStore) Get(key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", repo.ErrSecretNotFound
		}
		return "", err
	}
	k, err := crypto.LoadOrCreateKey(s.Dir)
	if err != nil {
		return "", err
	}
	plain, err := crypto.Open(b, k)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Set шифрует и сохраняет значение.
func (s SecretFSStore) Set(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	k, err := crypto.LoadOrCreateKey(s.Dir)
	if err != nil {
		return err
	}
	sealed, err := crypto.Seal([]byte(value), k)
	if err != nil {
		return err
	}
	return writeAtomic(s.Dir, p, sealed)
}

// writeAtomic пишет data во временный файл в dir и переименовывает его в path,
// так что читатель видит либо старое, либо новое значение целиком.
func writeAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete удаляет значение. Отсутствующий ключ не считается ошибкой.
func (s SecretFSStore) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	return nil
}
