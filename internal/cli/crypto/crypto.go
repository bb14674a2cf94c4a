package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// keyLen — длина ключа для AES‑256 (в байтах).
const keyLen = 32

// KeyFileName — имя файла ключа внутри каталога секретов.
const KeyFileName = "key.bin"

// keyFilePath возвращает путь к файлу ключа в каталоге dir, создавая каталог при необходимости.
func keyFilePath(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("empty secret dir for key path")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, KeyFileName), nil
}

// LoadOrCreateKey загружает ключ каталога секретов или создаёт новый случайный.
// Новый ключ создаётся только если файла нет; любая другая ошибка чтения возвращается,
// чтобы не потерять уже зашифрованные секреты.
func LoadOrCreateKey(dir string) ([]byte, error) {
	path, err := keyFilePath(dir)
	if err != nil {
		return nil, err
	}
	b, err := readKey(path)
	if !errors.Is(err, fs.ErrNotExist) {
		return b, err
	}

	key := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	// ключ пишется во временный файл и публикуется через link: при гонке двух
	// процессов побеждает первый, второй читает уже готовый ключ
	tmp, err := os.CreateTemp(dir, KeyFileName+".*.tmp")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(key); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return nil, err
	}
	if err := os.Link(tmp.Name(), path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return readKey(path)
		}
		return nil, err
	}
	return key, nil
}

func readKey(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(b) != keyLen {
		return nil, errors.New("invalid key length")
	}
	return b, nil
}

// Seal шифрует plain через AES‑GCM и возвращает nonce||ciphertext одним срезом.
func Seal(plain, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plain, nil), nil
}

// Open расшифровывает результат Seal.
func Open(sealed, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("sealed value too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
