package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"database/sql/driver"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Product signing keys (HMAC, token, secret) are encrypted at rest with
// AES-GCM. The key comes from FIELD_ENCRYPTION_KEY; when it is unset the
// fields round-trip as plain text so local development needs no setup.

const encryptedPrefix = "enc:v1:"

func encryptionKey() []byte {
	raw := os.Getenv("FIELD_ENCRYPTION_KEY")
	if raw == "" {
		return nil
	}
	sum := sha256.Sum256([]byte(raw))
	return sum[:]
}

// Encrypt seals a plaintext value. Returns the input unchanged when no
// encryption key is configured.
func Encrypt(plaintext string) (string, error) {
	key := encryptionKey()
	if key == nil {
		return plaintext, nil
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to init GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return encryptedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt. Values without the encrypted
// prefix are returned as-is, so rows written before encryption was enabled
// keep working.
func Decrypt(stored string) (string, error) {
	if !strings.HasPrefix(stored, encryptedPrefix) {
		return stored, nil
	}

	key := encryptionKey()
	if key == nil {
		return "", errors.New("encrypted value present but FIELD_ENCRYPTION_KEY is not set")
	}

	sealed, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, encryptedPrefix))
	if err != nil {
		return "", fmt.Errorf("failed to decode encrypted value: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to init GCM: %w", err)
	}

	if len(sealed) < gcm.NonceSize() {
		return "", errors.New("encrypted value too short")
	}
	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt value: %w", err)
	}
	return string(plain), nil
}

// EncryptedString is a GORM-compatible type for encrypted string columns.
// It encrypts on write and decrypts on read; JSON marshaling always sees
// the plaintext, which is what the admin API contract requires.
type EncryptedString string

func (e EncryptedString) Value() (driver.Value, error) {
	if e == "" {
		return nil, nil
	}
	encrypted, err := Encrypt(string(e))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt value: %w", err)
	}
	return encrypted, nil
}

func (e *EncryptedString) Scan(value interface{}) error {
	if value == nil {
		*e = ""
		return nil
	}

	var strVal string
	switch v := value.(type) {
	case []byte:
		strVal = string(v)
	case string:
		strVal = v
	default:
		return errors.New("unsupported type for EncryptedString")
	}

	decrypted, err := Decrypt(strVal)
	if err != nil {
		*e = EncryptedString(strVal)
		return nil
	}
	*e = EncryptedString(decrypted)
	return nil
}

func (e EncryptedString) String() string {
	return string(e)
}

func (e EncryptedString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(e))
}

func (e *EncryptedString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*e = EncryptedString(s)
	return nil
}
