// Package crypto implements the authenticated symmetric encryption primitive
// used to protect sensitive personal identifiers at rest.
//
// Each call derives a fresh cipher key from the server-held secret and a
// random salt using scrypt, then encrypts with AES-256-GCM under a random
// nonce. The opaque output is hex(salt ‖ iv ‖ tag ‖ ciphertext), so
// encrypting the same plaintext twice never yields the same output. Because
// of that, ciphertexts cannot be compared for equality without decrypting
// first.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// Layout of the encoded payload, in bytes.
const (
	saltLength = 64
	ivLength   = 16
	tagLength  = 16
	keyLength  = 32
)

// scrypt work factors. Deliberately slow so brute-forcing the secret from
// ciphertext stays expensive even if the secret is partially exposed.
const (
	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// ErrDecryption is returned when ciphertext is malformed or its
// authentication tag does not verify. Callers must treat it as fatal for the
// operation; it never indicates a recoverable input problem.
var ErrDecryption = errors.New("decryption failed")

// Encryptor encrypts and decrypts short strings with a server-held secret.
// It is safe for concurrent use.
type Encryptor struct {
	secret []byte
}

// NewEncryptor creates an Encryptor from the configured secret.
// The secret must be at least 32 bytes.
func NewEncryptor(secret string) (*Encryptor, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("encryption secret must be at least 32 bytes")
	}
	return &Encryptor{secret: []byte(secret)}, nil
}

// Encrypt encrypts the given plaintext and returns an opaque hex string.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := e.deriveKey(salt)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Seal returns ciphertext with the tag appended; the encoded layout
	// carries the tag before the ciphertext, so split and reorder.
	sealed := gcm.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	payload := make([]byte, 0, saltLength+ivLength+tagLength+len(ciphertext))
	payload = append(payload, salt...)
	payload = append(payload, iv...)
	payload = append(payload, tag...)
	payload = append(payload, ciphertext...)

	return hex.EncodeToString(payload), nil
}

// Decrypt reverses Encrypt. It re-derives the key from the embedded salt and
// verifies the authentication tag before returning the plaintext.
// Returns ErrDecryption if the input is malformed or the tag does not verify.
func (e *Encryptor) Decrypt(encoded string) (string, error) {
	payload, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: invalid encoding", ErrDecryption)
	}

	if len(payload) < saltLength+ivLength+tagLength {
		return "", fmt.Errorf("%w: payload too short", ErrDecryption)
	}

	salt := payload[:saltLength]
	iv := payload[saltLength : saltLength+ivLength]
	tag := payload[saltLength+ivLength : saltLength+ivLength+tagLength]
	ciphertext := payload[saltLength+ivLength+tagLength:]

	key, err := e.deriveKey(salt)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Open expects the tag appended to the ciphertext.
	sealed := make([]byte, 0, len(ciphertext)+tagLength)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: authentication tag mismatch", ErrDecryption)
	}

	return string(plaintext), nil
}

// deriveKey stretches the secret into a cipher key using scrypt and the
// given per-call salt.
func (e *Encryptor) deriveKey(salt []byte) ([]byte, error) {
	key, err := scrypt.Key(e.secret, salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// newGCM builds an AES-GCM cipher with the 16-byte nonce size used by the
// encoded payload layout.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}
