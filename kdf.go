package rncryptor

import (
	"crypto/rand"
	"crypto/sha1"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFIterations is the PBKDF2 iteration count. It is a constant of the
	// data format, not a tunable: changing it produces containers other
	// implementations cannot open.
	KDFIterations = 10000

	// KeySize is the PBKDF2 output length in bytes
	KeySize = 32

	// CipherKeySize is the portion of the derived key handed to the block
	// cipher. The format derives 32 bytes but keys AES-128, so only the
	// first 16 bytes of the derived key are used.
	CipherKeySize = 16
)

// DeriveKey stretches a passphrase and salt into a 32-byte subkey using
// PBKDF2 with an HMAC-SHA1 PRF and 10,000 iterations. It is deterministic
// and accepts inputs of any length, including an empty passphrase; policy
// about passphrase strength belongs to the caller.
func DeriveKey(passphrase, salt []byte) []byte {
	return pbkdf2.Key(passphrase, salt, KDFIterations, KeySize, sha1.New)
}

// KeyProvider is an interface for supplying subkey material.
// PasswordKeyProvider is the standard implementation; callers holding
// pre-derived keys can substitute their own.
type KeyProvider interface {
	// DeriveKey derives a 32-byte subkey from the given salt
	DeriveKey(salt []byte) ([]byte, error)

	// GenerateSalt generates a new random 8-byte salt
	GenerateSalt() ([]byte, error)
}

// PasswordKeyProvider implements KeyProvider over a held passphrase
type PasswordKeyProvider struct {
	passphrase []byte
}

// NewPasswordKeyProvider creates a key provider that derives subkeys from
// the given passphrase. The passphrase is copied; the caller may zeroize
// its own buffer immediately.
func NewPasswordKeyProvider(passphrase []byte) *PasswordKeyProvider {
	pw := make([]byte, len(passphrase))
	copy(pw, passphrase)
	return &PasswordKeyProvider{passphrase: pw}
}

// DeriveKey derives a 32-byte subkey from the held passphrase and salt
func (p *PasswordKeyProvider) DeriveKey(salt []byte) ([]byte, error) {
	if salt == nil {
		return nil, NewValidationError("salt", nil, "salt cannot be nil")
	}
	return DeriveKey(p.passphrase, salt), nil
}

// GenerateSalt generates a new random 8-byte salt
func (p *PasswordKeyProvider) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// Destroy clears the provider's passphrase copy from memory
func (p *PasswordKeyProvider) Destroy() {
	clearBytes(p.passphrase)
}

// clearBytes overwrites a byte slice with zeros. Go gives no guarantee
// about other copies the runtime may have made; this only shortens the
// exposure window of the buffer we own.
func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
