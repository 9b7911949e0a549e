package rncryptor

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/google/uuid"
)

// EncryptionContext couples a header, the passphrase it was keyed from, and
// a block cipher initialized with the derived encryption subkey. One context
// serves one encryption or decryption session and is discarded afterwards.
//
// The cipher is keyed with the first CipherKeySize bytes of
// DeriveKey(passphrase, header.EncryptionSalt), so it is always re-derivable
// from the header and passphrase and is never persisted on its own.
// A context is immutable after construction and safe for concurrent reads.
type EncryptionContext struct {
	id         uuid.UUID
	header     *Header
	passphrase []byte
	key        []byte // full 32-byte derived key
	block      cipher.Block
}

// NewEncryptionContext derives the encryption subkey from passphrase and
// header.EncryptionSalt and initializes an AES-128 block cipher with it.
// The passphrase is copied; the header must be well formed.
//
// Cipher initialization failure is fatal and never falls back to a default
// key; with the fixed key sizes here it indicates a broken build rather
// than bad input.
func NewEncryptionContext(passphrase []byte, header *Header) (*EncryptionContext, error) {
	if header == nil {
		return nil, ErrNilHeader
	}
	if err := header.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate header: %w", err)
	}

	id := uuid.New()

	key := DeriveKey(passphrase, header.EncryptionSalt[:])
	block, err := aes.NewCipher(key[:CipherKeySize])
	if err != nil {
		clearBytes(key)
		return nil, NewCipherError(id.String(), err)
	}

	pw := make([]byte, len(passphrase))
	copy(pw, passphrase)

	return &EncryptionContext{
		id:         id,
		header:     header,
		passphrase: pw,
		key:        key,
		block:      block,
	}, nil
}

// ID returns the session identifier assigned at construction. It appears in
// this package's error output so failures can be correlated per session.
func (c *EncryptionContext) ID() uuid.UUID {
	return c.id
}

// Header returns the header this context was created from
func (c *EncryptionContext) Header() *Header {
	return c.header
}

// Block returns the initialized block cipher. Chaining-mode wrapping (CBC
// encrypter/decrypter construction with the header's IV) is up to the
// streaming layer consuming this context.
func (c *EncryptionContext) Block() cipher.Block {
	return c.block
}

// Key returns a copy of the full 32-byte derived encryption key. Only the
// first CipherKeySize bytes key the cipher; the copy lets callers cross-check
// the derivation without exposing the context's own buffer.
func (c *EncryptionContext) Key() []byte {
	key := make([]byte, len(c.key))
	copy(key, c.key)
	return key
}

// Authenticator returns the tag function bound to this context's header
func (c *EncryptionContext) Authenticator() *Authenticator {
	return c.header.Authenticator()
}

// Tag computes the container authentication tag over message using this
// context's passphrase and the header's bound authenticator
func (c *EncryptionContext) Tag(message []byte) []byte {
	return c.header.Authenticator().Tag(c.passphrase, message)
}

// String implements fmt.Stringer without exposing secret material
func (c *EncryptionContext) String() string {
	return fmt.Sprintf("rncryptor session %s", c.id)
}

// Destroy zeroizes the context's passphrase and derived key buffers. The
// context must not be used afterwards. Zeroization is best effort: Go may
// hold other copies the context cannot reach.
func (c *EncryptionContext) Destroy() {
	clearBytes(c.passphrase)
	clearBytes(c.key)
}
