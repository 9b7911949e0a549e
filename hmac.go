package rncryptor

import (
	"crypto/hmac"
	"crypto/sha256"
)

// ComputeTag derives a 32-byte authentication subkey from passphrase and
// hmacSalt, then computes the HMAC-SHA256 tag over message with it.
//
// The subkey derivation uses the same PBKDF2 parameters as encryption-key
// derivation but a different salt, so the two subkeys are independent even
// though both come from the same passphrase. Deterministic, no side effects.
func ComputeTag(hmacSalt, passphrase, message []byte) []byte {
	key := DeriveKey(passphrase, hmacSalt)
	defer clearBytes(key)

	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return mac.Sum(nil)
}

// Authenticator captures an HMAC salt by value so callers computing tags
// over a container never have to thread the salt through every call site.
// Headers bind one of these at construction.
type Authenticator struct {
	salt [SaltSize]byte
}

// NewAuthenticator creates an authenticator bound to the given HMAC salt
func NewAuthenticator(hmacSalt [SaltSize]byte) *Authenticator {
	return &Authenticator{salt: hmacSalt}
}

// Salt returns the bound HMAC salt
func (a *Authenticator) Salt() [SaltSize]byte {
	return a.salt
}

// Tag computes the 32-byte authentication tag over message using the
// subkey derived from passphrase and the bound salt
func (a *Authenticator) Tag(passphrase, message []byte) []byte {
	return ComputeTag(a.salt[:], passphrase, message)
}

// Verify recomputes the tag for message and compares it against tag in
// constant time
func (a *Authenticator) Verify(passphrase, message, tag []byte) bool {
	return hmac.Equal(a.Tag(passphrase, message), tag)
}
