package rncryptor

import (
	"fmt"
)

// Input validation helpers for the fixed-size fields of the format

// ValidateSalt checks if a salt has the format's fixed 8-byte size
func ValidateSalt(salt []byte, name string) error {
	if salt == nil {
		return &ValidationError{
			Field:   name,
			Message: "salt cannot be nil",
		}
	}
	if len(salt) != SaltSize {
		return &ValidationError{
			Field:   name,
			Value:   len(salt),
			Message: fmt.Sprintf("invalid salt size: got %d bytes, expected %d bytes", len(salt), SaltSize),
		}
	}
	return nil
}

// ValidateIV checks if an IV matches the cipher block size
func ValidateIV(iv []byte) error {
	if iv == nil {
		return &ValidationError{
			Field:   "iv",
			Message: "iv cannot be nil",
		}
	}
	if len(iv) != BlockSize {
		return &ValidationError{
			Field:   "iv",
			Value:   len(iv),
			Message: fmt.Sprintf("invalid iv size: got %d bytes, expected %d bytes", len(iv), BlockSize),
		}
	}
	return nil
}

// ValidateKey checks if a derived key has the expected size
func ValidateKey(key []byte, expectedSize int) error {
	if key == nil {
		return &ValidationError{
			Field:   "key",
			Message: "key cannot be nil",
		}
	}
	if len(key) != expectedSize {
		return &ValidationError{
			Field:   "key",
			Value:   len(key),
			Message: fmt.Sprintf("invalid key size: got %d bytes, expected %d bytes", len(key), expectedSize),
			Err:     ErrInvalidKey,
		}
	}
	return nil
}

// ValidateTag checks if an authentication tag has the format's fixed size
func ValidateTag(tag []byte) error {
	if tag == nil {
		return &ValidationError{
			Field:   "tag",
			Message: "tag cannot be nil",
		}
	}
	if len(tag) != TagSize {
		return &ValidationError{
			Field:   "tag",
			Value:   len(tag),
			Message: fmt.Sprintf("invalid tag size: got %d bytes, expected %d bytes", len(tag), TagSize),
		}
	}
	return nil
}
