// Package rncryptor implements the envelope construction of the RNCryptor
// version 3 data format: the 34-byte container header, password-based
// derivation of independent encryption and authentication subkeys, and the
// authentication-tag computation that seals a container.
//
// # Overview
//
// A container is header || ciphertext || tag. This package models the
// header, derives the keys, initializes the block cipher, and computes the
// tag; the CBC streaming transform and all file I/O belong to the layers
// consuming it.
//
// # Container Header
//
// The header is a fixed 34-byte prefix:
//   - Version (1 byte): format version, 3
//   - Options (1 byte): bit 0 set means password-based key derivation
//   - Encryption salt (8 bytes): random, unique per container
//   - HMAC salt (8 bytes): random, unique per container
//   - IV (16 bytes): random, seeds the CBC chaining mode
//
// The ciphertext follows the header, and a 32-byte HMAC-SHA256 tag over
// every preceding byte (header || ciphertext) closes the container.
//
// # Key Derivation
//
// Both subkeys come from PBKDF2 with an HMAC-SHA1 PRF, 10,000 iterations
// and 32 bytes of output. These parameters are fixed by the format. The
// encryption subkey is derived with the encryption salt and the
// authentication subkey with the HMAC salt, so the two are independent
// even though both stretch the same passphrase.
//
// The format derives 32 bytes but keys AES-128: only the first 16 bytes of
// the derived encryption key reach the cipher.
//
// # Basic Usage
//
//	header, err := rncryptor.GenerateHeader(nil)
//	if err != nil {
//	    panic(err)
//	}
//
//	ctx, err := rncryptor.NewEncryptionContext([]byte("correct horse"), header)
//	if err != nil {
//	    panic(err)
//	}
//	defer ctx.Destroy()
//
//	// Stream the header, then ciphertext produced with ctx.Block() and
//	// header.IV, then the tag over everything written so far.
//	prefix := header.Marshal()
//	tag := ctx.Tag(containerBytes)
//
// # Security Considerations
//
// Protected against:
//   - Offline brute-force attacks (salted, iterated key derivation)
//   - Ciphertext tampering (HMAC-SHA256 over the whole container)
//   - Subkey reuse across purposes (distinct salts per subkey)
//
// Not protected against:
//   - Memory dumps while passphrases or keys are resident
//   - Side-channel attacks (timing, cache)
//   - Weak passphrases; strength policy belongs to the caller
//
// Salts and IVs must never be reused across containers, which is why
// GenerateHeader draws all three from a cryptographically secure source
// and fails rather than retry or default when entropy is unavailable.
package rncryptor
