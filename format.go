package rncryptor

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// Version is the data format version this package implements
	Version = uint8(3)

	// OptionPasswordKDF marks a container whose keys are derived from a
	// password. This is the only mode this package supports.
	OptionPasswordKDF = uint8(0x01)

	// SaltSize is the size of the key-derivation salts in bytes
	SaltSize = 8

	// BlockSize is the cipher block size and the IV length in bytes
	BlockSize = 16

	// HeaderSize is the fixed size of the container header:
	// 1 byte (version) + 1 byte (options) + 8 bytes (encryption salt) +
	// 8 bytes (hmac salt) + 16 bytes (iv) = 34 bytes
	HeaderSize = 2 + 2*SaltSize + BlockSize

	// TagSize is the size of the trailing authentication tag in bytes
	TagSize = 32
)

// Header represents the public, unencrypted prefix of a container.
// A complete container is header || ciphertext || tag; the ciphertext and
// tag are produced by collaborators outside this package.
//
// A Header is immutable once constructed. It is safe for concurrent reads.
type Header struct {
	Version        uint8           // Format version, always 3
	Options        uint8           // Bit field; bit 0 = password-based KDF
	EncryptionSalt [SaltSize]byte  // Salt for the encryption subkey
	HMACSalt       [SaltSize]byte  // Salt for the authentication subkey
	IV             [BlockSize]byte // CBC initialization vector

	auth *Authenticator // bound over HMACSalt at construction
}

// NewHeader creates a header from already-chosen salts and IV. Version and
// options are set to the package's fixed values and the authenticator is
// bound over hmacSalt. Callers are responsible for salt/IV uniqueness;
// most callers want GenerateHeader instead.
func NewHeader(encryptionSalt, hmacSalt [SaltSize]byte, iv [BlockSize]byte) *Header {
	return &Header{
		Version:        Version,
		Options:        OptionPasswordKDF,
		EncryptionSalt: encryptionSalt,
		HMACSalt:       hmacSalt,
		IV:             iv,
		auth:           NewAuthenticator(hmacSalt),
	}
}

// GenerateHeader creates a fresh header with random salts and IV drawn from
// rng. A nil rng uses crypto/rand. A failure to read entropy is fatal: no
// partially filled header is ever returned, and the read is never retried.
func GenerateHeader(rng io.Reader) (*Header, error) {
	if rng == nil {
		rng = rand.Reader
	}

	var encryptionSalt, hmacSalt [SaltSize]byte
	var iv [BlockSize]byte

	if _, err := io.ReadFull(rng, encryptionSalt[:]); err != nil {
		return nil, NewRandomSourceError("encryption salt", err)
	}
	if _, err := io.ReadFull(rng, hmacSalt[:]); err != nil {
		return nil, NewRandomSourceError("hmac salt", err)
	}
	if _, err := io.ReadFull(rng, iv[:]); err != nil {
		return nil, NewRandomSourceError("iv", err)
	}

	return NewHeader(encryptionSalt, hmacSalt, iv), nil
}

// Authenticator returns the tag function bound over this header's HMAC salt
func (h *Header) Authenticator() *Authenticator {
	return h.auth
}

// Marshal serializes the header to its canonical 34-byte wire form:
// version || options || encryptionSalt || hmacSalt || iv
func (h *Header) Marshal() []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, h.Version, h.Options)
	buf = append(buf, h.EncryptionSalt[:]...)
	buf = append(buf, h.HMACSalt[:]...)
	buf = append(buf, h.IV[:]...)
	return buf
}

// WriteTo writes the serialized header to the given writer
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.Marshal())
	if err != nil {
		return int64(n), fmt.Errorf("failed to write header: %w", err)
	}
	return int64(n), nil
}

// ParseHeader reconstructs a header from the leading bytes of an untrusted
// container. It accepts data longer than HeaderSize and ignores the excess,
// so a whole container may be passed directly.
//
// Validation never defaults a field: input shorter than 34 bytes fails with
// ErrHeaderTooShort, a version other than 3 fails with ErrUnsupportedVersion,
// and options without the password-KDF bit fail with ErrUnsupportedOptions.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, &HeaderError{
			Field:   "length",
			Value:   len(data),
			Message: fmt.Sprintf("need %d bytes, got %d", HeaderSize, len(data)),
			Err:     ErrHeaderTooShort,
		}
	}

	version := data[0]
	options := data[1]

	if version != Version {
		return nil, NewHeaderError("version", version, ErrUnsupportedVersion)
	}
	if options&OptionPasswordKDF == 0 {
		return nil, NewHeaderError("options", options, ErrUnsupportedOptions)
	}

	var encryptionSalt, hmacSalt [SaltSize]byte
	var iv [BlockSize]byte
	copy(encryptionSalt[:], data[2:2+SaltSize])
	copy(hmacSalt[:], data[2+SaltSize:2+2*SaltSize])
	copy(iv[:], data[2+2*SaltSize:HeaderSize])

	h := NewHeader(encryptionSalt, hmacSalt, iv)
	h.Options = options
	return h, nil
}

// ReadFrom reads and parses a header from the given reader
func (h *Header) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, HeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return int64(n), &HeaderError{
				Field:   "length",
				Value:   n,
				Message: fmt.Sprintf("need %d bytes, got %d", HeaderSize, n),
				Err:     ErrHeaderTooShort,
			}
		}
		return int64(n), fmt.Errorf("failed to read header: %w", err)
	}

	parsed, err := ParseHeader(buf)
	if err != nil {
		return int64(n), err
	}

	*h = *parsed
	return int64(n), nil
}

// Validate checks if the header carries the fixed values this format requires
func (h *Header) Validate() error {
	if h == nil {
		return ErrNilHeader
	}
	if h.Version != Version {
		return NewHeaderError("version", h.Version, ErrUnsupportedVersion)
	}
	if h.Options&OptionPasswordKDF == 0 {
		return NewHeaderError("options", h.Options, ErrUnsupportedOptions)
	}
	if h.auth == nil {
		return NewValidationError("authenticator", nil, "authenticator not bound")
	}
	return nil
}

// Equal reports whether two headers carry identical wire fields
func (h *Header) Equal(other *Header) bool {
	if h == nil || other == nil {
		return h == other
	}
	return bytes.Equal(h.Marshal(), other.Marshal())
}
