package rncryptor

import (
	"crypto/rand"
	"fmt"
	"testing"
)

// Benchmark PBKDF2 subkey derivation (the dominant cost of every session)
func BenchmarkDeriveKey(b *testing.B) {
	passphrase := []byte("correct horse")
	salt := make([]byte, SaltSize)
	rand.Read(salt)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		DeriveKey(passphrase, salt)
	}
}

// Benchmark tag computation over message sizes a container might carry
func BenchmarkComputeTag(b *testing.B) {
	sizes := []int{
		1024,        // 1 KB
		64 * 1024,   // 64 KB
		1024 * 1024, // 1 MB
	}

	for _, size := range sizes {
		b.Run(formatSize(size), func(b *testing.B) {
			benchmarkTag(b, size)
		})
	}
}

func benchmarkTag(b *testing.B, size int) {
	message := make([]byte, size)
	if _, err := rand.Read(message); err != nil {
		b.Fatalf("failed to generate test data: %v", err)
	}

	var salt [SaltSize]byte
	rand.Read(salt[:])
	auth := NewAuthenticator(salt)
	passphrase := []byte("correct horse")

	b.SetBytes(int64(size))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auth.Tag(passphrase, message)
	}
}

func BenchmarkGenerateHeader(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateHeader(nil); err != nil {
			b.Fatalf("GenerateHeader failed: %v", err)
		}
	}
}

func BenchmarkParseHeader(b *testing.B) {
	h, err := GenerateHeader(nil)
	if err != nil {
		b.Fatalf("GenerateHeader failed: %v", err)
	}
	data := h.Marshal()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := ParseHeader(data); err != nil {
			b.Fatalf("ParseHeader failed: %v", err)
		}
	}
}

func BenchmarkNewEncryptionContext(b *testing.B) {
	h, err := GenerateHeader(nil)
	if err != nil {
		b.Fatalf("GenerateHeader failed: %v", err)
	}
	passphrase := []byte("correct horse")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ctx, err := NewEncryptionContext(passphrase, h)
		if err != nil {
			b.Fatalf("NewEncryptionContext failed: %v", err)
		}
		ctx.Destroy()
	}
}

func formatSize(size int) string {
	switch {
	case size >= 1024*1024:
		return fmt.Sprintf("%dMB", size/(1024*1024))
	case size >= 1024:
		return fmt.Sprintf("%dKB", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}
