package rncryptor

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"testing"
)

// These tests exercise the envelope the way a streaming layer consumes it:
// seal a whole container (header || CBC ciphertext || tag), then open it
// again from nothing but the container bytes and the passphrase.

func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+pad)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(pad)
	}
	return padded
}

func pkcs7Unpad(data []byte) ([]byte, bool) {
	if len(data) == 0 {
		return nil, false
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > BlockSize || pad > len(data) {
		return nil, false
	}
	return data[:len(data)-pad], true
}

func sealContainer(t *testing.T, passphrase, plaintext []byte) []byte {
	t.Helper()

	header, err := GenerateHeader(nil)
	if err != nil {
		t.Fatalf("GenerateHeader failed: %v", err)
	}

	ctx, err := NewEncryptionContext(passphrase, header)
	if err != nil {
		t.Fatalf("NewEncryptionContext failed: %v", err)
	}

	padded := pkcs7Pad(plaintext, BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(ctx.Block(), header.IV[:]).CryptBlocks(ciphertext, padded)

	container := append(header.Marshal(), ciphertext...)
	return append(container, ctx.Tag(container)...)
}

func openContainer(t *testing.T, passphrase, container []byte) ([]byte, error) {
	t.Helper()

	header, err := ParseHeader(container)
	if err != nil {
		return nil, err
	}

	body := container[:len(container)-TagSize]
	tag := container[len(container)-TagSize:]
	if !header.Authenticator().Verify(passphrase, body, tag) {
		return nil, errors.New("tag verification failed")
	}

	ctx, err := NewEncryptionContext(passphrase, header)
	if err != nil {
		return nil, err
	}
	defer ctx.Destroy()

	ciphertext := body[HeaderSize:]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(ctx.Block(), header.IV[:]).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := pkcs7Unpad(plaintext)
	if !ok {
		return nil, errors.New("bad padding")
	}
	return unpadded, nil
}

func TestContainerRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		passphrase []byte
		plaintext  []byte
	}{
		{"short message", []byte("correct horse"), []byte("attack at dawn")},
		{"empty message", []byte("correct horse"), []byte{}},
		{"block aligned", []byte("correct horse"), bytes.Repeat([]byte{0x42}, 4*BlockSize)},
		{"empty passphrase", []byte{}, []byte("still must round trip")},
		{"binary passphrase", []byte{0x00, 0xFF, 0x10}, []byte("binary secrets are fine")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := sealContainer(t, tt.passphrase, tt.plaintext)

			wantLen := HeaderSize + len(pkcs7Pad(tt.plaintext, BlockSize)) + TagSize
			if len(container) != wantLen {
				t.Fatalf("container size: got %d, want %d", len(container), wantLen)
			}

			got, err := openContainer(t, tt.passphrase, container)
			if err != nil {
				t.Fatalf("failed to open container: %v", err)
			}
			if !bytes.Equal(got, tt.plaintext) {
				t.Fatalf("plaintext mismatch:\ngot:  %q\nwant: %q", got, tt.plaintext)
			}
		})
	}
}

func TestContainerWrongPassphrase(t *testing.T) {
	container := sealContainer(t, []byte("correct horse"), []byte("secret"))

	if _, err := openContainer(t, []byte("wrong horse"), container); err == nil {
		t.Fatal("container opened with the wrong passphrase")
	}
}

func TestContainerTamperDetection(t *testing.T) {
	container := sealContainer(t, []byte("correct horse"), []byte("secret"))

	// Any byte of header or ciphertext flipped must be caught by the tag.
	// Sample a few offsets across both regions.
	for _, i := range []int{2, 10, 18, HeaderSize, len(container) - TagSize - 1} {
		tampered := make([]byte, len(container))
		copy(tampered, container)
		tampered[i] ^= 0x01

		if _, err := openContainer(t, []byte("correct horse"), tampered); err == nil {
			t.Fatalf("tampering at offset %d went undetected", i)
		}
	}
}

func TestContainerHeaderIndependence(t *testing.T) {
	// Two containers sealing the same plaintext under the same passphrase
	// must differ everywhere random material is involved.
	passphrase := []byte("correct horse")
	plaintext := []byte("same message twice")

	a := sealContainer(t, passphrase, plaintext)
	b := sealContainer(t, passphrase, plaintext)

	if bytes.Equal(a[2:HeaderSize], b[2:HeaderSize]) {
		t.Fatal("two containers share salts and iv")
	}
	if bytes.Equal(a[HeaderSize:], b[HeaderSize:]) {
		t.Fatal("two containers share ciphertext and tag")
	}
}
