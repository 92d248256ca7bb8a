// Package sealbox seals export archives with authenticated encryption.
//
// A sealed box is self-describing: a magic header, a cipher identifier,
// the random salt used for key derivation, the AEAD nonce, then the
// ciphertext. Keys are derived from a passphrase with Argon2id, so the
// passphrase alone opens the box on any machine.
//
// The cipher is picked per machine: AES-256-GCM where the architecture
// carries AES instructions, ChaCha20-Poly1305 elsewhere. The choice is
// recorded in the header, so a box sealed on one architecture opens on
// any other.
package sealbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Format constants.
const (
	// Magic identifies a sealed box.
	Magic = "GSBX1"

	// SaltLength is the key-derivation salt length in bytes.
	SaltLength = 16

	// MinPassphraseLength is the minimum accepted passphrase length.
	MinPassphraseLength = 8
)

// Cipher identifiers recorded in the sealed-box header.
const (
	cipherChaCha20 byte = 1
	cipherAESGCM   byte = 2
)

// Argon2id parameters for passphrase key derivation.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4

	// Both ciphers take a 32-byte key and a 12-byte nonce.
	keyLength   = chacha20poly1305.KeySize
	nonceLength = chacha20poly1305.NonceSize
)

// Errors.
var (
	ErrPassphraseTooShort = errors.New("sealbox: passphrase too short (minimum 8 bytes)")
	ErrNotSealed          = errors.New("sealbox: data is not a sealed box")
	ErrUnknownCipher      = errors.New("sealbox: unknown cipher in header")
	ErrOpenFailed         = errors.New("sealbox: open failed, wrong passphrase or corrupted data")
)

// preferredCipher picks AES-GCM where Go's crypto/aes runs on hardware
// AES instructions (amd64 AES-NI, arm64 crypto extensions) and
// ChaCha20-Poly1305 elsewhere, where software AES would be slow and
// timing-variable.
func preferredCipher() byte {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return cipherAESGCM
	default:
		return cipherChaCha20
	}
}

// newAEAD constructs the AEAD named by the header cipher identifier.
func newAEAD(id byte, key []byte) (cipher.AEAD, error) {
	switch id {
	case cipherAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case cipherChaCha20:
		return chacha20poly1305.New(key)
	default:
		return nil, ErrUnknownCipher
	}
}

// deriveKey derives the AEAD key from passphrase and salt.
func deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argonTime, argonMemory, argonThreads, keyLength)
}

// Seal encrypts plaintext under a passphrase-derived key.
//
// additionalData is authenticated but not encrypted; Open must receive
// the same bytes.
func Seal(passphrase, plaintext, additionalData []byte) ([]byte, error) {
	return seal(preferredCipher(), passphrase, plaintext, additionalData)
}

func seal(cipherID byte, passphrase, plaintext, additionalData []byte) ([]byte, error) {
	if len(passphrase) < MinPassphraseLength {
		return nil, ErrPassphraseTooShort
	}

	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("sealbox: generate salt: %w", err)
	}

	aead, err := newAEAD(cipherID, deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("sealbox: init cipher: %w", err)
	}

	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("sealbox: generate nonce: %w", err)
	}

	out := make([]byte, 0, len(Magic)+1+SaltLength+nonceLength+len(plaintext)+aead.Overhead())
	out = append(out, Magic...)
	out = append(out, cipherID)
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, additionalData), nil
}

// Open decrypts a sealed box using the cipher its header names.
func Open(passphrase, sealed, additionalData []byte) ([]byte, error) {
	if len(passphrase) < MinPassphraseLength {
		return nil, ErrPassphraseTooShort
	}

	headerLen := len(Magic) + 1 + SaltLength + nonceLength
	if len(sealed) < headerLen || string(sealed[:len(Magic)]) != Magic {
		return nil, ErrNotSealed
	}

	cipherID := sealed[len(Magic)]
	salt := sealed[len(Magic)+1 : len(Magic)+1+SaltLength]
	nonce := sealed[len(Magic)+1+SaltLength : headerLen]
	ciphertext := sealed[headerLen:]

	aead, err := newAEAD(cipherID, deriveKey(passphrase, salt))
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, additionalData)
	if err != nil {
		return nil, ErrOpenFailed
	}
	return plaintext, nil
}

// IsSealed reports whether data starts with the sealed-box magic.
func IsSealed(data []byte) bool {
	return len(data) >= len(Magic) && string(data[:len(Magic)]) == Magic
}
