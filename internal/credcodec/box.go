package credcodec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const boxNonceSize = 24

// BoxCodec obfuscates credentials with nacl/secretbox, the random nonce
// prepended to the sealed payload. Still only obfuscation from the system's
// point of view: the key lives in process configuration.
type BoxCodec struct {
	key [32]byte
}

// NewBoxCodec derives the secretbox key from the configured secret.
func NewBoxCodec(secret string) *BoxCodec {
	return &BoxCodec{key: sha256.Sum256([]byte(secret))}
}

func (c *BoxCodec) Encode(plain string) (string, error) {
	if plain == "" {
		return "", errEmptyInput
	}
	var nonce [boxNonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], []byte(plain), &nonce, &c.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *BoxCodec) Decode(stored string) (string, error) {
	if stored == "" {
		return "", errEmptyInput
	}
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil || len(raw) <= boxNonceSize {
		return "", errMalformed
	}
	var nonce [boxNonceSize]byte
	copy(nonce[:], raw[:boxNonceSize])
	plain, ok := secretbox.Open(nil, raw[boxNonceSize:], &nonce, &c.key)
	if !ok {
		return "", errMalformed
	}
	return string(plain), nil
}
