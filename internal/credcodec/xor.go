package credcodec

import (
	"encoding/base64"
	"strings"
)

const xorSalt = "Som3 s@lt?"

// XORCodec is the legacy scheme carried over from the first version of the
// system: salt the input, XOR every byte with a fixed key byte, base64.
// Kept for records already persisted in this form.
type XORCodec struct {
	Key byte
}

// NewXORCodec returns an XORCodec with the legacy key byte.
func NewXORCodec() *XORCodec {
	return &XORCodec{Key: 0x53}
}

func (c *XORCodec) Encode(plain string) (string, error) {
	if plain == "" {
		return "", errEmptyInput
	}
	salted := []byte(xorSalt + plain)
	for i := range salted {
		salted[i] ^= c.Key
	}
	return base64.StdEncoding.EncodeToString(salted), nil
}

func (c *XORCodec) Decode(stored string) (string, error) {
	if stored == "" {
		return "", errEmptyInput
	}
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", errMalformed
	}
	for i := range raw {
		raw[i] ^= c.Key
	}
	plain := string(raw)
	if !strings.HasPrefix(plain, xorSalt) || len(plain) == len(xorSalt) {
		return "", errMalformed
	}
	return plain[len(xorSalt):], nil
}
